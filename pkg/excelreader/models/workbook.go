package models

// WorkbookData is the serializable form of an extracted workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the extracted sheets in container order.
	Sheets []Sheet `json:"sheets"`
}

// Stats summarizes an extracted workbook.
type Stats struct {
	SheetCount   int      `json:"sheet_count"`
	FormulaCount int      `json:"formula_count"`
	TotalCells   int      `json:"total_cells"`
	SheetNames   []string `json:"sheet_names"`
}

// StatsReport is workbook statistics with optional per-sheet summaries.
type StatsReport struct {
	Stats
	Sheets []SheetSummary `json:"sheets,omitempty"`
}
