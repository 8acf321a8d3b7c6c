package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds represents inclusive cell coordinate bounds.
type Bounds struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// String returns the bounds in A1 range notation, e.g. "A1:D10".
func (b Bounds) String() string {
	start, err := excelize.CoordinatesToCellName(b.C1, b.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(b.C2, b.R2)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}

// SheetSummary aggregates the cells of one sheet.
type SheetSummary struct {
	Name          string           `json:"name"`
	RowCount      uint32           `json:"row_count"`
	ColCount      uint32           `json:"col_count"`
	TotalCells    int              `json:"total_cells"`
	NonEmptyCells int              `json:"non_empty_cells"`
	FormulaCells  int              `json:"formula_cells"`
	TypeCounts    map[DataType]int `json:"type_counts"`
	// DataBounds is the bounding box of non-empty cells; nil when there are none.
	DataBounds *Bounds `json:"data_bounds,omitempty"`
	// DataRange is DataBounds in A1 notation, "" when there are no non-empty cells.
	DataRange string `json:"data_range,omitempty"`
}
