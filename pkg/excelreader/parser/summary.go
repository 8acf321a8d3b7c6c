package parser

import (
	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
)

// Summarize aggregates type counts and the non-empty bounding box of a sheet.
func Summarize(sheet models.Sheet) models.SheetSummary {
	summary := models.SheetSummary{
		Name:       sheet.Name,
		RowCount:   sheet.RowCount,
		ColCount:   sheet.ColCount,
		TotalCells: len(sheet.Cells),
		TypeCounts: make(map[models.DataType]int),
	}

	for _, c := range sheet.Cells {
		summary.TypeCounts[c.DataType]++
		if c.HasFormula() {
			summary.FormulaCells++
		}
		if c.DataType != models.DataTypeEmpty {
			summary.NonEmptyCells++
		}
	}

	if bounds, ok := findDataBounds(sheet.Cells); ok {
		row0, col0 := int(sheet.FirstRow), int(sheet.FirstCol)
		bounds.R1, bounds.R2 = bounds.R1+row0, bounds.R2+row0
		bounds.C1, bounds.C2 = bounds.C1+col0, bounds.C2+col0
		summary.DataBounds = &bounds
		summary.DataRange = bounds.String()
	}
	return summary
}

// findDataBounds finds the bounding box of non-empty cells, relative to
// the sheet's first cell.
func findDataBounds(cells []models.Cell) (models.Bounds, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for _, c := range cells {
		if c.DataType == models.DataTypeEmpty {
			continue
		}
		row, col := int(c.Row), int(c.Col)
		if minRow < 0 || row < minRow {
			minRow = row
		}
		if maxRow < 0 || row > maxRow {
			maxRow = row
		}
		if minCol < 0 || col < minCol {
			minCol = col
		}
		if maxCol < 0 || col > maxCol {
			maxCol = col
		}
	}

	if minRow < 0 {
		return models.Bounds{}, false
	}
	return models.Bounds{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}
