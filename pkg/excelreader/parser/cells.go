package parser

import (
	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/source"
)

// ParseSheet classifies every position of rng into a Sheet. Cell positions
// are relative to the range origin, which is kept as FirstRow and FirstCol.
// Cells are emitted row by row, each row in column order; empty positions
// are kept.
func ParseSheet(name string, rng *source.Range) models.Sheet {
	rowCount, colCount := rng.Size()
	firstRow, firstCol := rng.Origin()
	cells := make([]models.Cell, 0, rowCount*colCount)

	for rowIdx, row := range rng.Rows() {
		for colIdx, raw := range row {
			value, dataType, formula := Classify(raw)
			cells = append(cells, models.Cell{
				Row:      uint32(rowIdx),
				Col:      uint32(colIdx),
				Value:    value,
				Formula:  formula,
				DataType: dataType,
			})
		}
	}

	return models.Sheet{
		Name:     name,
		Cells:    cells,
		RowCount: uint32(rowCount),
		ColCount: uint32(colCount),
		FirstRow: uint32(firstRow),
		FirstCol: uint32(firstCol),
	}
}
