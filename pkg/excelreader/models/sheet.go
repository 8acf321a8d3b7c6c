package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet represents the extracted cells of a single worksheet.
type Sheet struct {
	// Name is the worksheet name, unique within its workbook.
	Name string `json:"name"`
	// Cells holds every grid position in row-major order.
	Cells []Cell `json:"cells"`
	// RowCount is the height of the worksheet's used grid.
	RowCount uint32 `json:"row_count"`
	// ColCount is the width of the worksheet's used grid.
	ColCount uint32 `json:"col_count"`
	// FirstRow is the 0-based worksheet row of cell (0, 0).
	FirstRow uint32 `json:"first_row"`
	// FirstCol is the 0-based worksheet column of cell (0, 0).
	FirstCol uint32 `json:"first_col"`
}

// Cell returns the cell at the 0-based position.
func (s Sheet) Cell(row, col uint32) (Cell, bool) {
	if row < s.RowCount && col < s.ColCount {
		idx := int(row)*int(s.ColCount) + int(col)
		if idx < len(s.Cells) && s.Cells[idx].Row == row && s.Cells[idx].Col == col {
			return s.Cells[idx], true
		}
	}
	for _, c := range s.Cells {
		if c.Row == row && c.Col == col {
			return c, true
		}
	}
	return Cell{}, false
}

// CellByRef returns the cell at an A1-style worksheet reference; "$"
// markers are ignored.
func (s Sheet) CellByRef(ref string) (Cell, bool) {
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
	if err != nil {
		return Cell{}, false
	}
	r, c := uint32(row-1), uint32(col-1)
	if r < s.FirstRow || c < s.FirstCol {
		return Cell{}, false
	}
	return s.Cell(r-s.FirstRow, c-s.FirstCol)
}

// Ref returns the A1-style worksheet reference of c, e.g. "B2".
func (s Sheet) Ref(c Cell) string {
	ref, err := excelize.CoordinatesToCellName(int(s.FirstCol+c.Col)+1, int(s.FirstRow+c.Row)+1)
	if err != nil {
		return ""
	}
	return ref
}

// Clone returns a copy of s that shares no memory with it.
func (s Sheet) Clone() Sheet {
	if s.Cells == nil {
		return s
	}
	cells := make([]Cell, len(s.Cells))
	for i, c := range s.Cells {
		if c.Formula != nil {
			f := *c.Formula
			c.Formula = &f
		}
		cells[i] = c
	}
	s.Cells = cells
	return s
}

// FormulaCells returns the cells carrying formula text, in sheet order.
func (s Sheet) FormulaCells() []Cell {
	var cells []Cell
	for _, c := range s.Cells {
		if c.HasFormula() {
			cells = append(cells, c)
		}
	}
	return cells
}

// FormulaCount returns the number of cells carrying formula text.
func (s Sheet) FormulaCount() int {
	n := 0
	for _, c := range s.Cells {
		if c.HasFormula() {
			n++
		}
	}
	return n
}

func (s Sheet) String() string {
	return fmt.Sprintf("Sheet(name='%s', cells=%d, rows=%d, cols=%d)", s.Name, len(s.Cells), s.RowCount, s.ColCount)
}
