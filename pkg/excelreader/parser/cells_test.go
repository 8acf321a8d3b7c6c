package parser

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/source"
)

func TestParseSheet(t *testing.T) {
	rng := source.RangeFromRows([][]source.RawValue{
		{source.Int(10), source.String("hello")},
		{source.Float(3.5), source.String("=A1+1")},
	})

	sheet := ParseSheet("Sheet1", rng)

	if sheet.Name != "Sheet1" {
		t.Errorf("Name = %q, expected Sheet1", sheet.Name)
	}
	if sheet.RowCount != 2 || sheet.ColCount != 2 {
		t.Errorf("dimensions = %dx%d, expected 2x2", sheet.RowCount, sheet.ColCount)
	}
	if len(sheet.Cells) != 4 {
		t.Fatalf("Expected 4 cells, got %d", len(sheet.Cells))
	}

	expected := []struct {
		row, col uint32
		value    string
		dataType models.DataType
		formula  bool
	}{
		{0, 0, "10", models.DataTypeInt, false},
		{0, 1, "hello", models.DataTypeString, false},
		{1, 0, "3.5", models.DataTypeFloat, false},
		{1, 1, "=A1+1", models.DataTypeString, true},
	}
	for i, e := range expected {
		c := sheet.Cells[i]
		if c.Row != e.row || c.Col != e.col {
			t.Errorf("cell %d at (%d,%d), expected (%d,%d)", i, c.Row, c.Col, e.row, e.col)
		}
		if c.Value != e.value || c.DataType != e.dataType || c.HasFormula() != e.formula {
			t.Errorf("cell %d = %v (%s), expected value %q type %q formula=%v", i, c, c.DataType, e.value, e.dataType, e.formula)
		}
	}
}

func TestParseSheetEmpty(t *testing.T) {
	tests := []struct {
		name string
		rng  *source.Range
	}{
		{"nil range", nil},
		{"empty range", source.NewRange(0, 0)},
	}

	for _, tt := range tests {
		sheet := ParseSheet("Empty", tt.rng)
		if len(sheet.Cells) != 0 || sheet.RowCount != 0 || sheet.ColCount != 0 {
			t.Errorf("%s: got %v, expected empty sheet", tt.name, sheet)
		}
	}
}

func TestParseSheetKeepsEmptyCells(t *testing.T) {
	rng := source.NewRange(3, 2)
	rng.Set(2, 1, source.Bool(true))

	sheet := ParseSheet("Sparse", rng)
	if len(sheet.Cells) != 6 {
		t.Fatalf("Expected 6 cells, got %d", len(sheet.Cells))
	}
	for _, c := range sheet.Cells[:5] {
		if c.DataType != models.DataTypeEmpty || c.Value != "" {
			t.Errorf("cell (%d,%d) = %v, expected empty", c.Row, c.Col, c)
		}
	}
	if last := sheet.Cells[5]; last.Value != "true" || last.DataType != models.DataTypeBool {
		t.Errorf("last cell = %v, expected bool true", last)
	}
}

func TestParseSheetProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: an R x C range yields R*C cells covering every position once, row-major
	properties.Property("cells cover the grid in row-major order", prop.ForAll(
		func(rows, cols int) bool {
			rng := source.NewRange(rows, cols)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if (r+c)%3 == 0 {
						rng.Set(r, c, source.Int(int64(r*cols+c)))
					}
				}
			}

			sheet := ParseSheet("P", rng)
			if len(sheet.Cells) != rows*cols {
				return false
			}
			for i, cell := range sheet.Cells {
				if int(cell.Row) != i/cols || int(cell.Col) != i%cols {
					return false
				}
			}
			return int(sheet.RowCount) == rows && int(sheet.ColCount) == cols
		},
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.TestingRun(t)
}

func TestParseSheetOffsetRange(t *testing.T) {
	rng := source.UsedRange([][]source.RawValue{
		{},
		{},
		{nil, nil, source.Int(1)},
		{nil, nil, nil, source.String("=C3*2")},
	})

	sheet := ParseSheet("Offset", rng)

	if sheet.RowCount != 2 || sheet.ColCount != 2 || len(sheet.Cells) != 4 {
		t.Fatalf("got %v, expected a 2x2 sheet", sheet)
	}
	if sheet.FirstRow != 2 || sheet.FirstCol != 2 {
		t.Errorf("origin = (%d,%d), expected (2,2)", sheet.FirstRow, sheet.FirstCol)
	}
	if first := sheet.Cells[0]; first.Row != 0 || first.Col != 0 || first.Value != "1" {
		t.Errorf("first cell = %v, expected (0,0)=1", first)
	}
	last := sheet.Cells[3]
	if ref := sheet.Ref(last); ref != "D4" {
		t.Errorf("Ref(last) = %q, expected D4", ref)
	}
	if c, ok := sheet.CellByRef("D4"); !ok || c != last {
		t.Errorf("CellByRef(D4) = %v, %v; expected %v", c, ok, last)
	}

	summary := Summarize(sheet)
	if summary.DataRange != "C3:D4" {
		t.Errorf("DataRange = %q, expected C3:D4", summary.DataRange)
	}
}
