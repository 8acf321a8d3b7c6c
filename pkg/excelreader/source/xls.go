package source

import (
	"fmt"
	"slices"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/record"
	"github.com/shakinm/xlsReader/xls/structure"
)

type xlsWorkbook struct {
	workbook xls.Workbook
	names    []string
}

// OpenXls opens a legacy BIFF8 workbook (.xls).
func OpenXls(path string) (Workbook, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("source/xls: %w", err)
	}
	x := &xlsWorkbook{workbook: workbook}
	for i := 0; i < workbook.GetNumberSheets(); i++ {
		sheet, err := x.workbook.GetSheet(i)
		if err != nil {
			return nil, fmt.Errorf("source/xls: sheet %d: %w", i, err)
		}
		x.names = append(x.names, sheet.GetName())
	}
	return x, nil
}

func (x *xlsWorkbook) SheetNames() []string {
	return slices.Clone(x.names)
}

func (x *xlsWorkbook) WorksheetRange(name string) (*Range, error) {
	idx := slices.Index(x.names, name)
	if idx < 0 {
		return nil, fmt.Errorf("source/xls: %w: %q", ErrSheetNotFound, name)
	}
	sheet, err := x.workbook.GetSheet(idx)
	if err != nil {
		return nil, fmt.Errorf("source/xls: %w", err)
	}

	rowCount := sheet.GetNumberRows()
	values := make([][]RawValue, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			return nil, fmt.Errorf("source/xls: row %d: %w", i, err)
		}
		cols := row.GetCols()
		vals := make([]RawValue, len(cols))
		for j, data := range cols {
			vals[j] = xlsValue(data)
		}
		values = append(values, vals)
	}
	return UsedRange(values), nil
}

func (x *xlsWorkbook) Close() error { return nil }

// xlsErrors maps the text xlsReader renders for each BIFF error code
// (0x00, 0x07, 0x0F, 0x17, 0x1D, 0x24, 0x2A) to its CellError. The record
// does not export the code itself, and 0x24 renders as "#NUM!!".
var xlsErrors = map[string]CellError{
	"#NULL!":  ErrorNull,
	"#DIV/0!": ErrorDiv0,
	"#VALUE!": ErrorValue,
	"#REF!":   ErrorRef,
	"#NAME?":  ErrorName,
	"#NUM!!":  ErrorNum,
	"#NUM!":   ErrorNum,
	"#N/A":    ErrorNA,
}

// xlsValue types one BIFF cell record. Number formats are not consulted, so
// date-formatted numbers come out as Int or Float.
func xlsValue(data structure.CellData) RawValue {
	switch data.(type) {
	case nil, *record.Blank, *record.FakeBlank:
		return Empty{}
	case *record.LabelBIFF8, *record.LabelBIFF5, *record.LabelSSt:
		return String(data.GetString())
	case *record.Number, *record.Rk:
		return numberValue(data.GetFloat64())
	case *record.BoolErr:
		s := data.GetString()
		switch s {
		case "TRUE":
			return Bool(true)
		case "FALSE":
			return Bool(false)
		}
		if ce, ok := xlsErrors[s]; ok {
			return ce
		}
		return String(s)
	default:
		return String(data.GetString())
	}
}
