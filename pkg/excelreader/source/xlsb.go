package source

import (
	"fmt"
	"slices"

	"github.com/TsubasaBE/go-xlsb"
	"github.com/TsubasaBE/go-xlsb/workbook"
)

type xlsbWorkbook struct {
	wb    *workbook.Workbook
	names []string
}

// OpenXlsb opens an Excel binary workbook (.xlsb).
func OpenXlsb(path string) (Workbook, error) {
	wb, err := xlsb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source/xlsb: %w", err)
	}
	return &xlsbWorkbook{wb: wb, names: wb.Sheets()}, nil
}

func (x *xlsbWorkbook) SheetNames() []string {
	return slices.Clone(x.names)
}

func (x *xlsbWorkbook) WorksheetRange(name string) (*Range, error) {
	if !slices.Contains(x.names, name) {
		return nil, fmt.Errorf("source/xlsb: %w: %q", ErrSheetNotFound, name)
	}
	ws, err := x.wb.SheetByName(name)
	if err != nil {
		return nil, fmt.Errorf("source/xlsb: %w", err)
	}

	var values [][]RawValue
	for row := range ws.Rows(false) {
		vals := make([]RawValue, len(row))
		for i, cell := range row {
			vals[i] = xlsbValue(cell.V, x.wb.Styles.IsDate(cell.Style), x.wb.Date1904)
		}
		values = append(values, vals)
	}
	return UsedRange(values), nil
}

func (x *xlsbWorkbook) Close() error {
	if err := x.wb.Close(); err != nil {
		return fmt.Errorf("source/xlsb: %w", err)
	}
	return nil
}

// xlsbValue types a go-xlsb cell value (nil, string, float64 or bool).
// Errors reach us as their display literal, so only exact literals map to
// CellError.
func xlsbValue(v any, dateStyled, date1904 bool) RawValue {
	switch t := v.(type) {
	case nil:
		return Empty{}
	case bool:
		return Bool(t)
	case float64:
		if dateStyled {
			return DateTime{Serial: t, Date1904: date1904}
		}
		return numberValue(t)
	case string:
		if ce, ok := ParseCellError(t); ok {
			return ce
		}
		return String(t)
	default:
		return String(fmt.Sprint(t))
	}
}
