package source

import (
	"fmt"
	"slices"
	"strings"

	"github.com/TsubasaBE/go-xlsb"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	f          *excelize.File
	names      []string
	date1904   bool
	dateStyles map[int]bool
}

// OpenXlsx opens an Office Open XML workbook (.xlsx, .xlsm, .xltx, .xltm).
func OpenXlsx(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("source/xlsx: %w", err)
	}
	wb := &xlsxWorkbook{
		f:          f,
		names:      f.GetSheetList(),
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func (x *xlsxWorkbook) SheetNames() []string {
	return slices.Clone(x.names)
}

func (x *xlsxWorkbook) WorksheetRange(name string) (*Range, error) {
	if !slices.Contains(x.names, name) {
		return nil, fmt.Errorf("source/xlsx: %w: %q", ErrSheetNotFound, name)
	}
	rows, err := x.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("source/xlsx: read %q: %w", name, err)
	}

	values := make([][]RawValue, len(rows))
	for rowIdx, row := range rows {
		values[rowIdx] = make([]RawValue, len(row))
		for colIdx, text := range row {
			if text == "" {
				values[rowIdx][colIdx] = Empty{}
				continue
			}
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, fmt.Errorf("source/xlsx: %w", err)
			}
			v, err := x.cellValue(name, ref, text)
			if err != nil {
				return nil, fmt.Errorf("source/xlsx: cell %s!%s: %w", name, ref, err)
			}
			values[rowIdx][colIdx] = v
		}
	}
	return UsedRange(values), nil
}

func (x *xlsxWorkbook) Close() error {
	if err := x.f.Close(); err != nil {
		return fmt.Errorf("source/xlsx: %w", err)
	}
	return nil
}

// cellValue types the raw text of a non-empty cell using its t attribute
// and, for numbers, its number format.
func (x *xlsxWorkbook) cellValue(sheet, ref, text string) (RawValue, error) {
	typ, err := x.f.GetCellType(sheet, ref)
	if err != nil {
		return nil, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return Bool(text == "1" || strings.EqualFold(text, "true")), nil
	case excelize.CellTypeError:
		if ce, ok := ParseCellError(text); ok {
			return ce, nil
		}
		return String(text), nil
	case excelize.CellTypeDate:
		return isoValue(text), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return String(text), nil
	}

	v := parseNumber(text)
	if v.Kind() == KindString {
		return v, nil
	}
	isDate, err := x.isDateStyled(sheet, ref)
	if err != nil {
		return nil, err
	}
	if isDate {
		serial := float64(0)
		switch n := v.(type) {
		case Int:
			serial = float64(n)
		case Float:
			serial = float64(n)
		}
		return DateTime{Serial: serial, Date1904: x.date1904}, nil
	}
	return v, nil
}

func (x *xlsxWorkbook) isDateStyled(sheet, ref string) (bool, error) {
	idx, err := x.f.GetCellStyle(sheet, ref)
	if err != nil {
		return false, err
	}
	if isDate, ok := x.dateStyles[idx]; ok {
		return isDate, nil
	}
	style, err := x.f.GetStyle(idx)
	if err != nil {
		return false, err
	}
	custom := ""
	if style.CustomNumFmt != nil {
		custom = *style.CustomNumFmt
	}
	isDate := xlsb.IsDateFormat(style.NumFmt, custom)
	x.dateStyles[idx] = isDate
	return isDate, nil
}

// isoValue splits ISO 8601 text into durations ("P...") and date/times.
func isoValue(text string) RawValue {
	if strings.HasPrefix(text, "P") || strings.HasPrefix(text, "-P") {
		return DurationISO(text)
	}
	return DateTimeISO(text)
}
