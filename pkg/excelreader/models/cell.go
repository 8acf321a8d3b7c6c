// Package models defines the extracted workbook data structures.
package models

import (
	"fmt"
)

// DataType is the type tag of a cell's underlying raw value.
type DataType string

const (
	DataTypeInt         DataType = "int"
	DataTypeFloat       DataType = "float"
	DataTypeString      DataType = "string"
	DataTypeBool        DataType = "bool"
	DataTypeDateTime    DataType = "datetime"
	DataTypeDateTimeISO DataType = "datetime_iso"
	DataTypeDurationISO DataType = "duration_iso"
	DataTypeError       DataType = "error"
	DataTypeEmpty       DataType = "empty"
)

// Cell represents one grid position of a worksheet.
type Cell struct {
	// Row is the row index (0-based) relative to the sheet's first used row.
	Row uint32 `json:"row"`
	// Col is the column index (0-based) relative to the sheet's first used column.
	Col uint32 `json:"col"`
	// Value is the textual rendering of the decoded value.
	Value string `json:"value"`
	// Formula is set iff Value starts with "=".
	Formula *string `json:"formula"`
	// DataType is the tag of the raw value the cell was decoded from.
	DataType DataType `json:"data_type"`
}

// HasFormula reports whether the cell carries formula text.
func (c Cell) HasFormula() bool {
	return c.Formula != nil
}

func (c Cell) String() string {
	formula := "<nil>"
	if c.Formula != nil {
		formula = fmt.Sprintf("%q", *c.Formula)
	}
	return fmt.Sprintf("Cell(row=%d, col=%d, value='%s', formula=%s)", c.Row, c.Col, c.Value, formula)
}
