// Package parser turns decoded worksheet ranges into extracted sheets.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/source"
)

// Classify renders a raw value and tags its type. The returned formula is a
// copy of value when value starts with "=", nil otherwise.
//
// Formula detection is purely textual: a text cell holding "=A1+1" is
// reported as a formula even though the container stored it as a literal.
func Classify(v source.RawValue) (value string, dataType models.DataType, formula *string) {
	value, dataType = render(v)
	if strings.HasPrefix(value, "=") {
		f := value
		formula = &f
	}
	return value, dataType, formula
}

func render(v source.RawValue) (string, models.DataType) {
	switch t := v.(type) {
	case source.Int:
		return strconv.FormatInt(int64(t), 10), models.DataTypeInt
	case source.Float:
		return strconv.FormatFloat(float64(t), 'f', -1, 64), models.DataTypeFloat
	case source.String:
		return string(t), models.DataTypeString
	case source.Bool:
		return strconv.FormatBool(bool(t)), models.DataTypeBool
	case source.DateTime:
		return fmt.Sprintf("%+v", t), models.DataTypeDateTime
	case source.DateTimeISO:
		return string(t), models.DataTypeDateTimeISO
	case source.DurationISO:
		return string(t), models.DataTypeDurationISO
	case source.CellError:
		return "#" + t.String(), models.DataTypeError
	case source.Empty, nil:
		return "", models.DataTypeEmpty
	}
	panic(fmt.Sprintf("parser: unhandled raw value %T", v))
}
