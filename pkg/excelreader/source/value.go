package source

import (
	"fmt"
)

// Kind identifies the variant held by a RawValue.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindDateTime
	KindDateTimeISO
	KindDurationISO
	KindError
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindInt:         "int",
	KindFloat:       "float",
	KindString:      "string",
	KindBool:        "bool",
	KindDateTime:    "datetime",
	KindDateTimeISO: "datetime_iso",
	KindDurationISO: "duration_iso",
	KindError:       "error",
}

// String returns the lower-case tag name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// RawValue is one decoded cell value before classification.
// The set of implementations is closed: Int, Float, String, Bool, DateTime,
// DateTimeISO, DurationISO, CellError and Empty.
type RawValue interface {
	Kind() Kind
	rawValue()
}

type (
	// Int is an integral numeric cell.
	Int int64
	// Float is a non-integral numeric cell.
	Float float64
	// String is a text cell.
	String string
	// Bool is a boolean cell.
	Bool bool
	// DateTimeISO is an ISO 8601 date/time stored as text (t="d" cells).
	DateTimeISO string
	// DurationISO is an ISO 8601 duration stored as text.
	DurationISO string
	// Empty is a blank cell, or a grid position with no record.
	Empty struct{}
)

// DateTime is a numeric cell carrying a date or time number format.
type DateTime struct {
	// Serial is the Excel serial day number; the fraction is the time of day.
	Serial float64
	// Date1904 reports whether the workbook uses the 1904 date system.
	Date1904 bool
}

func (Int) Kind() Kind         { return KindInt }
func (Float) Kind() Kind       { return KindFloat }
func (String) Kind() Kind      { return KindString }
func (Bool) Kind() Kind        { return KindBool }
func (DateTime) Kind() Kind    { return KindDateTime }
func (DateTimeISO) Kind() Kind { return KindDateTimeISO }
func (DurationISO) Kind() Kind { return KindDurationISO }
func (CellError) Kind() Kind   { return KindError }
func (Empty) Kind() Kind       { return KindEmpty }

func (Int) rawValue()         {}
func (Float) rawValue()       {}
func (String) rawValue()      {}
func (Bool) rawValue()        {}
func (DateTime) rawValue()    {}
func (DateTimeISO) rawValue() {}
func (DurationISO) rawValue() {}
func (CellError) rawValue()   {}
func (Empty) rawValue()       {}

// CellError is an error marker stored in a cell, e.g. a cached #DIV/0! result.
type CellError uint8

const (
	ErrorDiv0 CellError = iota
	ErrorNA
	ErrorName
	ErrorNull
	ErrorNum
	ErrorRef
	ErrorValue
	ErrorGettingData
)

var cellErrors = [...]struct {
	name    string
	literal string
}{
	ErrorDiv0:        {"Div0", "#DIV/0!"},
	ErrorNA:          {"NA", "#N/A"},
	ErrorName:        {"Name", "#NAME?"},
	ErrorNull:        {"Null", "#NULL!"},
	ErrorNum:         {"Num", "#NUM!"},
	ErrorRef:         {"Ref", "#REF!"},
	ErrorValue:       {"Value", "#VALUE!"},
	ErrorGettingData: {"GettingData", "#GETTING_DATA"},
}

// String returns the short error name, e.g. "Div0".
func (e CellError) String() string {
	if int(e) < len(cellErrors) {
		return cellErrors[e].name
	}
	return fmt.Sprintf("CellError(%d)", uint8(e))
}

// Literal returns the text Excel displays for the error, e.g. "#DIV/0!".
func (e CellError) Literal() string {
	if int(e) < len(cellErrors) {
		return cellErrors[e].literal
	}
	return "#" + e.String()
}

// ParseCellError maps an Excel error literal to its CellError.
func ParseCellError(s string) (CellError, bool) {
	for i, ce := range cellErrors {
		if ce.literal == s {
			return CellError(i), true
		}
	}
	return 0, false
}
