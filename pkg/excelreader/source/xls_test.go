package source

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/shakinm/xlsReader/xls/record"
	"github.com/shakinm/xlsReader/xls/structure"
)

// cell header: row 0, col 0, xf 0
var xlsCellHeader = []byte{0, 0, 0, 0, 0, 0}

func xlsBoolErr(value, isError byte) *record.BoolErr {
	r := new(record.BoolErr)
	r.Read(append(append([]byte{}, xlsCellHeader...), value, isError))
	return r
}

func xlsNumber(f float64) *record.Number {
	num := make([]byte, 8)
	binary.LittleEndian.PutUint64(num, math.Float64bits(f))
	r := new(record.Number)
	r.Read(append(append([]byte{}, xlsCellHeader...), num...))
	return r
}

func TestXlsValue(t *testing.T) {
	blank := new(record.Blank)
	blank.Read(xlsCellHeader)

	tests := []struct {
		name     string
		data     structure.CellData
		expected RawValue
	}{
		{"nil", nil, Empty{}},
		{"blank", blank, Empty{}},
		{"fake blank", &record.FakeBlank{}, Empty{}},
		{"integral number", xlsNumber(42), Int(42)},
		{"fractional number", xlsNumber(0.25), Float(0.25)},
		{"true", xlsBoolErr(1, 0), Bool(true)},
		{"false", xlsBoolErr(0, 0), Bool(false)},
		{"#NULL!", xlsBoolErr(0x00, 1), ErrorNull},
		{"#DIV/0!", xlsBoolErr(0x07, 1), ErrorDiv0},
		{"#VALUE!", xlsBoolErr(0x0F, 1), ErrorValue},
		{"#REF!", xlsBoolErr(0x17, 1), ErrorRef},
		{"#NAME?", xlsBoolErr(0x1D, 1), ErrorName},
		{"#NUM!", xlsBoolErr(0x24, 1), ErrorNum},
		{"#N/A", xlsBoolErr(0x2A, 1), ErrorNA},
	}

	for _, tt := range tests {
		if got := xlsValue(tt.data); got != tt.expected {
			t.Errorf("%s: xlsValue() = %v (%T), expected %v (%T)", tt.name, got, got, tt.expected, tt.expected)
		}
	}
}

func TestXlsErrorsCoverEveryCode(t *testing.T) {
	seen := make(map[CellError]bool)
	for _, ce := range xlsErrors {
		seen[ce] = true
	}
	for _, ce := range []CellError{ErrorNull, ErrorDiv0, ErrorValue, ErrorRef, ErrorName, ErrorNum, ErrorNA} {
		if !seen[ce] {
			t.Errorf("no xls text maps to %s", ce)
		}
	}
}

func TestOpenXlsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xls")
	if err := os.WriteFile(path, []byte("not a compound document"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open(broken.xls) should fail")
	}
}
