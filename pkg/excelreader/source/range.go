package source

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// Range is a rectangular grid of raw values. Its first cell sits at the
// 0-based sheet position reported by Origin; positions the container holds
// no record for are Empty.
type Range struct {
	row0  int
	col0  int
	rows  int
	cols  int
	cells []RawValue
}

// NewRange returns a rows x cols range filled with Empty.
func NewRange(rows, cols int) *Range {
	rows, cols = max(rows, 0), max(cols, 0)
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	cells := make([]RawValue, rows*cols)
	for i := range cells {
		cells[i] = Empty{}
	}
	return &Range{rows: rows, cols: cols, cells: cells}
}

// RangeFromRows builds a range from ragged rows. The width is the longest
// row; shorter rows are padded with Empty.
func RangeFromRows(rows [][]RawValue) *Range {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	r := NewRange(len(rows), width)
	for i, row := range rows {
		for j, v := range row {
			r.Set(i, j, v)
		}
	}
	return r
}

// UsedRange builds the smallest range covering the non-empty values of
// rows, where rows[i][j] holds the value at sheet row i, column j. The
// result is 0x0 when every value is empty.
func UsedRange(rows [][]RawValue) *Range {
	minRow, minCol, maxRow, maxCol := -1, -1, -1, -1
	for i, row := range rows {
		for j, v := range row {
			if v == nil || v.Kind() == KindEmpty {
				continue
			}
			if minRow < 0 {
				minRow = i
			}
			maxRow = i
			if minCol < 0 || j < minCol {
				minCol = j
			}
			maxCol = max(maxCol, j)
		}
	}
	if minRow < 0 {
		return NewRange(0, 0)
	}

	r := NewRange(maxRow-minRow+1, maxCol-minCol+1)
	r.row0, r.col0 = minRow, minCol
	for i := minRow; i <= maxRow; i++ {
		for j, v := range rows[i] {
			r.Set(i-minRow, j-minCol, v)
		}
	}
	return r
}

// Origin returns the 0-based sheet row and column of the range's first cell.
func (r *Range) Origin() (row, col int) {
	if r == nil {
		return 0, 0
	}
	return r.row0, r.col0
}

// Size returns the number of rows and columns.
func (r *Range) Size() (rows, cols int) {
	if r == nil {
		return 0, 0
	}
	return r.rows, r.cols
}

// Get returns the value at (row, col), or Empty when out of bounds.
func (r *Range) Get(row, col int) RawValue {
	if r == nil || row < 0 || col < 0 || row >= r.rows || col >= r.cols {
		return Empty{}
	}
	return r.cells[row*r.cols+col]
}

// Set stores v at (row, col); out-of-bounds writes are ignored.
func (r *Range) Set(row, col int, v RawValue) {
	if r == nil || row < 0 || col < 0 || row >= r.rows || col >= r.cols {
		return
	}
	if v == nil {
		v = Empty{}
	}
	r.cells[row*r.cols+col] = v
}

// Rows yields each row index with its values in column order.
// The yielded slice aliases the range and must not be modified.
func (r *Range) Rows() iter.Seq2[int, []RawValue] {
	return func(yield func(int, []RawValue) bool) {
		rows, cols := r.Size()
		for i := 0; i < rows; i++ {
			if !yield(i, r.cells[i*cols:(i+1)*cols]) {
				return
			}
		}
	}
}

// numberValue returns Int for integral values that fit in int64, else Float.
func numberValue(f float64) RawValue {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !math.IsInf(f, 0) {
		return Int(int64(f))
	}
	return Float(f)
}

// parseNumber decodes stored numeric text. Integers are tried first, then
// floats; anything else stays text.
func parseNumber(s string) RawValue {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f)
	}
	return String(s)
}
