package excelreader

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrOpenWorkbook indicates the workbook could not be opened or is not a
// recognized format.
var ErrOpenWorkbook = errors.New("failed to open workbook")

// OpenError is the fatal error returned by Parse when the container cannot
// be opened to enumerate its sheets.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrOpenWorkbook, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Is matches ErrOpenWorkbook, and ErrFileNotFound when the path is missing.
func (e *OpenError) Is(target error) bool {
	switch target {
	case ErrOpenWorkbook:
		return true
	case ErrFileNotFound:
		return errors.Is(e.Err, fs.ErrNotExist)
	}
	return false
}

// Stages at which a sheet can fail.
const (
	StageOpen  = "open"
	StageRange = "range"
)

// SheetError records a sheet dropped during Parse.
type SheetError struct {
	SheetName string
	Stage     string // "open", "range"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q dropped (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
