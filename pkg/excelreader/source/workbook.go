// Package source opens workbook containers and decodes worksheet cell grids
// into raw tagged values. Byte-level decoding is delegated to excelize
// (.xlsx family), go-xlsb (.xlsb) and xlsReader (.xls).
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type (
	// Workbook is an opened workbook container. Implementations are not safe
	// for concurrent use; open one per goroutine.
	Workbook interface {
		// SheetNames returns the worksheet names in container order.
		SheetNames() []string
		// WorksheetRange decodes the named worksheet's used grid.
		WorksheetRange(name string) (*Range, error)
		Close() error
	}

	// Opener opens the workbook stored at path.
	Opener func(path string) (Workbook, error)
)

var (
	ErrUnsupportedFormat = errors.New("source: unsupported workbook format")
	ErrSheetNotFound     = errors.New("source: sheet not found")
)

// Open opens path with the backend matching its file extension.
func Open(path string) (Workbook, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return OpenXlsx(path)
	case ".xlsb":
		return OpenXlsb(path)
	case ".xls":
		return OpenXls(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
