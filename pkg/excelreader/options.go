// Package excelreader extracts the cell-level contents of spreadsheet
// workbooks: per-cell value, inferred data type and formula text, grouped by
// worksheet, plus whole-workbook statistics.
package excelreader

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/ukaji3/excelreader-go/pkg/excelreader/source"
)

// Options configures a reader.
type Options struct {
	// Workers bounds how many sheets are parsed at once.
	// If zero or negative, defaults to runtime.GOMAXPROCS(0).
	Workers int
	// Logger receives parse progress and dropped-sheet warnings.
	// If nil, logging is disabled.
	Logger *zerolog.Logger
	// Opener opens the workbook container. Each sheet task calls it
	// separately. If nil, defaults to source.Open.
	Opener source.Opener
}

// DefaultOptions returns default reader options.
func DefaultOptions() Options {
	return Options{}
}

// WorkerCount returns the effective worker pool size.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Log returns the configured logger, or a disabled one.
func (o Options) Log() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}

// OpenFunc returns the configured opener, or source.Open.
func (o Options) OpenFunc() source.Opener {
	if o.Opener != nil {
		return o.Opener
	}
	return source.Open
}
