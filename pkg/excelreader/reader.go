package excelreader

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/parser"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/source"
)

// ExcelReader extracts and holds the sheets of one workbook file.
//
// Query methods may be called concurrently with each other but not with
// Parse; callers that need that pattern must synchronize externally.
type ExcelReader struct {
	path     string
	opts     Options
	sheets   []models.Sheet
	failures []*SheetError
}

// New returns a reader for the workbook at path. It does not touch the
// filesystem.
func New(path string, opts Options) *ExcelReader {
	return &ExcelReader{path: path, opts: opts}
}

// Path returns the workbook path given to New.
func (r *ExcelReader) Path() string {
	return r.path
}

// Parse extracts every sheet of the workbook.
//
// The container is opened once to list sheet names; a failure there is
// returned as an *OpenError and leaves previously parsed sheets untouched.
// Sheets are then parsed in parallel, each task reopening the container on
// its own. A sheet that fails to open or decode is dropped and recorded in
// Failures; that is not an error. On success the stored sheets are replaced
// with the parsed ones in container order.
func (r *ExcelReader) Parse() error {
	log := r.opts.Log()
	open := r.opts.OpenFunc()
	start := time.Now()

	wb, err := open(r.path)
	if err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("Failed to open workbook")
		return &OpenError{Path: r.path, Err: err}
	}
	names := wb.SheetNames()
	closeWorkbook(log, wb, r.path)

	workers := r.opts.WorkerCount()
	log.Debug().
		Str("path", r.path).
		Int("sheets", len(names)).
		Int("workers", workers).
		Msg("Parsing workbook")

	results := make([]*models.Sheet, len(names))
	failed := make([]*SheetError, len(names))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			sheet, serr := readSheet(log, open, r.path, name)
			if serr != nil {
				failed[i] = serr
				log.Warn().
					Err(serr.Err).
					Str("sheet", name).
					Str("stage", serr.Stage).
					Msg("Dropping sheet")
				return nil
			}
			results[i] = &sheet
			return nil
		})
	}
	_ = g.Wait()

	sheets := make([]models.Sheet, 0, len(names))
	var failures []*SheetError
	for i := range names {
		if results[i] != nil {
			sheets = append(sheets, *results[i])
		}
		if failed[i] != nil {
			failures = append(failures, failed[i])
		}
	}
	r.sheets = sheets
	r.failures = failures

	log.Debug().
		Int("parsed", len(sheets)).
		Int("dropped", len(failures)).
		Dur("elapsed", time.Since(start)).
		Msg("Parsed workbook")
	return nil
}

// readSheet opens its own handle on path and parses the named sheet.
func readSheet(log zerolog.Logger, open source.Opener, path, name string) (models.Sheet, *SheetError) {
	wb, err := open(path)
	if err != nil {
		return models.Sheet{}, NewSheetError(name, StageOpen, err)
	}
	defer closeWorkbook(log, wb, path)

	rng, err := wb.WorksheetRange(name)
	if err != nil {
		return models.Sheet{}, NewSheetError(name, StageRange, err)
	}
	return parser.ParseSheet(name, rng), nil
}

func closeWorkbook(log zerolog.Logger, wb source.Workbook, path string) {
	if err := wb.Close(); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Failed to close workbook")
	}
}

// Sheets returns a deep copy of the parsed sheets in container order.
func (r *ExcelReader) Sheets() []models.Sheet {
	sheets := make([]models.Sheet, len(r.sheets))
	for i, s := range r.sheets {
		sheets[i] = s.Clone()
	}
	return sheets
}

// Sheet returns a deep copy of the parsed sheet with the given name.
func (r *ExcelReader) Sheet(name string) (models.Sheet, bool) {
	for _, s := range r.sheets {
		if s.Name == name {
			return s.Clone(), true
		}
	}
	return models.Sheet{}, false
}

// FormulaCount returns the number of formula cells across all sheets.
func (r *ExcelReader) FormulaCount() int {
	total := 0
	for _, s := range r.sheets {
		total += s.FormulaCount()
	}
	return total
}

// Stats summarizes the parsed sheets.
func (r *ExcelReader) Stats() models.Stats {
	totalCells := 0
	names := make([]string, 0, len(r.sheets))
	for _, s := range r.sheets {
		totalCells += len(s.Cells)
		names = append(names, s.Name)
	}
	return models.Stats{
		SheetCount:   len(r.sheets),
		FormulaCount: r.FormulaCount(),
		TotalCells:   totalCells,
		SheetNames:   names,
	}
}

// Summaries returns a per-sheet summary in container order.
func (r *ExcelReader) Summaries() []models.SheetSummary {
	summaries := make([]models.SheetSummary, 0, len(r.sheets))
	for _, s := range r.sheets {
		summaries = append(summaries, parser.Summarize(s))
	}
	return summaries
}

// Failures returns the sheets dropped by the last Parse, in container order.
func (r *ExcelReader) Failures() []*SheetError {
	failures := make([]*SheetError, len(r.failures))
	copy(failures, r.failures)
	return failures
}
