// Package output serializes extracted workbook data.
package output

import (
	json "github.com/goccy/go-json"

	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
)

// ToJSON encodes v as JSON, indented with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WorkbookToJSON encodes a whole workbook.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return ToJSON(wb, pretty)
}

// SheetToJSON encodes a single sheet.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}

// StatsToJSON encodes workbook statistics; per-sheet summaries are omitted
// when report.Sheets is empty.
func StatsToJSON(report *models.StatsReport, pretty bool) ([]byte, error) {
	return ToJSON(report, pretty)
}
