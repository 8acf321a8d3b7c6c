package parser

import (
	"testing"

	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/source"
)

func TestSummarize(t *testing.T) {
	rng := source.NewRange(4, 4)
	rng.Set(1, 1, source.Int(1))
	rng.Set(1, 2, source.String("=B2*2"))
	rng.Set(3, 1, source.ErrorRef)

	summary := Summarize(ParseSheet("Data", rng))

	if summary.TotalCells != 16 {
		t.Errorf("TotalCells = %d, expected 16", summary.TotalCells)
	}
	if summary.NonEmptyCells != 3 {
		t.Errorf("NonEmptyCells = %d, expected 3", summary.NonEmptyCells)
	}
	if summary.FormulaCells != 1 {
		t.Errorf("FormulaCells = %d, expected 1", summary.FormulaCells)
	}
	if summary.TypeCounts[models.DataTypeEmpty] != 13 || summary.TypeCounts[models.DataTypeError] != 1 {
		t.Errorf("TypeCounts = %v", summary.TypeCounts)
	}
	if summary.DataRange != "B2:C4" {
		t.Errorf("DataRange = %q, expected B2:C4", summary.DataRange)
	}
	expected := models.Bounds{R1: 2, C1: 2, R2: 4, C2: 3}
	if summary.DataBounds == nil || *summary.DataBounds != expected {
		t.Errorf("DataBounds = %v, expected %v", summary.DataBounds, expected)
	}
}

func TestSummarizeAllEmpty(t *testing.T) {
	summary := Summarize(ParseSheet("Blank", source.NewRange(2, 2)))

	if summary.DataBounds != nil || summary.DataRange != "" {
		t.Errorf("expected no data bounds, got %v %q", summary.DataBounds, summary.DataRange)
	}
	if summary.NonEmptyCells != 0 {
		t.Errorf("NonEmptyCells = %d, expected 0", summary.NonEmptyCells)
	}
}
