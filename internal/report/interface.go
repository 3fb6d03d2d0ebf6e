// Package report implements the report-assembly pipeline: calculate the four
// indicators, gather the three advice texts, assemble the immutable report
// and project it into a chart and a downloadable document.
package report

import (
	"context"

	"numerology/pkg/domain"
)

// RunResult is everything one pipeline run produces.
type RunResult struct {
	// Report is the assembled report value.
	Report domain.Report
	// ChartPNG is the rendered bar chart image. Empty when chart rendering
	// failed.
	ChartPNG []byte
	// DocumentPath is the location of the rendered PDF on disk. Empty when
	// document rendering failed.
	DocumentPath string
}

//go:generate mockgen -package mockreport -source=interface.go -destination=mock/mockreport.go *
type Runner interface {
	// Run executes one full pipeline cycle for the given input. When only
	// rendering failed, the returned result still carries the assembled
	// report next to the non-nil error; callers decide how much of it to
	// surface.
	Run(ctx context.Context, in domain.Input) (*RunResult, error)
	// DocumentPath resolves the on-disk document for a previously rendered
	// report, or a not-found error when no such artifact exists.
	DocumentPath(ctx context.Context, id domain.ReportID) (string, error)
}
