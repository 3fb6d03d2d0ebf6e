package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"numerology/internal/advisor"
	"numerology/internal/config"
	"numerology/internal/numerology"
	"numerology/pkg/chart"
	"numerology/pkg/document"
	"numerology/pkg/domain"
	"numerology/pkg/logger"
	"numerology/pkg/metrics"
	"numerology/pkg/serrors"
)

// Options configure rendering output. These settings are typically derived
// from application configuration.
type Options struct {
	// OutputDir is the directory rendered documents are written to.
	OutputDir string
	// ChartWidth and ChartHeight are the chart image dimensions in pixels.
	ChartWidth  int
	ChartHeight int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OutputDir:   cfg.Report.OutputDir,
		ChartWidth:  cfg.Report.ChartWidth,
		ChartHeight: cfg.Report.ChartHeight,
	}
}

// pipeline is the concrete implementation of the Runner interface. It owns
// no state beyond its collaborators; each Run is an independent cycle.
type pipeline struct {
	options Options
	advisor advisor.Advisor
	metrics *metrics.Pipeline
}

// Run executes one full cycle (calculate, advice, assemble, render) for a submission.
// The three advice requests are independent, so they run concurrently; the
// first failure cancels the others and no partial report is assembled.
func (p pipeline) Run(ctx context.Context, in domain.Input) (*RunResult, error) {
	start := time.Now()
	res, err := p.run(ctx, in)
	p.metrics.RecordRun(ctx, time.Since(start).Seconds(), err)

	return res, err
}

func (p pipeline) run(ctx context.Context, in domain.Input) (*RunResult, error) {
	profile := numerology.ProfileOf(in)
	logger.Info(ctx, "profile computed",
		zap.Int("lifePath", profile.LifePath),
		zap.Int("expression", profile.Expression),
		zap.Int("soulUrge", profile.SoulUrge),
		zap.Int("personality", profile.Personality))

	// Each goroutine writes a distinct field, so the bundle needs no lock;
	// g.Wait is the join point before the bundle is read.
	var bundle domain.AdviceBundle
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := p.advisor.Advice(gctx, advisor.KindCareer, profile.LifePath)
		bundle.Career = text

		return err
	})
	g.Go(func() error {
		text, err := p.advisor.Advice(gctx, advisor.KindRelationship, profile.SoulUrge)
		bundle.Relationship = text

		return err
	})
	g.Go(func() error {
		text, err := p.advisor.Advice(gctx, advisor.KindActionSteps, profile.Expression)
		bundle.ActionSteps = text

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not gather advice: %w", err)
	}

	rep := Assemble(in, profile, bundle)
	ctx = logger.WithFields(ctx, zap.String("reportID", rep.ID.String()))

	// A render failure aborts only the render step. The assembled report is
	// returned alongside the error so computed indicators and advice survive.
	res := &RunResult{Report: rep}

	var chartBuf bytes.Buffer
	if err := chart.Render(rep.Profile, chart.Options{
		Width:  p.options.ChartWidth,
		Height: p.options.ChartHeight,
	}, &chartBuf); err != nil {
		p.metrics.RecordRenderFailure(ctx, "chart")

		return res, fmt.Errorf("could not render chart: %w", err)
	}
	res.ChartPNG = chartBuf.Bytes()

	docPath, err := p.writeDocument(rep)
	if err != nil {
		p.metrics.RecordRenderFailure(ctx, "document")

		return res, fmt.Errorf("could not render document: %w", err)
	}
	res.DocumentPath = docPath

	logger.Info(ctx, "report rendered",
		zap.String("document", docPath),
		zap.Int("chartBytes", chartBuf.Len()))

	return res, nil
}

// writeDocument renders the PDF to its final location. The file is closed on
// every exit path and removed again if rendering or closing failed partway.
func (p pipeline) writeDocument(rep domain.Report) (string, error) {
	if err := os.MkdirAll(p.options.OutputDir, 0o755); err != nil {
		return "", serrors.Wrap(serrors.ErrRender, err, "could not create output directory")
	}

	path := p.documentPath(rep.ID)
	f, err := os.Create(path)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrRender, err, "could not create document file")
	}

	renderErr := document.Render(rep, f)
	closeErr := f.Close()
	if renderErr == nil && closeErr != nil {
		renderErr = serrors.Wrap(serrors.ErrRender, closeErr, "could not close document file")
	}
	if renderErr != nil {
		_ = os.Remove(path)

		return "", renderErr
	}

	return path, nil
}

func (p pipeline) documentPath(id domain.ReportID) string {
	return filepath.Join(p.options.OutputDir, fmt.Sprintf("numerology_report_%s.pdf", id))
}

// DocumentPath resolves the rendered document for id. The output directory
// is the only registry of rendered artifacts; a missing file means the
// report is unknown (or its render cycle is over).
func (p pipeline) DocumentPath(_ context.Context, id domain.ReportID) (string, error) {
	path := p.documentPath(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", serrors.With(serrors.ErrNotFound, "document for report %s not found", id)
		}

		return "", fmt.Errorf("could not stat document: %w", err)
	}

	return path, nil
}

// New creates a Runner backed by the provided advisor and configured with the
// given options. metrics may be nil.
func New(adv advisor.Advisor, m *metrics.Pipeline, options Options) Runner {
	return &pipeline{
		options: options,
		advisor: adv,
		metrics: m,
	}
}
