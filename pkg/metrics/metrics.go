// Package metrics holds the shared metric instruments for the report
// pipeline. Instruments are created from an OpenTelemetry meter; the API
// server wires that meter to a Prometheus exporter.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AdviceBuckets covers text-generation latencies, which routinely run into
// tens of seconds. The pipeline run histogram reuses them since a run is
// dominated by its advice calls.
var AdviceBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60} //nolint: gochecknoglobals

// Pipeline bundles the instruments recorded by the report pipeline and the
// advice orchestrator. A nil *Pipeline is valid and records nothing, so
// callers that run without a meter (tests, the one-shot CLI) can pass nil.
type Pipeline struct {
	runDuration    metric.Float64Histogram
	adviceRequests metric.Int64Counter
	adviceDuration metric.Float64Histogram
	renderFailures metric.Int64Counter
}

// NewPipeline creates the pipeline instruments on the given meter.
func NewPipeline(meter metric.Meter) (*Pipeline, error) {
	runDuration, err := meter.Float64Histogram("pipeline_run_duration_seconds",
		metric.WithDescription("End-to-end report pipeline duration."),
		metric.WithExplicitBucketBoundaries(AdviceBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create run duration histogram: %w", err)
	}

	adviceRequests, err := meter.Int64Counter("advice_requests_total",
		metric.WithDescription("Requests issued to the text-generation collaborator."))
	if err != nil {
		return nil, fmt.Errorf("could not create advice requests counter: %w", err)
	}

	adviceDuration, err := meter.Float64Histogram("advice_request_duration_seconds",
		metric.WithDescription("Latency of individual text-generation requests."),
		metric.WithExplicitBucketBoundaries(AdviceBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create advice duration histogram: %w", err)
	}

	renderFailures, err := meter.Int64Counter("render_failures_total",
		metric.WithDescription("Failed chart or document projections."))
	if err != nil {
		return nil, fmt.Errorf("could not create render failures counter: %w", err)
	}

	return &Pipeline{
		runDuration:    runDuration,
		adviceRequests: adviceRequests,
		adviceDuration: adviceDuration,
		renderFailures: renderFailures,
	}, nil
}

// RecordRun records one end-to-end pipeline execution.
func (p *Pipeline) RecordRun(ctx context.Context, seconds float64, err error) {
	if p == nil {
		return
	}
	p.runDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.Bool("success", err == nil)))
}

// RecordAdvice records one text-generation request for the given advice kind.
func (p *Pipeline) RecordAdvice(ctx context.Context, kind string, seconds float64, err error) {
	if p == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("success", err == nil),
	)
	p.adviceRequests.Add(ctx, 1, attrs)
	p.adviceDuration.Record(ctx, seconds, attrs)
}

// RecordRenderFailure records a failed projection of the named artifact
// ("chart" or "document").
func (p *Pipeline) RecordRenderFailure(ctx context.Context, artifact string) {
	if p == nil {
		return
	}
	p.renderFailures.Add(ctx, 1,
		metric.WithAttributes(attribute.String("artifact", artifact)))
}
