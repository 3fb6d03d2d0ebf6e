package advisor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"numerology/pkg/logger"
	"numerology/pkg/metrics"
	"numerology/pkg/serrors"
	"numerology/pkg/textgen"
)

// styleDirective is appended to every template so the model answers briefly
// and in points.
const styleDirective = "Keep description precise, points and small"

// Prompt builds the fixed instruction for the given kind, parameterized by
// the numeric indicator. Unknown kinds are an error.
func Prompt(kind Kind, number int) (string, error) {
	switch kind {
	case KindCareer:
		return fmt.Sprintf(
			"Based on numerology, the Life Path Number is %d. "+
				"Provide detailed career advice for this person. %s", number, styleDirective), nil
	case KindRelationship:
		return fmt.Sprintf(
			"Based on numerology, the Soul Urge Number is %d. "+
				"Provide relationship advice for this person. %s", number, styleDirective), nil
	case KindActionSteps:
		return fmt.Sprintf(
			"Based on numerology, the Expression Number is %d. "+
				"Provide actionable steps for achieving life goals. %s", number, styleDirective), nil
	default:
		return "", fmt.Errorf("unknown advice kind: %q", kind)
	}
}

// advisor is the concrete implementation of the Advisor interface. The
// generator is an explicit dependency so tests can substitute a mock.
type advisor struct {
	generator textgen.Generator
	metrics   *metrics.Pipeline
}

// Advice builds the instruction for kind and issues exactly one generation
// request. The returned text is the collaborator's raw output; failures are
// wrapped as serrors.ErrService since advice is essential report content.
func (a advisor) Advice(ctx context.Context, kind Kind, number int) (string, error) {
	prompt, err := Prompt(kind, number)
	if err != nil {
		return "", fmt.Errorf("could not build prompt: %w", err)
	}

	start := time.Now()
	text, err := a.generator.Generate(ctx, prompt)
	a.metrics.RecordAdvice(ctx, string(kind), time.Since(start).Seconds(), err)
	if err != nil {
		logger.Error(ctx, "advice request failed",
			zap.String("kind", string(kind)),
			zap.Int("number", number),
			zap.Error(err))

		return "", serrors.Wrap(serrors.ErrService, err, "could not get %s advice", kind)
	}

	logger.Debug(ctx, "advice generated",
		zap.String("kind", string(kind)),
		zap.Int("number", number),
		zap.Int("length", len(text)))

	return text, nil
}

// New creates an Advisor backed by the provided generator. metrics may be nil.
func New(generator textgen.Generator, m *metrics.Pipeline) Advisor {
	return &advisor{
		generator: generator,
		metrics:   m,
	}
}
