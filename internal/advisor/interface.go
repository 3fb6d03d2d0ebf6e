// Package advisor turns a single numeric indicator into advisory prose by
// templating an instruction and issuing one request to the text-generation
// collaborator. It performs no caching, retries or streaming; collaborator
// failures surface as serrors.ErrService.
package advisor

import (
	"context"
)

// Kind selects which advice template is used and which indicator it expects.
type Kind string

const (
	// KindCareer requests career advice for the life path number.
	KindCareer Kind = "CAREER"
	// KindRelationship requests relationship advice for the soul urge number.
	KindRelationship Kind = "RELATIONSHIP"
	// KindActionSteps requests actionable steps for the expression number.
	KindActionSteps Kind = "ACTION_STEPS"
)

//go:generate mockgen -package mockadvisor -source=interface.go -destination=mock/mockadvisor.go *
type Advisor interface {
	// Advice returns the generated text for the given kind and indicator.
	Advice(ctx context.Context, kind Kind, number int) (string, error)
}
