// Package textgen defines the abstraction for the external text-generation
// collaborator that produces advisory prose from a templated instruction.
package textgen

import (
	"context"
)

// Generator is the capability used to obtain free-form text for a prompt.
// Implementations issue one synchronous request per call; callers own
// retries and timeouts (this system does neither).
//
//go:generate mockgen -package mocktextgen -source=interface.go -destination=mock/mocktextgen.go *
type Generator interface {
	// Generate sends a single natural-language instruction and returns the
	// completed text.
	Generate(ctx context.Context, prompt string) (string, error)
}
