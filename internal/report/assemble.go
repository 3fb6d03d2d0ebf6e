package report

import (
	"time"

	"numerology/pkg/domain"
)

// Assemble packages a profile and its advice bundle into a Report. Pure
// composition: beyond stamping an ID and timestamp there is no computation
// and no failure mode.
func Assemble(in domain.Input, profile domain.Profile, advice domain.AdviceBundle) domain.Report {
	return domain.Report{
		ID:        domain.NewReportID(),
		Input:     in,
		Profile:   profile,
		Advice:    advice,
		CreatedAt: time.Now().UTC(),
	}
}
