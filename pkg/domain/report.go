package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a rendered report within one process run.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReportID uuid.UUID

// String returns the canonical string form of the report ID.
func (id ReportID) String() string { return uuid.UUID(id).String() }

// NewReportID returns a freshly generated report ID.
func NewReportID() ReportID { return ReportID(uuid.New()) }

// Input holds the raw user-provided values a report is derived from.
// FullName may contain arbitrary characters; only ASCII letters are
// significant to the calculators. BirthDate bounds (1970..today) are enforced
// at the API boundary, not here.
type Input struct {
	// FullName is the person's full name as entered.
	FullName string `json:"fullName"`
	// BirthDate is the person's date of birth.
	BirthDate time.Time `json:"birthDate"`
}

// Profile holds the four derived numerology indicators. Every field is the
// output of the digit reducer, so each value is 0, 1..9, 11, 22 or 33.
// A Profile is never mutated after creation.
type Profile struct {
	// LifePath is derived from the birthdate (year + month + day, reduced).
	LifePath int `json:"lifePath"`
	// Expression is derived from all letters of the full name.
	Expression int `json:"expression"`
	// SoulUrge is derived from the vowels of the full name.
	SoulUrge int `json:"soulUrge"`
	// Personality is derived from the consonants of the full name.
	Personality int `json:"personality"`
}

// AdviceBundle holds the three advisory texts returned by the external
// text-generation collaborator. The texts are raw model output; they may be
// empty or contain arbitrary Unicode and are sanitized only at document
// rendering time.
type AdviceBundle struct {
	// Career is the advice generated for the life path number.
	Career string `json:"career"`
	// Relationship is the advice generated for the soul urge number.
	Relationship string `json:"relationship"`
	// ActionSteps is the advice generated for the expression number.
	ActionSteps string `json:"actionSteps"`
}

// Report combines one Profile with one AdviceBundle. It is constructed once
// per submission, passed to rendering, and has no independent persistence.
type Report struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`

	// Input is the submission the report was derived from.
	Input Input `json:"input"`
	// Profile holds the four computed indicators.
	Profile Profile `json:"profile"`
	// Advice holds the three generated advice texts.
	Advice AdviceBundle `json:"advice"`

	// CreatedAt is the time the report was assembled.
	CreatedAt time.Time `json:"createdAt"`
}
