// Package document projects a report into a paginated PDF. The renderer only
// supports a restricted (ASCII) character repertoire, so all advice text is
// sanitized before it is embedded.
package document

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"numerology/pkg/domain"
	"numerology/pkg/serrors"
)

// Title is the first line of every rendered document.
const Title = "Numerology Report"

// Section headers for the three advice blocks, in render order.
const (
	CareerHeader       = "Career Advice:"
	RelationshipHeader = "Relationship Advice:"
	ActionStepsHeader  = "Action Steps:"
)

// IndicatorLines returns the four "label: value" lines in their fixed order,
// matching the chart's bar order.
func IndicatorLines(p domain.Profile) []string {
	return []string{
		fmt.Sprintf("Life Path: %d", p.LifePath),
		fmt.Sprintf("Expression: %d", p.Expression),
		fmt.Sprintf("Soul Urge: %d", p.SoulUrge),
		fmt.Sprintf("Personality: %d", p.Personality),
	}
}

// Section is one labeled advice block of the document.
type Section struct {
	Header string
	Body   string
}

// Sections returns the three advice sections in their fixed order, with
// bodies already sanitized to ASCII.
func Sections(a domain.AdviceBundle) []Section {
	return []Section{
		{Header: CareerHeader, Body: Sanitize(a.Career)},
		{Header: RelationshipHeader, Body: Sanitize(a.Relationship)},
		{Header: ActionStepsHeader, Body: Sanitize(a.ActionSteps)},
	}
}

// Render writes the report as a PDF to w: the title, the four indicator
// lines, then the three advice sections. Failures are reported as
// serrors.ErrRender.
func Render(r domain.Report, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(200, 10, Title, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, line := range IndicatorLines(r.Profile) {
		pdf.CellFormat(200, 10, line, "", 1, "", false, 0, "")
	}
	pdf.Ln(10)

	for _, sec := range Sections(r.Advice) {
		pdf.CellFormat(200, 10, sec.Header, "", 1, "", false, 0, "")
		pdf.MultiCell(0, 10, sec.Body, "", "", false)
	}

	if err := pdf.Output(w); err != nil {
		return serrors.Wrap(serrors.ErrRender, err, "could not write document")
	}

	return nil
}
