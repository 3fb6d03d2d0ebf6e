// Package chart projects a numerology profile into a categorical bar chart.
package chart

import (
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	"numerology/pkg/domain"
	"numerology/pkg/serrors"
)

// Labels returns the bar labels in their fixed order. The document's
// indicator lines follow the same order.
func Labels() []string {
	return []string{"Life Path", "Expression", "Soul Urge", "Personality"}
}

// Values returns the bar heights for p, ordered like Labels.
func Values(p domain.Profile) []int {
	return []int{p.LifePath, p.Expression, p.SoulUrge, p.Personality}
}

// Options control the rendered image dimensions. Zero values fall back to
// the go-chart defaults.
type Options struct {
	Width  int
	Height int
}

// Render writes a PNG bar chart of the profile to w: one bar per indicator,
// heights equal to the profile values. Failures are reported as
// serrors.ErrRender.
func Render(p domain.Profile, opts Options, w io.Writer) error {
	labels := Labels()
	values := Values(p)

	bars := make([]gochart.Value, 0, len(labels))
	for i, label := range labels {
		bars = append(bars, gochart.Value{
			Label: label,
			Value: float64(values[i]),
		})
	}

	graph := gochart.BarChart{
		Title:    "Numerology Insights",
		Width:    opts.Width,
		Height:   opts.Height,
		BarWidth: 60,
		YAxis: gochart.YAxis{
			Name: "Numerology Values",
			// fixed range so master numbers never clip and small profiles
			// keep proportional bars
			Range: &gochart.ContinuousRange{Min: 0, Max: 35},
		},
		Bars: bars,
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return serrors.Wrap(serrors.ErrRender, err, "could not render chart")
	}

	return nil
}
