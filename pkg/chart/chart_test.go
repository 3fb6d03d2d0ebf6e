package chart_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"numerology/pkg/chart"
	"numerology/pkg/domain"
)

func TestLabelsAndValuesAligned(t *testing.T) {
	p := domain.Profile{LifePath: 3, Expression: 11, SoulUrge: 1, Personality: 9}

	require.Equal(t, []string{"Life Path", "Expression", "Soul Urge", "Personality"}, chart.Labels())
	require.Equal(t, []int{3, 11, 1, 9}, chart.Values(p))
	require.Len(t, chart.Values(p), len(chart.Labels()))
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	err := chart.Render(domain.Profile{
		LifePath:    3,
		Expression:  11,
		SoulUrge:    1,
		Personality: 1,
	}, chart.Options{Width: 640, Height: 480}, &buf)
	require.NoError(t, err)

	// PNG magic bytes
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "expected a PNG header")
}
