package advisor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"numerology/internal/advisor"
	"numerology/pkg/logger"
	"numerology/pkg/serrors"
	mocktextgen "numerology/pkg/textgen/mock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestPrompt(t *testing.T) {
	cases := []struct {
		name     string
		kind     advisor.Kind
		number   int
		contains []string
		ok       bool
	}{
		{
			name:     "career references life path",
			kind:     advisor.KindCareer,
			number:   3,
			contains: []string{"Life Path Number is 3", "career advice", "Keep description precise"},
			ok:       true,
		},
		{
			name:     "relationship references soul urge",
			kind:     advisor.KindRelationship,
			number:   11,
			contains: []string{"Soul Urge Number is 11", "relationship advice"},
			ok:       true,
		},
		{
			name:     "action steps references expression",
			kind:     advisor.KindActionSteps,
			number:   22,
			contains: []string{"Expression Number is 22", "actionable steps"},
			ok:       true,
		},
		{
			name: "unknown kind fails",
			kind: advisor.Kind("HOROSCOPE"),
			ok:   false,
		},
	}

	for _, tc := range cases {
		got, err := advisor.Prompt(tc.kind, tc.number)
		if !tc.ok {
			require.Error(t, err, tc.name)

			continue
		}
		require.NoError(t, err, tc.name)
		for _, s := range tc.contains {
			require.Contains(t, got, s, tc.name)
		}
	}
}

func TestAdvice_success(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocktextgen.NewMockGenerator(ctrl)

	wantPrompt, err := advisor.Prompt(advisor.KindCareer, 7)
	require.NoError(t, err)

	gen.EXPECT().
		Generate(gomock.Any(), wantPrompt).
		Return("1. Do things.\n2. Do more things.", nil)

	a := advisor.New(gen, nil)
	got, err := a.Advice(context.Background(), advisor.KindCareer, 7)
	require.NoError(t, err)
	require.Equal(t, "1. Do things.\n2. Do more things.", got)
}

func TestAdvice_collaboratorFailureIsServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocktextgen.NewMockGenerator(ctrl)

	boom := errors.New("503 from upstream")
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return("", boom)

	a := advisor.New(gen, nil)
	_, err := a.Advice(context.Background(), advisor.KindRelationship, 5)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrService)
	require.ErrorIs(t, err, boom)
}

func TestAdvice_unknownKindDoesNotCallGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocktextgen.NewMockGenerator(ctrl)
	// no EXPECT: any Generate call fails the test

	a := advisor.New(gen, nil)
	_, err := a.Advice(context.Background(), advisor.Kind("bogus"), 1)
	require.Error(t, err)
}
