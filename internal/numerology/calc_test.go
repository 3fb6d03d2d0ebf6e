package numerology_test

import (
	"testing"
	"time"

	"numerology/internal/numerology"
	"numerology/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestLifePath(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		out  int
	}{
		{
			// 1990+5+15 = 2010 -> 3
			name: "sum then reduce, full year value",
			date: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			out:  3,
		},
		{
			// 2000+1+1 = 2002 -> 4
			name: "millennium date",
			date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			out:  4,
		},
		{
			// 1975+12+31 = 2018 -> 11 (master)
			name: "sum landing on master",
			date: time.Date(1975, 12, 31, 0, 0, 0, 0, time.UTC),
			out:  11,
		},
	}

	for _, tc := range cases {
		if got := numerology.LifePath(tc.date); got != tc.out {
			t.Errorf("%s: LifePath(%s) = %d, want %d", tc.name, tc.date.Format(time.DateOnly), got, tc.out)
		}
	}
}

func TestNameNumbers(t *testing.T) {
	cases := []struct {
		name        string
		in          string
		expression  int
		soulUrge    int
		personality int
	}{
		{
			// a=1, n=14, n=14 -> 29 -> 11; vowels: a -> 1; consonants: 28 -> 1
			name:        "Ann",
			in:          "Ann",
			expression:  11,
			soulUrge:    1,
			personality: 1,
		},
		{
			name:        "case insensitive",
			in:          "aNN",
			expression:  11,
			soulUrge:    1,
			personality: 1,
		},
		{
			name:        "non letters skipped",
			in:          "A-n n!3",
			expression:  11,
			soulUrge:    1,
			personality: 1,
		},
		{
			name:        "empty name degenerates to zero",
			in:          "",
			expression:  0,
			soulUrge:    0,
			personality: 0,
		},
		{
			name:        "all non alphabetic degenerates to zero",
			in:          "123 !?",
			expression:  0,
			soulUrge:    0,
			personality: 0,
		},
		{
			// y is a consonant: y=25 -> 7; no vowels
			name:        "y is never a vowel",
			in:          "y",
			expression:  7,
			soulUrge:    0,
			personality: 7,
		},
	}

	for _, tc := range cases {
		if got := numerology.Expression(tc.in); got != tc.expression {
			t.Errorf("%s: Expression(%q) = %d, want %d", tc.name, tc.in, got, tc.expression)
		}
		if got := numerology.SoulUrge(tc.in); got != tc.soulUrge {
			t.Errorf("%s: SoulUrge(%q) = %d, want %d", tc.name, tc.in, got, tc.soulUrge)
		}
		if got := numerology.Personality(tc.in); got != tc.personality {
			t.Errorf("%s: Personality(%q) = %d, want %d", tc.name, tc.in, got, tc.personality)
		}
	}
}

func TestProfileOf(t *testing.T) {
	got := numerology.ProfileOf(domain.Input{
		FullName:  "Ann",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
	})

	require.Equal(t, domain.Profile{
		LifePath:    3,
		Expression:  11,
		SoulUrge:    1,
		Personality: 1,
	}, got)
}
