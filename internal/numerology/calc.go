package numerology

import (
	"time"

	"numerology/pkg/domain"
)

// LifePath derives the life path number from a birthdate. The year, month and
// day are summed as whole integers (the year contributes its full value, e.g.
// 1990, not 1+9+9+0) and the total is reduced. Summing first and reducing
// once is deliberate; reducing each part separately changes results.
func LifePath(birthDate time.Time) int {
	return Reduce(birthDate.Year() + int(birthDate.Month()) + birthDate.Day())
}

// letterValue maps an ASCII letter to its alphabet position, a=1 .. z=26,
// case-insensitively. This system uses the raw position, not the cyclic 1-9
// Pythagorean table; the mapping is observable behavior and must stay as is.
// Non-letters return 0.
func letterValue(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 1
	default:
		return 0
	}
}

// isVowel reports whether r is one of a, e, i, o, u in either case. The
// letter y is never treated as a vowel.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}

// sumName sums letterValue over the characters of name that satisfy keep.
// Non-ASCII-letter characters never reach keep.
func sumName(name string, keep func(rune) bool) int {
	total := 0
	for _, r := range name {
		if letterValue(r) == 0 {
			continue
		}
		if keep(r) {
			total += letterValue(r)
		}
	}

	return total
}

// Expression derives the expression number from every letter of the name.
// Spaces, digits and punctuation are skipped. An empty or all-non-alphabetic
// name yields 0.
func Expression(fullName string) int {
	return Reduce(sumName(fullName, func(rune) bool { return true }))
}

// SoulUrge derives the soul urge number from the vowels of the name.
func SoulUrge(fullName string) int {
	return Reduce(sumName(fullName, isVowel))
}

// Personality derives the personality number from the consonants of the name.
func Personality(fullName string) int {
	return Reduce(sumName(fullName, func(r rune) bool { return !isVowel(r) }))
}

// ProfileOf computes all four indicators for the given input.
func ProfileOf(in domain.Input) domain.Profile {
	return domain.Profile{
		LifePath:    LifePath(in.BirthDate),
		Expression:  Expression(in.FullName),
		SoulUrge:    SoulUrge(in.FullName),
		Personality: Personality(in.FullName),
	}
}
