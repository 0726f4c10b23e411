package service

import (
	"strings"
)

// NormalizeName is the single canonical normalization used everywhere names
// are matched: trim, collapse inner whitespace, case-fold. Import rows,
// override lists and dual-role detection all go through it so near-miss
// encodings of one name resolve identically.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ResolutionStatus is the outcome of a name lookup
type ResolutionStatus int

const (
	Resolved ResolutionStatus = iota
	Unresolved
	Ambiguous
)

// Resolution is the result of resolving a display name against a candidate set
type Resolution[T any] struct {
	Status  ResolutionStatus
	Match   T
	Matches []T // populated when Status == Ambiguous
}

// ResolveName matches a name against candidates using normalized equality.
// No substring or fuzzy matching: a name either resolves to exactly one
// candidate, resolves to none, or is reported ambiguous.
func ResolveName[T any](name string, candidates []T, nameOf func(T) string) Resolution[T] {
	want := NormalizeName(name)
	var matches []T
	for _, c := range candidates {
		if NormalizeName(nameOf(c)) == want {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return Resolution[T]{Status: Unresolved}
	case 1:
		return Resolution[T]{Status: Resolved, Match: matches[0]}
	default:
		return Resolution[T]{Status: Ambiguous, Matches: matches}
	}
}
