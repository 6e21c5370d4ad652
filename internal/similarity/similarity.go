// Package similarity provides the string-distance primitives and the
// field-level comparators that the duplicate detector scores with.
package similarity

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// Calculate returns a similarity value between 0 and 1 for two strings.
// Trimmed, case-insensitive equal strings score 1.0. Otherwise the score is
// 1 - editDistance/maxLength. An empty string compared against a non-empty
// one scores 0.
func Calculate(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return 1.0 - float64(levenshteinDistance(a, b))/float64(longer)
}

// levenshteinDistance computes the classic edit distance where insertion,
// deletion and substitution each cost 1.
func levenshteinDistance(a, b string) int {
	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		previous[j] = j
	}
	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[j] = min(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}
		previous, current = current, previous
	}
	return previous[len(b)]
}

// NormalizePhoneNumber reduces a phone string to its canonical comparison
// key: digits only, with a leading country code 1 dropped from 11-digit
// numbers. The function is idempotent.
func NormalizePhoneNumber(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		return digits[1:]
	}
	return digits
}

// PhoneNumbersSimilar reports whether two phone strings likely denote the
// same line. Equal normalized forms match, one normalized form containing
// the other matches (partial numbers and extension variants), and otherwise
// a similarity above 0.8 on the normalized forms matches.
func PhoneNumbersSimilar(p1, p2 string) bool {
	n1 := NormalizePhoneNumber(p1)
	n2 := NormalizePhoneNumber(p2)
	if n1 == "" || n2 == "" {
		return false
	}
	if n1 == n2 {
		return true
	}
	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		return true
	}
	return Calculate(n1, n2) > 0.8
}

// NamesSimilar reports whether two names score above 0.7.
func NamesSimilar(n1, n2 string) bool {
	return Calculate(n1, n2) > 0.7
}

// EmailsSimilar reports whether two email addresses likely belong to the
// same person: case-insensitive equality, or the same domain with local
// parts scoring above 0.8.
func EmailsSimilar(e1, e2 string) bool {
	e1 = strings.ToLower(strings.TrimSpace(e1))
	e2 = strings.ToLower(strings.TrimSpace(e2))
	if e1 == "" || e2 == "" {
		return false
	}
	if e1 == e2 {
		return true
	}
	local1, domain1, ok1 := strings.Cut(e1, "@")
	local2, domain2, ok2 := strings.Cut(e2, "@")
	if !ok1 || !ok2 || domain1 != domain2 {
		return false
	}
	return Calculate(local1, local2) > 0.8
}
