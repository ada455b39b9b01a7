package validate

import (
	"regexp"
	"strconv"
	"strings"

	"automall/internal/domain"
)

var (
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reQ     = regexp.MustCompile(`^[\pL\pN .'_-]{1,60}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 ]{7,20}$`)
)

// ID validates a product/branch/category identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q sanitizes a search term: trimmed, clamped, restricted charset.
// An empty term is valid and matches everything.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	// Clamp on runes so a multi-byte character never gets split.
	if r := []rune(s); len(r) > 60 {
		s = string(r[:60])
	}
	return s, reQ.MatchString(s)
}

// Price parses a non-negative whole-peso amount.
func Price(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Stock parses a non-negative stock count.
func Stock(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Condition validates the product condition enum.
func Condition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case domain.ConditionNew, domain.ConditionUsed, domain.ConditionRefurbished:
		return s, true
	}
	return "", false
}

// Phone validates a branch contact number.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// Images splits a newline-separated list of image URLs/data URIs,
// dropping blank lines. An empty result is allowed; the UI substitutes
// a placeholder.
func Images(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
