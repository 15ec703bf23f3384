package normalizer

import (
	"strconv"
	"strings"
)

// normalizeText trims surrounding whitespace. Checklist exports are hand
// maintained spreadsheets, so every comparison goes through this first.
func normalizeText(s string) string {
	return strings.TrimSpace(s)
}

// CanonicalNumber normalizes a card number: purely numeric strings lose
// their leading zeros ("05" and "5" are the same card), anything else is
// kept verbatim after trimming.
func CanonicalNumber(s string) string {
	s = normalizeText(s)
	if !isDigits(s) {
		return s
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// SplitSetName reports whether name denotes a parallel of base, and if so
// returns the parallel name. A parallel name is the remainder after
// "base + space", trimmed of surrounding spaces and hyphens. A name that
// merely contains base as a substring is not a parallel.
func SplitSetName(base, name string) (string, bool) {
	if !strings.HasPrefix(name, base+" ") {
		return "", false
	}
	return strings.Trim(name[len(base)+1:], " -"), true
}

// InferAttributes derives attribute codes from a set name. The two known
// heuristics: "autograph" anywhere in the name marks AU, "relic" marks
// RELIC; both can apply.
func InferAttributes(setName string) []string {
	lower := strings.ToLower(setName)
	var attrs []string
	if strings.Contains(lower, "autograph") {
		attrs = append(attrs, "AU")
	}
	if strings.Contains(lower, "relic") {
		attrs = append(attrs, "RELIC")
	}
	return attrs
}

// parseSequence interprets a raw sequence cell as a "numbered to" limit.
// Non-numeric text means the row simply has no print run, never an error.
func parseSequence(s string) (int, bool) {
	s = normalizeText(s)
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
