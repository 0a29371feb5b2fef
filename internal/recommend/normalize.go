package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

var digitsRe = regexp.MustCompile(`\d+`)

// ParseDurationMinutes extracts integer minutes from a free-text duration
// such as "49 minutes" or "30". Returns 0 when no digits are present.
func ParseDurationMinutes(value string) int {
	m := digitsRe.FindString(value)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeYesNo collapses free-text truthy indicators into "Yes"/"No".
func NormalizeYesNo(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1":
		return "Yes"
	}
	return "No"
}

// testTypeCodes maps verbose test type names to their one-letter codes.
// Already-coded single letters map to themselves.
var testTypeCodes = map[string]string{
	"Ability":     "A",
	"Behavioral":  "B",
	"Cognitive":   "C",
	"Knowledge":   "K",
	"Personality": "P",
	"Situational": "S",
	"A":           "A",
	"B":           "B",
	"C":           "C",
	"K":           "K",
	"P":           "P",
	"S":           "S",
}

// MapTestTypesToCodes converts verbose category names into one-letter codes,
// dropping unknown entries and duplicates while preserving first-seen order.
func MapTestTypesToCodes(values []string) []string {
	codes := []string{}
	seen := make(map[string]bool)
	for _, v := range values {
		s := strings.TrimSpace(v)
		code, ok := testTypeCodes[s]
		if !ok {
			code, ok = testTypeCodes[titleCase(s)]
		}
		if !ok || seen[code] {
			continue
		}
		codes = append(codes, code)
		seen[code] = true
	}
	return codes
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// NormalizeURL lower-cases a URL and strips any trailing slashes so URLs
// compare equal across catalog and label sources.
func NormalizeURL(u string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(u), "/"))
}
