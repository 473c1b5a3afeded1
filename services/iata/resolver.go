// Package iata maps free-text place names to canonical IATA codes. Resolution
// is a pure lookup over static tables; an unresolved name is a normal outcome
// the conversation layer turns into a clarification, never a guessed code.
package iata

import "strings"

// Resolve maps a free-text place name to an IATA metro or airport code.
// Order: 3-letter tokens pass through uppercased; exact metro match; exact
// airport match; substring containment (metro before airport). The boolean is
// false when nothing matched.
func Resolve(freeText string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(freeText))
	if normalized == "" {
		return "", false
	}

	if len(normalized) == 3 && isAlpha(normalized) {
		return strings.ToUpper(normalized), true
	}

	if code, ok := metroAreaCodes[normalized]; ok {
		return code, true
	}
	if code, ok := airportCodes[normalized]; ok {
		return code, true
	}

	// Containment either way: "london city airport" names london, and a partial
	// token can still pin a known city.
	for _, city := range metroNames {
		if strings.Contains(normalized, city) || strings.Contains(city, normalized) {
			return metroAreaCodes[city], true
		}
	}
	for _, airport := range airportNames {
		if strings.Contains(normalized, airport) || strings.Contains(airport, normalized) {
			return airportCodes[airport], true
		}
	}

	return "", false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
