package models

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary input value. Upstream forms deliver the same field as
// a JSON number, a numeric string, an empty string, or null depending on how
// the operator filled it in; all of those decode without error. Anything
// non-numeric coerces to 0 rather than failing the whole snapshot.
type Amount float64

// UnmarshalJSON implements lenient numeric decoding. It never returns an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	*a = Amount(ParseNumber(s))
	return nil
}

// Float returns the amount as a plain float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// ParseNumber parses a numeric string, returning 0 for empty or invalid
// input. Comma decimal separators (locale forms) are accepted when the
// string contains no dot.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
