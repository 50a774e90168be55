// Package analysis implements the origin-of-funds solvency engine.
//
// Every exported computation in this package is a total, side-effect-free
// function of its inputs: bad dates, bad numbers, and degenerate divisions
// all degrade to conservative defaults instead of errors, so results are
// reproducible for compliance review.
package analysis

import (
	"encoding/json"
	"math"

	"github.com/tomasvidela/solva/internal/models"
)

// ToNumber coerces an arbitrary decoded JSON value to a float64.
// Returns 0 for nil, non-numeric strings, and NaN/Inf. Never panics.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case float32:
		return ToNumber(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case models.Amount:
		return x.Float()
	case json.Number:
		return models.ParseNumber(x.String())
	case string:
		return models.ParseNumber(x)
	default:
		return 0
	}
}

// SanitizeRate guards against a zero or negative exchange rate, which would
// corrupt every division downstream. Callers are expected to log when the
// returned rate differs from the input.
func SanitizeRate(rate float64) float64 {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 1
	}
	return rate
}

// ToBase converts an amount to ARS. The field's declared currency decides
// the direction; it is never guessed from magnitude.
func ToBase(amount float64, currency models.Currency, rate float64) float64 {
	if currency.IsForeign() {
		return amount * SanitizeRate(rate)
	}
	return amount
}

// ToForeign converts an amount to USD.
func ToForeign(amount float64, currency models.Currency, rate float64) float64 {
	if currency.IsForeign() {
		return amount
	}
	return amount / SanitizeRate(rate)
}

// round2 rounds to two decimal places, the precision reports are issued in.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
