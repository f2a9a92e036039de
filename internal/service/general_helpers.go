package service

import "math"

// RoundingPrecision is the divisor/multiplier used to round monetary values
// to two decimal places in API responses.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places using the package RoundingPrecision constant.
// The engine itself returns raw numbers; rounding is applied at the service
// boundary so stored records and responses stay consistent.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
