package service

import "math"

// RoundingPrecision scales values for two-decimal rounding.
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places. Used throughout the
// service layer so monetary values in API responses are consistent.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
