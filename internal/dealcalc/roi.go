package dealcalc

import "math"

// ComputeROI returns the return on investment as a whole-number percent.
// All methods guard a zero denominator by returning 0, never NaN or Inf.
//
// annualized with a zero hold period is undefined; the engine falls back to
// simple ROI in that case rather than rejecting the input.
func ComputeROI(s ROISettings, totalInvestment, grossProfit, holdMonths float64) float64 {
	simple := 0.0
	if totalInvestment > 0 {
		simple = grossProfit / totalInvestment * 100
	}

	switch s.Method {
	case ROIAnnualized:
		if holdMonths <= 0 {
			return simple
		}
		return simple * (12 / holdMonths)

	case ROICashOnCash:
		cash := s.CashInvested
		if cash <= 0 {
			cash = totalInvestment
		}
		if cash <= 0 {
			return 0
		}
		return grossProfit / cash * 100

	case ROIIRRSimplified:
		if holdMonths <= 0 {
			return simple
		}
		r := simple / 100
		if 1+r <= 0 {
			// Total loss or worse; compounding is meaningless.
			return -100
		}
		return (math.Pow(1+r, 12/holdMonths) - 1) * 100

	default:
		// simple, and the fallback for unrecognized methods
		return simple
	}
}
