package dealcalc

// ComputeMAO returns the maximum allowable offer. Holding, selling and
// closing costs only count against the offer when the corresponding include
// flag is set; rehab (with contingency) always counts.
//
// The result is not clamped: a negative MAO, or one above ARV, signals a
// structurally bad deal rather than an error.
func ComputeMAO(s MAOSettings, arv, rehabWithContingency, holdingCosts, sellingCosts, closingCosts float64) float64 {
	totalCosts := rehabWithContingency
	if s.IncludeHolding {
		totalCosts += holdingCosts
	}
	if s.IncludeSelling {
		totalCosts += sellingCosts
	}
	if s.IncludeClosing {
		totalCosts += closingCosts
	}

	switch s.Method {
	case MAOCustomPercentage:
		return arv*s.ARVMultiplier - totalCosts
	case MAOArvMinusAll, MAONetProfitTarget:
		return arv - totalCosts - s.TargetProfit
	case MAOGrossMargin:
		return arv*(1-s.TargetProfitPercent/100) - totalCosts
	default:
		// seventy_rule, and the fallback for unrecognized methods
		return arv*0.70 - totalCosts
	}
}
