package dealcalc

// ComputeSellingCosts returns the cost of sale at the given ARV: a percent
// of ARV plus a fixed amount. The flat method uses the single default
// percent; the itemized method sums agent commission, buyer concessions and
// seller closing percent.
func ComputeSellingCosts(s SellingSettings, arv float64) float64 {
	return arv*(s.EffectivePercent()/100) + s.FixedAmount
}
