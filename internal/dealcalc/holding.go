package dealcalc

// ComputeHoldingCosts returns the total carrying cost over the hold period.
// A zero hold period yields 0 regardless of method. purchasePrice is only
// consulted by the percentage_of_loan method, which treats the purchase
// price as the loan principal.
func ComputeHoldingCosts(s HoldingSettings, purchasePrice, holdMonths float64) float64 {
	if holdMonths <= 0 {
		return 0
	}

	switch s.Method {
	case HoldingItemizedMethod:
		return s.Itemized.Sum() * holdMonths
	case HoldingPercentageOfLoan:
		monthly := purchasePrice * (s.AnnualRatePercent / 100) / 12
		return monthly * holdMonths
	case HoldingHybrid:
		return (s.DefaultMonthly + s.Itemized.Sum()) * holdMonths
	default:
		// flat_monthly, and the fallback for unrecognized methods
		return s.DefaultMonthly * holdMonths
	}
}
