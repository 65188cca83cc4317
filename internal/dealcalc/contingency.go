package dealcalc

// fallbackTierPercent is applied when a tiered schedule has no matching tier
// (all bounds exceeded and no unbounded terminal tier configured).
const fallbackTierPercent = 10

// ComputeContingency returns the rehab contingency buffer in dollars.
//
// categorySubtotals carries each budget category's own rehab subtotal and is
// only consulted by the category_weighted method; pass nil for the others.
// When category_weighted is selected but no subtotals are available (a deal
// without a line-item budget yet), the default percent is applied to the
// whole rehab budget instead.
func ComputeContingency(s ContingencySettings, rehabBudget float64, categorySubtotals map[string]float64) float64 {
	switch s.Method {
	case ContingencyTiered:
		return rehabBudget * (tierPercent(s.Tiers, rehabBudget) / 100)

	case ContingencyCategoryWeighted:
		if len(categorySubtotals) == 0 {
			return rehabBudget * (s.DefaultPercent / 100)
		}
		total := 0.0
		for category, subtotal := range categorySubtotals {
			rate, ok := s.CategoryRates[category]
			if !ok {
				rate = s.DefaultPercent
			}
			total += subtotal * (rate / 100)
		}
		return total

	case ContingencyScopeBased:
		rate, ok := s.ScopeRates[s.Scope]
		if !ok {
			rate = s.DefaultPercent
		}
		return rehabBudget * (rate / 100)

	default:
		// flat_percent, and the fallback for unrecognized methods
		return rehabBudget * (s.DefaultPercent / 100)
	}
}

// tierPercent picks the first tier whose bound covers the budget. Tiers are
// relied on in array order, ascending by bound; a nil bound matches any
// budget.
func tierPercent(tiers []ContingencyTier, rehabBudget float64) float64 {
	for _, tier := range tiers {
		if tier.MaxBudget == nil || rehabBudget <= *tier.MaxBudget {
			return tier.Percent
		}
	}
	return fallbackTierPercent
}
