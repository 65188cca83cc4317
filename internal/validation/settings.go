package validation

import (
	"fmt"

	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
)

var maoMethods = map[dealcalc.MAOMethod]bool{
	dealcalc.MAOSeventyRule:      true,
	dealcalc.MAOCustomPercentage: true,
	dealcalc.MAOArvMinusAll:      true,
	dealcalc.MAONetProfitTarget:  true,
	dealcalc.MAOGrossMargin:      true,
}

var roiMethods = map[dealcalc.ROIMethod]bool{
	dealcalc.ROISimple:        true,
	dealcalc.ROIAnnualized:    true,
	dealcalc.ROICashOnCash:    true,
	dealcalc.ROIIRRSimplified: true,
}

var contingencyMethods = map[dealcalc.ContingencyMethod]bool{
	dealcalc.ContingencyFlatPercent:      true,
	dealcalc.ContingencyTiered:           true,
	dealcalc.ContingencyCategoryWeighted: true,
	dealcalc.ContingencyScopeBased:       true,
}

var holdingMethods = map[dealcalc.HoldingMethod]bool{
	dealcalc.HoldingFlatMonthly:      true,
	dealcalc.HoldingItemizedMethod:   true,
	dealcalc.HoldingPercentageOfLoan: true,
	dealcalc.HoldingHybrid:           true,
}

var sellingMethods = map[dealcalc.SellingMethod]bool{
	dealcalc.SellingFlat:     true,
	dealcalc.SellingItemized: true,
}

// ValidateSettings checks a calculation profile: every method selector must
// name a known method, percents must be sane, and tiered schedules must be
// ordered ascending by bound with at most one unbounded terminal tier.
func ValidateSettings(s dealcalc.Settings) error {
	errors := make(map[string]string)

	if !maoMethods[s.MAO.Method] {
		errors["mao.method"] = fmt.Sprintf("unknown MAO method %q", s.MAO.Method)
	}
	if s.MAO.ARVMultiplier <= 0 || s.MAO.ARVMultiplier > 1 {
		errors["mao.arvMultiplier"] = "arvMultiplier must be in (0, 1]"
	}
	if s.MAO.TargetProfit < 0 {
		errors["mao.targetProfit"] = "targetProfit cannot be negative"
	}
	checkPercent(errors, "mao.targetProfitPercent", &s.MAO.TargetProfitPercent)

	if !roiMethods[s.ROI.Method] {
		errors["roi.method"] = fmt.Sprintf("unknown ROI method %q", s.ROI.Method)
	}
	if s.ROI.CashInvested < 0 {
		errors["roi.cashInvested"] = "cashInvested cannot be negative"
	}

	if !contingencyMethods[s.Contingency.Method] {
		errors["contingency.method"] = fmt.Sprintf("unknown contingency method %q", s.Contingency.Method)
	}
	checkPercent(errors, "contingency.defaultPercent", &s.Contingency.DefaultPercent)
	validateTiers(errors, s.Contingency.Tiers)
	for category, rate := range s.Contingency.CategoryRates {
		if rate < 0 || rate > 100 {
			errors["contingency.categoryRates."+category] = "rate must be between 0 and 100"
		}
	}

	if !holdingMethods[s.Holding.Method] {
		errors["holding.method"] = fmt.Sprintf("unknown holding method %q", s.Holding.Method)
	}
	if s.Holding.DefaultMonthly < 0 {
		errors["holding.defaultMonthly"] = "defaultMonthly cannot be negative"
	}
	checkPercent(errors, "holding.annualRatePercent", &s.Holding.AnnualRatePercent)

	if !sellingMethods[s.Selling.Method] {
		errors["selling.method"] = fmt.Sprintf("unknown selling method %q", s.Selling.Method)
	}
	checkPercent(errors, "selling.defaultPercent", &s.Selling.DefaultPercent)
	if s.Selling.FixedAmount < 0 {
		errors["selling.fixedAmount"] = "fixedAmount cannot be negative"
	}

	checkPercent(errors, "alerts.variancePercent", &s.Alerts.VariancePercent)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateTiers(errors map[string]string, tiers []dealcalc.ContingencyTier) {
	var prev *float64

	for i, tier := range tiers {
		key := fmt.Sprintf("contingency.tiers[%d]", i)

		if tier.Percent < 0 || tier.Percent > 100 {
			errors[key+".percent"] = "percent must be between 0 and 100"
		}

		if tier.MaxBudget == nil {
			if i != len(tiers)-1 {
				errors[key+".maxBudget"] = "unbounded tier must be last"
			}
			continue
		}

		if *tier.MaxBudget <= 0 {
			errors[key+".maxBudget"] = "maxBudget must be positive"
		}
		if prev != nil && *tier.MaxBudget <= *prev {
			errors[key+".maxBudget"] = "tiers must be ordered ascending by maxBudget"
		}
		prev = tier.MaxBudget
	}
}
