// Package dealcalc implements the deal calculation engine for fix-and-flip
// projects: cost sub-calculators (holding, selling, contingency), MAO and ROI
// calculators, budget variance math, and the deal report aggregator.
//
// Every function in this package is pure: a deterministic function of its
// inputs with no I/O, no ambient state, and no error returns. Missing
// monetary values are treated as 0 and divisions are zero-guarded, so the
// engine never panics and never produces NaN or Inf.
//
// Percentages in Settings are stored as whole numbers (8 means 8%) and
// converted to fractions only at calculation time.
package dealcalc

// MAOMethod selects the formula used for the maximum allowable offer.
type MAOMethod string

// MAO calculation methods.
const (
	MAOSeventyRule      MAOMethod = "seventy_rule"
	MAOCustomPercentage MAOMethod = "custom_percentage"
	MAOArvMinusAll      MAOMethod = "arv_minus_all"
	MAONetProfitTarget  MAOMethod = "net_profit_target"
	MAOGrossMargin      MAOMethod = "gross_margin"
)

// ROIMethod selects the formula used for return on investment.
type ROIMethod string

// ROI calculation methods.
const (
	ROISimple ROIMethod = "simple"
	// ROIAnnualized scales simple ROI by 12/holdMonths. When the hold period
	// is zero it falls back to simple ROI rather than dividing by zero.
	ROIAnnualized ROIMethod = "annualized"
	// ROICashOnCash divides gross profit by cash invested instead of total
	// investment. When no cash-invested figure is configured it degrades to
	// simple ROI.
	ROICashOnCash ROIMethod = "cash_on_cash"
	// ROIIRRSimplified compounds the simple return over the hold period:
	// ((1+r)^(12/months) - 1) * 100.
	ROIIRRSimplified ROIMethod = "irr_simplified"
)

// ContingencyMethod selects the formula used for the rehab contingency buffer.
type ContingencyMethod string

// Contingency calculation methods.
const (
	ContingencyFlatPercent      ContingencyMethod = "flat_percent"
	ContingencyTiered           ContingencyMethod = "tiered"
	ContingencyCategoryWeighted ContingencyMethod = "category_weighted"
	ContingencyScopeBased       ContingencyMethod = "scope_based"
)

// HoldingMethod selects the formula used for monthly carrying costs.
type HoldingMethod string

// Holding-cost calculation methods.
const (
	HoldingFlatMonthly      HoldingMethod = "flat_monthly"
	HoldingItemizedMethod   HoldingMethod = "itemized"
	HoldingPercentageOfLoan HoldingMethod = "percentage_of_loan"
	// HoldingHybrid combines the flat base rate with the itemized variable
	// components, both accrued per month.
	HoldingHybrid HoldingMethod = "hybrid"
)

// SellingMethod selects the formula used for costs of sale.
type SellingMethod string

// Selling-cost calculation methods.
const (
	SellingFlat SellingMethod = "flat"
	// SellingItemized sums agent commission, buyer concessions and seller
	// closing percent instead of the single default percent.
	SellingItemized SellingMethod = "itemized"
)

// Rehab scope levels for scope-based contingency.
const (
	ScopeLight  = "light"
	ScopeMedium = "medium"
	ScopeGut    = "gut"
)

// MAOSettings configures the maximum-allowable-offer calculator.
type MAOSettings struct {
	Method MAOMethod `json:"method"`

	// ARVMultiplier is the fraction of ARV used by custom_percentage
	// (seventy_rule always uses 0.70).
	ARVMultiplier float64 `json:"arvMultiplier"`

	// TargetProfit is the dollar profit subtracted by net_profit_target
	// and arv_minus_all.
	TargetProfit float64 `json:"targetProfit"`

	// TargetProfitPercent is the whole-number margin used by gross_margin.
	TargetProfitPercent float64 `json:"targetProfitPercent"`

	// Cost inclusion flags: which cost buckets count against the offer.
	IncludeHolding bool `json:"includeHolding"`
	IncludeSelling bool `json:"includeSelling"`
	IncludeClosing bool `json:"includeClosing"`
}

// ROISettings configures the return-on-investment calculator.
type ROISettings struct {
	Method ROIMethod `json:"method"`

	// CashInvested is the cash_on_cash denominator. Zero means financing is
	// not modeled and total investment is used instead.
	CashInvested float64 `json:"cashInvested"`
}

// ContingencyTier is one band of a tiered contingency schedule. Tiers are
// ordered ascending by MaxBudget; a nil MaxBudget marks the unbounded
// terminal tier.
type ContingencyTier struct {
	MaxBudget *float64 `json:"maxBudget"`
	Percent   float64  `json:"percent"`
}

// ContingencySettings configures the contingency calculator.
type ContingencySettings struct {
	Method ContingencyMethod `json:"method"`

	// DefaultPercent is the whole-number rate for flat_percent and the
	// fallback for category_weighted when no subtotals are supplied.
	DefaultPercent float64 `json:"defaultPercent"`

	// Tiers for the tiered method, pre-sorted ascending by MaxBudget.
	Tiers []ContingencyTier `json:"tiers,omitempty"`

	// CategoryRates maps budget category to a whole-number rate applied to
	// that category's own rehab subtotal.
	CategoryRates map[string]float64 `json:"categoryRates,omitempty"`

	// ScopeRates maps rehab scope (light/medium/gut) to a whole-number rate.
	ScopeRates map[string]float64 `json:"scopeRates,omitempty"`

	// Scope is the selected rehab scope for scope_based.
	Scope string `json:"scope,omitempty"`
}

// HoldingItemized holds the independently configured monthly carrying-cost
// components for the itemized and hybrid methods.
type HoldingItemized struct {
	Taxes        float64 `json:"taxes"`
	Insurance    float64 `json:"insurance"`
	Utilities    float64 `json:"utilities"`
	LoanInterest float64 `json:"loanInterest"`
	HOA          float64 `json:"hoa"`
	LawnCare     float64 `json:"lawnCare"`
	Other        float64 `json:"other"`
}

// Sum returns the total monthly amount across all itemized components.
func (h HoldingItemized) Sum() float64 {
	return h.Taxes + h.Insurance + h.Utilities + h.LoanInterest + h.HOA + h.LawnCare + h.Other
}

// HoldingSettings configures the holding-cost calculator.
type HoldingSettings struct {
	Method HoldingMethod `json:"method"`

	// DefaultMonthly is the flat monthly carrying cost for flat_monthly and
	// the base rate for hybrid.
	DefaultMonthly float64 `json:"defaultMonthly"`

	Itemized HoldingItemized `json:"itemized"`

	// AnnualRatePercent is the whole-number annual loan rate for
	// percentage_of_loan.
	AnnualRatePercent float64 `json:"annualRatePercent"`
}

// SellingSettings configures the selling-cost calculator.
type SellingSettings struct {
	Method SellingMethod `json:"method"`

	// DefaultPercent is the whole-number percent of ARV for the flat method.
	DefaultPercent float64 `json:"defaultPercent"`

	// FixedAmount is added regardless of method (title, attorney, etc).
	FixedAmount float64 `json:"fixedAmount"`

	// Itemized components, whole-number percents of ARV.
	AgentCommissionPercent  float64 `json:"agentCommissionPercent"`
	BuyerConcessionsPercent float64 `json:"buyerConcessionsPercent"`
	ClosingPercent          float64 `json:"closingPercent"`
}

// EffectivePercent returns the whole-number percent of ARV the settings
// resolve to: the itemized components summed, or the flat default.
func (s SellingSettings) EffectivePercent() float64 {
	if s.Method == SellingItemized {
		return s.AgentCommissionPercent + s.BuyerConcessionsPercent + s.ClosingPercent
	}
	return s.DefaultPercent
}

// ProfitThresholds carries the dollar and percent floors used when flagging
// deal quality in dashboards. The good/marginal/bad classification itself is
// fixed (profit sign and MAO comparison); these thresholds only drive
// presentation.
type ProfitThresholds struct {
	MinimumProfit     float64 `json:"minimumProfit"`
	MinimumROIPercent float64 `json:"minimumRoiPercent"`
}

// AlertThresholds configures the nightly alert sweep.
type AlertThresholds struct {
	// VariancePercent flags a budget line when its total variance exceeds
	// this whole-number percent of the underwriting amount.
	VariancePercent float64 `json:"variancePercent"`

	// DrawDueSoonDays flags scheduled draws due within this many days.
	DrawDueSoonDays int `json:"drawDueSoonDays"`
}

// Settings is one calculation profile: the method selector and parameters
// for each sub-calculator. Exactly one method per category is active at a
// time; the unselected methods' parameters are carried but ignored.
type Settings struct {
	MAO         MAOSettings         `json:"mao"`
	ROI         ROISettings         `json:"roi"`
	Contingency ContingencySettings `json:"contingency"`
	Holding     HoldingSettings     `json:"holding"`
	Selling     SellingSettings     `json:"selling"`
	Profit      ProfitThresholds    `json:"profit"`
	Alerts      AlertThresholds     `json:"alerts"`
}

// DefaultSettings returns the documented default profile: the 70% rule with
// holding and closing costs counted against the offer, 10% flat contingency,
// 8% selling costs and simple ROI.
func DefaultSettings() Settings {
	return Settings{
		MAO: MAOSettings{
			Method:              MAOSeventyRule,
			ARVMultiplier:       0.70,
			TargetProfit:        30000,
			TargetProfitPercent: 15,
			IncludeHolding:      true,
			IncludeSelling:      false,
			IncludeClosing:      true,
		},
		ROI: ROISettings{
			Method: ROISimple,
		},
		Contingency: ContingencySettings{
			Method:         ContingencyFlatPercent,
			DefaultPercent: 10,
			ScopeRates: map[string]float64{
				ScopeLight:  5,
				ScopeMedium: 10,
				ScopeGut:    15,
			},
			Scope: ScopeMedium,
		},
		Holding: HoldingSettings{
			Method:            HoldingFlatMonthly,
			DefaultMonthly:    1500,
			AnnualRatePercent: 10,
		},
		Selling: SellingSettings{
			Method:                  SellingFlat,
			DefaultPercent:          8,
			AgentCommissionPercent:  5,
			BuyerConcessionsPercent: 1,
			ClosingPercent:          2,
		},
		Profit: ProfitThresholds{
			MinimumProfit:     20000,
			MinimumROIPercent: 10,
		},
		Alerts: AlertThresholds{
			VariancePercent: 10,
			DrawDueSoonDays: 7,
		},
	}
}

// SettingsFromInputs builds the simplified calculation profile used by deal
// entry forms, where only the six scalar inputs are known. The flat
// contingency percent, monthly holding cost and selling percent become a
// one-method profile; everything else keeps the documented defaults. This
// keeps one formula implementation for both calculator surfaces.
func SettingsFromInputs(in Inputs) Settings {
	s := DefaultSettings()
	s.Contingency.Method = ContingencyFlatPercent
	s.Contingency.DefaultPercent = in.ContingencyPercent
	s.Holding.Method = HoldingFlatMonthly
	s.Holding.DefaultMonthly = in.HoldingMonthly
	s.Selling.Method = SellingFlat
	s.Selling.DefaultPercent = in.SellingCostPercent
	s.Selling.FixedAmount = 0
	return s
}
