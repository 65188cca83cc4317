package dealcalc

// Inputs are one project's financial inputs. ARV and purchase price may be
// unknown at the lead stage; the other fields default to 0 when unset.
type Inputs struct {
	ARV                *float64 `json:"arv"`
	PurchasePrice      *float64 `json:"purchasePrice"`
	RehabBudget        float64  `json:"rehabBudget"`
	ClosingCosts       float64  `json:"closingCosts"`
	HoldingMonthly     float64  `json:"holdingCostsMonthly"`
	HoldMonths         float64  `json:"holdMonths"`
	SellingCostPercent float64  `json:"sellingCostPercent"`
	ContingencyPercent float64  `json:"contingencyPercent"`
}

// Deal quality classifications.
const (
	QualityGood     = "good"
	QualityMarginal = "marginal"
	QualityBad      = "bad"
)

// Sensitivity is the what-if table computed when both ARV and purchase
// price are known.
type Sensitivity struct {
	ARVDown5Profit      float64 `json:"arvDown5Profit"`
	ARVDown10Profit     float64 `json:"arvDown10Profit"`
	RehabUp10Profit     float64 `json:"rehabUp10Profit"`
	RehabUp20Profit     float64 `json:"rehabUp20Profit"`
	BreakEvenARV        float64 `json:"breakEvenArv"`
	MaxPurchaseFor20ROI float64 `json:"maxPurchaseFor20Roi"`
}

// Report is the full set of derived investment metrics for one deal. It is
// ephemeral: recomputed on every read, never persisted.
type Report struct {
	Contingency          float64      `json:"contingency"`
	RehabWithContingency float64      `json:"rehabWithContingency"`
	HoldingCosts         float64      `json:"holdingCosts"`
	SellingCosts         float64      `json:"sellingCosts"`
	TotalInvestment      float64      `json:"totalInvestment"`
	GrossProfit          float64      `json:"grossProfit"`
	ROIPercent           float64      `json:"roiPercent"`
	MAO                  float64      `json:"mao"`
	Spread               *float64     `json:"spread"`
	Quality              string       `json:"quality"`
	Sensitivity          *Sensitivity `json:"sensitivity"`
}

// ComputeDealReport derives the full metric set from one set of inputs and
// one settings profile. It is pure and idempotent: identical inputs produce
// identical output.
func ComputeDealReport(in Inputs, s Settings) Report {
	return ComputeDealReportWithCategories(in, s, nil)
}

// ComputeDealReportWithCategories is ComputeDealReport with per-category
// rehab subtotals supplied, enabling the category_weighted contingency
// method. Stage order is fixed: contingency feeds rehab-with-contingency,
// which feeds total investment, which feeds profit, ROI and MAO.
func ComputeDealReportWithCategories(in Inputs, s Settings, categorySubtotals map[string]float64) Report {
	arv := deref(in.ARV)
	price := deref(in.PurchasePrice)

	contingency := ComputeContingency(s.Contingency, in.RehabBudget, categorySubtotals)
	rehabWith := in.RehabBudget + contingency

	holding := ComputeHoldingCosts(s.Holding, price, in.HoldMonths)
	selling := ComputeSellingCosts(s.Selling, arv)

	totalInvestment := price + rehabWith + in.ClosingCosts + holding
	grossProfit := arv - totalInvestment - selling

	roi := ComputeROI(s.ROI, totalInvestment, grossProfit, in.HoldMonths)
	mao := ComputeMAO(s.MAO, arv, rehabWith, holding, selling, in.ClosingCosts)

	report := Report{
		Contingency:          contingency,
		RehabWithContingency: rehabWith,
		HoldingCosts:         holding,
		SellingCosts:         selling,
		TotalInvestment:      totalInvestment,
		GrossProfit:          grossProfit,
		ROIPercent:           roi,
		MAO:                  mao,
		Quality:              classify(grossProfit, price, mao),
	}

	// Spread cannot be assessed before an offer price is known.
	if price > 0 {
		spread := mao - price
		report.Spread = &spread
	}

	if in.ARV != nil && in.PurchasePrice != nil {
		report.Sensitivity = computeSensitivity(in, s, rehabWith, holding, selling, totalInvestment, categorySubtotals)
	}

	return report
}

// classify applies the deal-quality policy: profitable and at-or-under MAO
// is good, profitable above MAO is marginal, unprofitable is bad.
func classify(grossProfit, price, mao float64) string {
	switch {
	case grossProfit > 0 && price <= mao:
		return QualityGood
	case grossProfit > 0:
		return QualityMarginal
	default:
		return QualityBad
	}
}

func computeSensitivity(in Inputs, s Settings, rehabWith, holding, selling, totalInvestment float64, categorySubtotals map[string]float64) *Sensitivity {
	arv := deref(in.ARV)

	sellPct := s.Selling.EffectivePercent()
	breakEven := 0.0
	if sellPct < 100 {
		breakEven = totalInvestment / (1 - sellPct/100)
	}

	return &Sensitivity{
		ARVDown5Profit:      profitAtARV(arv*0.95, s, totalInvestment),
		ARVDown10Profit:     profitAtARV(arv*0.90, s, totalInvestment),
		RehabUp10Profit:     profitAtRehab(in, s, 1.10, holding, selling, categorySubtotals),
		RehabUp20Profit:     profitAtRehab(in, s, 1.20, holding, selling, categorySubtotals),
		BreakEvenARV:        breakEven,
		MaxPurchaseFor20ROI: (arv*(1-sellPct/100) - rehabWith - in.ClosingCosts - holding) / 1.20,
	}
}

// profitAtARV recomputes gross profit at a scenario ARV. Selling costs move
// with ARV; everything on the cost side is held fixed.
func profitAtARV(arv float64, s Settings, totalInvestment float64) float64 {
	return arv - totalInvestment - ComputeSellingCosts(s.Selling, arv)
}

// profitAtRehab recomputes gross profit with the rehab budget scaled by the
// given factor, contingency recomputed on the scaled budget.
func profitAtRehab(in Inputs, s Settings, factor, holding, selling float64, categorySubtotals map[string]float64) float64 {
	arv := deref(in.ARV)
	price := deref(in.PurchasePrice)

	scaled := in.RehabBudget * factor
	scaledSubtotals := categorySubtotals
	if len(categorySubtotals) > 0 {
		scaledSubtotals = make(map[string]float64, len(categorySubtotals))
		for category, subtotal := range categorySubtotals {
			scaledSubtotals[category] = subtotal * factor
		}
	}

	rehabWith := scaled + ComputeContingency(s.Contingency, scaled, scaledSubtotals)
	totalInvestment := price + rehabWith + in.ClosingCosts + holding
	return arv - totalInvestment - selling
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
