package dealcalc

import (
	"reflect"
	"testing"
)

// workedInputs is the reference deal used across the aggregator tests:
// a 250k ARV flip bought at 150k with a 50k rehab budget.
func workedInputs() Inputs {
	return Inputs{
		ARV:                f(250000),
		PurchasePrice:      f(150000),
		RehabBudget:        50000,
		ClosingCosts:       3000,
		HoldingMonthly:     1500,
		HoldMonths:         4,
		SellingCostPercent: 8,
		ContingencyPercent: 10,
	}
}

// TestComputeDealReport_WorkedExample walks the full pipeline with the
// default profile and checks every intermediate stage.
func TestComputeDealReport_WorkedExample(t *testing.T) {
	in := workedInputs()
	report := ComputeDealReport(in, SettingsFromInputs(in))

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Contingency", report.Contingency, 5000},
		{"RehabWithContingency", report.RehabWithContingency, 55000},
		{"HoldingCosts", report.HoldingCosts, 6000},
		{"SellingCosts", report.SellingCosts, 20000},
		{"TotalInvestment", report.TotalInvestment, 214000},
		{"GrossProfit", report.GrossProfit, 16000},
		{"ROIPercent", report.ROIPercent, 16000.0 / 214000 * 100},
		// 70% rule with holding and closing counted against the offer:
		// 175000 - 55000 - 6000 - 3000
		{"MAO", report.MAO, 111000},
	}

	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if report.Spread == nil {
		t.Fatal("Spread = nil, want value when purchase price is known")
	}
	if !almostEqual(*report.Spread, -39000) {
		t.Errorf("Spread = %v, want -39000", *report.Spread)
	}

	// Profitable but purchase price exceeds MAO.
	if report.Quality != QualityMarginal {
		t.Errorf("Quality = %q, want %q", report.Quality, QualityMarginal)
	}
}

func TestComputeDealReport_Sensitivity(t *testing.T) {
	in := workedInputs()
	report := ComputeDealReport(in, SettingsFromInputs(in))

	if report.Sensitivity == nil {
		t.Fatal("Sensitivity = nil, want table when ARV and purchase price are known")
	}
	sens := report.Sensitivity

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"ARVDown5Profit", sens.ARVDown5Profit, 4500},
		{"ARVDown10Profit", sens.ARVDown10Profit, -7000},
		{"RehabUp10Profit", sens.RehabUp10Profit, 10500},
		{"RehabUp20Profit", sens.RehabUp20Profit, 5000},
		{"BreakEvenARV", sens.BreakEvenARV, 214000.0 / 0.92},
		{"MaxPurchaseFor20ROI", sens.MaxPurchaseFor20ROI, 166000.0 / 1.20},
	}

	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

// TestComputeDealReport_UnknownARV verifies the lead-stage degradation:
// missing ARV and purchase price suppress spread and sensitivity instead of
// producing garbage numbers.
func TestComputeDealReport_UnknownARV(t *testing.T) {
	in := workedInputs()
	in.ARV = nil
	in.PurchasePrice = nil

	report := ComputeDealReport(in, SettingsFromInputs(in))

	if report.Spread != nil {
		t.Errorf("Spread = %v, want nil without a purchase price", *report.Spread)
	}
	if report.Sensitivity != nil {
		t.Error("Sensitivity should be nil without ARV and purchase price")
	}
	if report.Quality != QualityBad {
		t.Errorf("Quality = %q, want %q with no revenue side", report.Quality, QualityBad)
	}
	// Cost side still computes.
	if !almostEqual(report.RehabWithContingency, 55000) {
		t.Errorf("RehabWithContingency = %v, want 55000", report.RehabWithContingency)
	}
}

func TestComputeDealReport_GoodDeal(t *testing.T) {
	in := workedInputs()
	in.PurchasePrice = f(100000)

	report := ComputeDealReport(in, SettingsFromInputs(in))

	// TI = 100000 + 55000 + 3000 + 6000 = 164000; profit = 66000.
	if !almostEqual(report.GrossProfit, 66000) {
		t.Errorf("GrossProfit = %v, want 66000", report.GrossProfit)
	}
	if report.Quality != QualityGood {
		t.Errorf("Quality = %q, want %q", report.Quality, QualityGood)
	}
}

// TestComputeDealReport_Idempotent verifies the engine is a pure function:
// two calls with identical inputs produce identical reports.
func TestComputeDealReport_Idempotent(t *testing.T) {
	in := workedInputs()
	s := DefaultSettings()

	first := ComputeDealReport(in, s)
	second := ComputeDealReport(in, s)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestDefaultSettings_ReproducesSeventyRule ties the documented defaults to
// the canonical example: the default profile on the worked inputs must give
// the same MAO as the hand-built flat profile.
func TestDefaultSettings_ReproducesSeventyRule(t *testing.T) {
	s := DefaultSettings()

	if s.MAO.Method != MAOSeventyRule || s.MAO.ARVMultiplier != 0.70 {
		t.Fatalf("default MAO profile = %+v, want seventy_rule at 0.70", s.MAO)
	}
	if s.Contingency.DefaultPercent != 10 {
		t.Fatalf("default contingency percent = %v, want 10", s.Contingency.DefaultPercent)
	}

	in := workedInputs()
	report := ComputeDealReport(in, s)
	if !almostEqual(report.MAO, 111000) {
		t.Errorf("default-profile MAO = %v, want 111000", report.MAO)
	}
}

func TestComputeDealReportWithCategories(t *testing.T) {
	in := workedInputs()
	s := SettingsFromInputs(in)
	s.Contingency.Method = ContingencyCategoryWeighted
	s.Contingency.CategoryRates = map[string]float64{"kitchen": 20}
	s.Contingency.DefaultPercent = 10

	subtotals := map[string]float64{
		"kitchen":  20000, // 20% -> 4000
		"flooring": 30000, // default 10% -> 3000
	}

	report := ComputeDealReportWithCategories(in, s, subtotals)
	if !almostEqual(report.Contingency, 7000) {
		t.Errorf("Contingency = %v, want 7000", report.Contingency)
	}
	if !almostEqual(report.RehabWithContingency, 57000) {
		t.Errorf("RehabWithContingency = %v, want 57000", report.RehabWithContingency)
	}
}
