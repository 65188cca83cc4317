package dealcalc

import "testing"

// TestComputeMAO_SeventyRule reproduces the canonical 70%-rule example:
// ARV 350k, rehab with contingency 55k, closing 3k and holding 6k counted
// against the offer, selling costs excluded.
func TestComputeMAO_SeventyRule(t *testing.T) {
	s := MAOSettings{
		Method:         MAOSeventyRule,
		ARVMultiplier:  0.70,
		TargetProfit:   30000, // ignored by this method
		IncludeHolding: true,
		IncludeClosing: true,
	}

	got := ComputeMAO(s, 350000, 55000, 6000, 25000, 3000)
	if !almostEqual(got, 181000) {
		t.Errorf("seventy rule MAO = %v, want 181000", got)
	}
}

func TestComputeMAO_Methods(t *testing.T) {
	base := MAOSettings{
		ARVMultiplier:       0.75,
		TargetProfit:        40000,
		TargetProfitPercent: 15,
		IncludeHolding:      true,
		IncludeSelling:      true,
		IncludeClosing:      true,
	}
	// totalCosts = 50000 + 6000 + 16000 + 4000 = 76000
	arv, rehab, holding, selling, closing := 200000.0, 50000.0, 6000.0, 16000.0, 4000.0

	tests := []struct {
		name   string
		method MAOMethod
		want   float64
	}{
		{"custom percentage", MAOCustomPercentage, 200000*0.75 - 76000},
		{"arv minus all", MAOArvMinusAll, 200000 - 76000 - 40000},
		{"net profit target", MAONetProfitTarget, 200000 - 76000 - 40000},
		{"gross margin", MAOGrossMargin, 200000*0.85 - 76000},
		{"seventy rule ignores multiplier", MAOSeventyRule, 200000*0.70 - 76000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			s.Method = tt.method
			if got := ComputeMAO(s, arv, rehab, holding, selling, closing); !almostEqual(got, tt.want) {
				t.Errorf("MAO = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestComputeMAO_NoClamping verifies that a structurally bad deal yields a
// negative MAO rather than an error or a floor at zero.
func TestComputeMAO_NoClamping(t *testing.T) {
	s := MAOSettings{Method: MAOSeventyRule}

	got := ComputeMAO(s, 100000, 90000, 0, 0, 0)
	if !almostEqual(got, -20000) {
		t.Errorf("MAO = %v, want -20000", got)
	}
}

func TestComputeMAO_IncludeFlags(t *testing.T) {
	s := MAOSettings{Method: MAOSeventyRule}

	// No flags set: only rehab counts.
	got := ComputeMAO(s, 300000, 50000, 6000, 20000, 3000)
	if !almostEqual(got, 160000) {
		t.Errorf("MAO without cost flags = %v, want 160000", got)
	}

	s.IncludeSelling = true
	got = ComputeMAO(s, 300000, 50000, 6000, 20000, 3000)
	if !almostEqual(got, 140000) {
		t.Errorf("MAO with selling included = %v, want 140000", got)
	}
}
