package dealcalc

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeContingency_FlatPercent(t *testing.T) {
	s := ContingencySettings{Method: ContingencyFlatPercent, DefaultPercent: 10}

	if got := ComputeContingency(s, 50000, nil); !almostEqual(got, 5000) {
		t.Errorf("flat 10%% of 50000 = %v, want 5000", got)
	}
	if got := ComputeContingency(s, 0, nil); got != 0 {
		t.Errorf("flat on zero budget = %v, want 0", got)
	}
}

func TestComputeContingency_Tiered(t *testing.T) {
	tiers := []ContingencyTier{
		{MaxBudget: f(25000), Percent: 15},
		{MaxBudget: f(50000), Percent: 12},
		{MaxBudget: nil, Percent: 8},
	}
	s := ContingencySettings{Method: ContingencyTiered, Tiers: tiers}

	tests := []struct {
		name   string
		budget float64
		want   float64
	}{
		{"first tier", 20000, 3000},
		{"boundary belongs to lower tier", 25000, 3750},
		{"middle tier", 30000, 3600},
		{"terminal unbounded tier", 100000, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeContingency(s, tt.budget, nil); !almostEqual(got, tt.want) {
				t.Errorf("tiered(%v) = %v, want %v", tt.budget, got, tt.want)
			}
		})
	}

	t.Run("no matching tier falls back to 10 percent", func(t *testing.T) {
		bounded := ContingencySettings{
			Method: ContingencyTiered,
			Tiers:  []ContingencyTier{{MaxBudget: f(25000), Percent: 15}},
		}
		if got := ComputeContingency(bounded, 60000, nil); !almostEqual(got, 6000) {
			t.Errorf("fallback = %v, want 6000", got)
		}
	})
}

func TestComputeContingency_CategoryWeighted(t *testing.T) {
	s := ContingencySettings{
		Method:         ContingencyCategoryWeighted,
		DefaultPercent: 10,
		CategoryRates: map[string]float64{
			"kitchen":  15,
			"flooring": 5,
		},
	}

	t.Run("per category rates on subtotals", func(t *testing.T) {
		subtotals := map[string]float64{
			"kitchen":  20000, // 15% -> 3000
			"flooring": 10000, // 5%  -> 500
			"paint":    4000,  // unlisted category uses default 10% -> 400
		}
		if got := ComputeContingency(s, 34000, subtotals); !almostEqual(got, 3900) {
			t.Errorf("category weighted = %v, want 3900", got)
		}
	})

	t.Run("no subtotals degrades to flat default", func(t *testing.T) {
		if got := ComputeContingency(s, 34000, nil); !almostEqual(got, 3400) {
			t.Errorf("degraded = %v, want 3400", got)
		}
	})
}

func TestComputeContingency_ScopeBased(t *testing.T) {
	s := ContingencySettings{
		Method:         ContingencyScopeBased,
		DefaultPercent: 10,
		ScopeRates:     map[string]float64{ScopeLight: 5, ScopeMedium: 10, ScopeGut: 15},
		Scope:          ScopeGut,
	}

	if got := ComputeContingency(s, 80000, nil); !almostEqual(got, 12000) {
		t.Errorf("gut scope = %v, want 12000", got)
	}

	s.Scope = "unknown"
	if got := ComputeContingency(s, 80000, nil); !almostEqual(got, 8000) {
		t.Errorf("unknown scope should use default percent, got %v, want 8000", got)
	}
}
