package model

import "time"

// BudgetCategories are the canonical rehab budget categories. The
// category_weighted contingency method carries one rate per entry.
var BudgetCategories = []string{
	"demo",
	"foundation",
	"framing",
	"roofing",
	"windows_doors",
	"siding_exterior",
	"plumbing",
	"electrical",
	"hvac",
	"insulation",
	"drywall",
	"paint",
	"flooring",
	"kitchen",
	"bathrooms",
	"landscaping",
	"permits_fees",
	"other",
}

// IsValidBudgetCategory reports whether category is one of the canonical
// budget categories.
func IsValidBudgetCategory(category string) bool {
	for _, c := range BudgetCategories {
		if c == category {
			return true
		}
	}
	return false
}

// BudgetLineItem is one row of a project's three-column budget table.
// The three variance fields are derived from the amounts at read time and
// are never stored; ActualAmount is nil until money is actually spent.
type BudgetLineItem struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Category  string `json:"category"`
	Item      string `json:"item"`

	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
	Rate float64 `json:"rate"`

	UnderwritingAmount float64  `json:"underwritingAmount"`
	ForecastAmount     float64  `json:"forecastAmount"`
	ActualAmount       *float64 `json:"actualAmount"`

	CreatedAt time.Time `json:"createdAt"`
}

// CategoryRollup is one budget category's totals with variances.
type CategoryRollup struct {
	Category         string  `json:"category"`
	LineCount        int     `json:"lineCount"`
	Underwriting     float64 `json:"underwriting"`
	Forecast         float64 `json:"forecast"`
	Actual           float64 `json:"actual"`
	ForecastVariance float64 `json:"forecastVariance"`
	ActualVariance   float64 `json:"actualVariance"`
	TotalVariance    float64 `json:"totalVariance"`
}
