package request

// CreateBudgetLineRequest represents the request body for adding a budget line.
type CreateBudgetLineRequest struct {
	Category           string   `json:"category"`
	Item               string   `json:"item"`
	Qty                float64  `json:"qty"`
	Unit               string   `json:"unit"`
	Rate               float64  `json:"rate"`
	UnderwritingAmount float64  `json:"underwritingAmount"`
	ForecastAmount     float64  `json:"forecastAmount"`
	ActualAmount       *float64 `json:"actualAmount"`
}

// UpdateBudgetLineRequest represents a partial update of a budget line.
// ClearActual resets the actual column back to "not yet spent"; it wins
// over ActualAmount when both are provided.
type UpdateBudgetLineRequest struct {
	Category           *string  `json:"category,omitempty"`
	Item               *string  `json:"item,omitempty"`
	Qty                *float64 `json:"qty,omitempty"`
	Unit               *string  `json:"unit,omitempty"`
	Rate               *float64 `json:"rate,omitempty"`
	UnderwritingAmount *float64 `json:"underwritingAmount,omitempty"`
	ForecastAmount     *float64 `json:"forecastAmount,omitempty"`
	ActualAmount       *float64 `json:"actualAmount,omitempty"`
	ClearActual        bool     `json:"clearActual,omitempty"`
}
