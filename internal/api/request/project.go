package request

// CreateProjectRequest represents the request body for creating a project.
// Percent fields are whole numbers (8 means 8%).
type CreateProjectRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Status  string `json:"status"`

	ARV                 *float64 `json:"arv"`
	PurchasePrice       *float64 `json:"purchasePrice"`
	RehabBudget         float64  `json:"rehabBudget"`
	ClosingCosts        float64  `json:"closingCosts"`
	HoldingCostsMonthly float64  `json:"holdingCostsMonthly"`
	HoldMonths          float64  `json:"holdMonths"`
	SellingCostPercent  float64  `json:"sellingCostPercent"`
	ContingencyPercent  float64  `json:"contingencyPercent"`
}

// UpdateProjectRequest represents a partial update; only provided fields
// are applied.
type UpdateProjectRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Status  *string `json:"status,omitempty"`

	ARV                 *float64 `json:"arv,omitempty"`
	PurchasePrice       *float64 `json:"purchasePrice,omitempty"`
	RehabBudget         *float64 `json:"rehabBudget,omitempty"`
	ClosingCosts        *float64 `json:"closingCosts,omitempty"`
	HoldingCostsMonthly *float64 `json:"holdingCostsMonthly,omitempty"`
	HoldMonths          *float64 `json:"holdMonths,omitempty"`
	SellingCostPercent  *float64 `json:"sellingCostPercent,omitempty"`
	ContingencyPercent  *float64 `json:"contingencyPercent,omitempty"`
}
