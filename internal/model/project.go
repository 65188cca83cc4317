package model

import "time"

// Project lifecycle statuses.
const (
	StatusLead          = "lead"
	StatusUnderContract = "under_contract"
	StatusRehab         = "rehab"
	StatusListed        = "listed"
	StatusSold          = "sold"
	StatusArchived      = "archived"
)

// ProjectStatuses lists the valid lifecycle statuses in order.
var ProjectStatuses = []string{
	StatusLead,
	StatusUnderContract,
	StatusRehab,
	StatusListed,
	StatusSold,
	StatusArchived,
}

// Project represents one fix-and-flip project and its financial inputs.
// ARV and PurchasePrice may be unknown at the lead stage; the remaining
// monetary fields default to 0. Percent fields are stored as whole numbers
// (8 means 8%).
type Project struct {
	ID      string `json:"id"`
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectFilter for querying projects.
type ProjectFilter struct {
	IncludeArchived bool
	Status          string
}

// ProjectSummary aggregates a project's budget, draw and media state for
// the dashboard. All monetary values are rounded to two decimal places.
type ProjectSummary struct {
	Project Project `json:"project"`

	BudgetUnderwriting float64 `json:"budgetUnderwriting"`
	BudgetForecast     float64 `json:"budgetForecast"`
	BudgetActual       float64 `json:"budgetActual"`
	BudgetLineCount    int     `json:"budgetLineCount"`

	DrawsScheduled float64 `json:"drawsScheduled"`
	DrawsPaid      float64 `json:"drawsPaid"`
	DrawsRemaining float64 `json:"drawsRemaining"`

	PhotoCount int `json:"photoCount"`
	NoteCount  int `json:"noteCount"`
}
