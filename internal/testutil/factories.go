package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// ProjectBuilder provides a fluent interface for creating test projects.
//
// Example usage:
//
//	// Simple creation with defaults
//	project := testutil.NewProject().Build(t, db)
//
//	// Customized project
//	project := testutil.NewProject().
//	    WithName("12 Oak St").
//	    WithStatus(model.StatusRehab).
//	    WithFinancials(250000, 150000, 50000).
//	    Build(t, db)
type ProjectBuilder struct {
	ID                  string
	Name                string
	Address             string
	City                string
	State               string
	Zip                 string
	Status              string
	ARV                 *float64
	PurchasePrice       *float64
	RehabBudget         float64
	ClosingCosts        float64
	HoldingCostsMonthly float64
	HoldMonths          float64
	SellingCostPercent  float64
	ContingencyPercent  float64
}

// NewProject creates a ProjectBuilder with sensible defaults.
func NewProject() *ProjectBuilder {
	return &ProjectBuilder{
		ID:      MakeID(),
		Name:    MakeProjectName("Test Project"),
		Address: "123 Main St",
		City:    "Springfield",
		State:   "OH",
		Zip:     "45501",
		Status:  model.StatusLead,
	}
}

// WithID sets a custom ID.
func (b *ProjectBuilder) WithID(id string) *ProjectBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.Name = name
	return b
}

// WithStatus sets a custom lifecycle status.
func (b *ProjectBuilder) WithStatus(status string) *ProjectBuilder {
	b.Status = status
	return b
}

// WithARV sets the after-repair value.
func (b *ProjectBuilder) WithARV(arv float64) *ProjectBuilder {
	b.ARV = &arv
	return b
}

// WithPurchasePrice sets the purchase price.
func (b *ProjectBuilder) WithPurchasePrice(price float64) *ProjectBuilder {
	b.PurchasePrice = &price
	return b
}

// WithFinancials sets ARV, purchase price and rehab budget in one call.
func (b *ProjectBuilder) WithFinancials(arv, price, rehabBudget float64) *ProjectBuilder {
	b.ARV = &arv
	b.PurchasePrice = &price
	b.RehabBudget = rehabBudget
	return b
}

// WithRehabBudget sets the rehab budget.
func (b *ProjectBuilder) WithRehabBudget(budget float64) *ProjectBuilder {
	b.RehabBudget = budget
	return b
}

// WithClosingCosts sets the closing costs.
func (b *ProjectBuilder) WithClosingCosts(costs float64) *ProjectBuilder {
	b.ClosingCosts = costs
	return b
}

// WithHolding sets the monthly holding cost and hold duration.
func (b *ProjectBuilder) WithHolding(monthly, months float64) *ProjectBuilder {
	b.HoldingCostsMonthly = monthly
	b.HoldMonths = months
	return b
}

// WithSellingCostPercent sets the selling cost percentage.
func (b *ProjectBuilder) WithSellingCostPercent(pct float64) *ProjectBuilder {
	b.SellingCostPercent = pct
	return b
}

// WithContingencyPercent sets the contingency percentage.
func (b *ProjectBuilder) WithContingencyPercent(pct float64) *ProjectBuilder {
	b.ContingencyPercent = pct
	return b
}

// Archived marks the project as archived.
func (b *ProjectBuilder) Archived() *ProjectBuilder {
	b.Status = model.StatusArchived
	return b
}

// Build creates the project in the database and returns it.
func (b *ProjectBuilder) Build(t *testing.T, db *sql.DB) model.Project {
	t.Helper()

	query := `
		INSERT INTO project (id, name, address, city, state, zip, status, arv, purchase_price,
			rehab_budget, closing_costs, holding_costs_monthly, hold_months,
			selling_cost_percent, contingency_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Address, b.City, b.State, b.Zip, b.Status,
		b.ARV, b.PurchasePrice, b.RehabBudget, b.ClosingCosts, b.HoldingCostsMonthly,
		b.HoldMonths, b.SellingCostPercent, b.ContingencyPercent)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	return model.Project{
		ID:                  b.ID,
		Name:                b.Name,
		Address:             b.Address,
		City:                b.City,
		State:               b.State,
		Zip:                 b.Zip,
		Status:              b.Status,
		ARV:                 b.ARV,
		PurchasePrice:       b.PurchasePrice,
		RehabBudget:         b.RehabBudget,
		ClosingCosts:        b.ClosingCosts,
		HoldingCostsMonthly: b.HoldingCostsMonthly,
		HoldMonths:          b.HoldMonths,
		SellingCostPercent:  b.SellingCostPercent,
		ContingencyPercent:  b.ContingencyPercent,
	}
}

// BudgetLineBuilder provides a fluent interface for creating test budget lines.
type BudgetLineBuilder struct {
	ID                 string
	ProjectID          string
	Category           string
	Item               string
	Qty                float64
	Unit               string
	Rate               float64
	UnderwritingAmount float64
	ForecastAmount     float64
	ActualAmount       *float64
}

// NewBudgetLine creates a BudgetLineBuilder with sensible defaults for the
// given project.
func NewBudgetLine(projectID string) *BudgetLineBuilder {
	return &BudgetLineBuilder{
		ID:                 MakeID(),
		ProjectID:          projectID,
		Category:           "kitchen",
		Item:               "Cabinets",
		Qty:                1,
		Unit:               "ls",
		Rate:               5000,
		UnderwritingAmount: 5000,
		ForecastAmount:     5000,
	}
}

// WithCategory sets a custom category.
func (b *BudgetLineBuilder) WithCategory(category string) *BudgetLineBuilder {
	b.Category = category
	return b
}

// WithItem sets a custom item description.
func (b *BudgetLineBuilder) WithItem(item string) *BudgetLineBuilder {
	b.Item = item
	return b
}

// WithAmounts sets the underwriting and forecast amounts.
func (b *BudgetLineBuilder) WithAmounts(underwriting, forecast float64) *BudgetLineBuilder {
	b.UnderwritingAmount = underwriting
	b.ForecastAmount = forecast
	return b
}

// WithActual sets the recorded actual amount.
func (b *BudgetLineBuilder) WithActual(actual float64) *BudgetLineBuilder {
	b.ActualAmount = &actual
	return b
}

// Build creates the budget line in the database and returns it.
func (b *BudgetLineBuilder) Build(t *testing.T, db *sql.DB) model.BudgetLineItem {
	t.Helper()

	query := `
		INSERT INTO budget_line_item (id, project_id, category, item, qty, unit, rate,
			underwriting_amount, forecast_amount, actual_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.ProjectID, b.Category, b.Item, b.Qty, b.Unit, b.Rate,
		b.UnderwritingAmount, b.ForecastAmount, b.ActualAmount)
	if err != nil {
		t.Fatalf("Failed to create test budget line: %v", err)
	}

	return model.BudgetLineItem{
		ID:                 b.ID,
		ProjectID:          b.ProjectID,
		Category:           b.Category,
		Item:               b.Item,
		Qty:                b.Qty,
		Unit:               b.Unit,
		Rate:               b.Rate,
		UnderwritingAmount: b.UnderwritingAmount,
		ForecastAmount:     b.ForecastAmount,
		ActualAmount:       b.ActualAmount,
	}
}

// VendorBuilder provides a fluent interface for creating test vendors.
// The tax ID is written as-is; repository-level encryption is exercised
// through the repository itself, not the factory.
type VendorBuilder struct {
	ID          string
	Name        string
	Company     string
	Trade       string
	Phone       string
	Email       string
	Address     string
	TaxID       string
	IsPreferred bool
}

// NewVendor creates a VendorBuilder with sensible defaults.
func NewVendor() *VendorBuilder {
	return &VendorBuilder{
		ID:      MakeID(),
		Name:    MakeVendorName("Test Vendor"),
		Company: "Test Contracting LLC",
		Trade:   "general",
		Phone:   "555-0100",
		Email:   "vendor@example.com",
	}
}

// WithName sets a custom name.
func (b *VendorBuilder) WithName(name string) *VendorBuilder {
	b.Name = name
	return b
}

// WithTrade sets a custom trade.
func (b *VendorBuilder) WithTrade(trade string) *VendorBuilder {
	b.Trade = trade
	return b
}

// WithTaxID sets the stored tax ID value.
func (b *VendorBuilder) WithTaxID(taxID string) *VendorBuilder {
	b.TaxID = taxID
	return b
}

// Preferred marks the vendor as preferred.
func (b *VendorBuilder) Preferred() *VendorBuilder {
	b.IsPreferred = true
	return b
}

// Build creates the vendor in the database and returns it.
func (b *VendorBuilder) Build(t *testing.T, db *sql.DB) model.Vendor {
	t.Helper()

	query := `
		INSERT INTO vendor (id, name, company, trade, phone, email, address, tax_id, is_preferred)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Company, b.Trade, b.Phone, b.Email,
		b.Address, b.TaxID, b.IsPreferred)
	if err != nil {
		t.Fatalf("Failed to create test vendor: %v", err)
	}

	return model.Vendor{
		ID:          b.ID,
		Name:        b.Name,
		Company:     b.Company,
		Trade:       b.Trade,
		Phone:       b.Phone,
		Email:       b.Email,
		Address:     b.Address,
		TaxID:       b.TaxID,
		IsPreferred: b.IsPreferred,
	}
}

// DrawBuilder provides a fluent interface for creating test draws.
type DrawBuilder struct {
	ID          string
	ProjectID   string
	VendorID    *string
	Number      int
	Description string
	Amount      float64
	Status      string
	DueDate     time.Time
	PaidDate    *time.Time
}

// NewDraw creates a DrawBuilder with sensible defaults for the given project.
func NewDraw(projectID string) *DrawBuilder {
	return &DrawBuilder{
		ID:          MakeID(),
		ProjectID:   projectID,
		Number:      1,
		Description: "Demo and rough-in",
		Amount:      10000,
		Status:      model.DrawScheduled,
		DueDate:     time.Now().UTC().AddDate(0, 1, 0),
	}
}

// WithNumber sets the draw number.
func (b *DrawBuilder) WithNumber(number int) *DrawBuilder {
	b.Number = number
	return b
}

// WithVendor links the draw to a vendor.
func (b *DrawBuilder) WithVendor(vendorID string) *DrawBuilder {
	b.VendorID = &vendorID
	return b
}

// WithAmount sets the draw amount.
func (b *DrawBuilder) WithAmount(amount float64) *DrawBuilder {
	b.Amount = amount
	return b
}

// WithStatus sets the draw status.
func (b *DrawBuilder) WithStatus(status string) *DrawBuilder {
	b.Status = status
	return b
}

// WithDueDate sets the due date.
func (b *DrawBuilder) WithDueDate(due time.Time) *DrawBuilder {
	b.DueDate = due
	return b
}

// Paid marks the draw paid on the given date.
func (b *DrawBuilder) Paid(on time.Time) *DrawBuilder {
	b.Status = model.DrawPaid
	b.PaidDate = &on
	return b
}

// Build creates the draw in the database and returns it.
func (b *DrawBuilder) Build(t *testing.T, db *sql.DB) model.Draw {
	t.Helper()

	var paidDate *string
	if b.PaidDate != nil {
		formatted := b.PaidDate.Format("2006-01-02")
		paidDate = &formatted
	}

	query := `
		INSERT INTO draw (id, project_id, vendor_id, number, description, amount, status, due_date, paid_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.ProjectID, b.VendorID, b.Number, b.Description,
		b.Amount, b.Status, b.DueDate.Format("2006-01-02"), paidDate)
	if err != nil {
		t.Fatalf("Failed to create test draw: %v", err)
	}

	return model.Draw{
		ID:          b.ID,
		ProjectID:   b.ProjectID,
		VendorID:    b.VendorID,
		Number:      b.Number,
		Description: b.Description,
		Amount:      b.Amount,
		Status:      b.Status,
		DueDate:     b.DueDate,
		PaidDate:    b.PaidDate,
	}
}

// Convenience functions

// CreateProject creates a project with the given name and default values.
//
// Example usage:
//
//	project := testutil.CreateProject(t, db, "12 Oak St")
func CreateProject(t *testing.T, db *sql.DB, name string) model.Project {
	t.Helper()
	return NewProject().WithName(name).Build(t, db)
}

// CreateBudgetLine creates a budget line on the given project with default values.
func CreateBudgetLine(t *testing.T, db *sql.DB, projectID string) model.BudgetLineItem {
	t.Helper()
	return NewBudgetLine(projectID).Build(t, db)
}

// CreateVendor creates a vendor with the given name and default values.
func CreateVendor(t *testing.T, db *sql.DB, name string) model.Vendor {
	t.Helper()
	return NewVendor().WithName(name).Build(t, db)
}

// CreateDraw creates a draw on the given project with default values.
func CreateDraw(t *testing.T, db *sql.DB, projectID string) model.Draw {
	t.Helper()
	return NewDraw(projectID).Build(t, db)
}
