package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// BudgetRepository provides data access methods for the budget_line_item
// table. Variance columns do not exist in the schema; variances are
// recomputed from the three amounts on every read.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository with the provided database connection.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

const budgetColumns = `
	id, project_id, category, item, qty, unit, rate,
	underwriting_amount, forecast_amount, actual_amount, created_at
`

// GetLineItemsOnProjectID retrieves all budget lines for a project, ordered
// by category then creation time. Returns an empty slice for a project with
// no budget yet.
func (r *BudgetRepository) GetLineItemsOnProjectID(projectID string) ([]model.BudgetLineItem, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budget_line_item
		WHERE project_id = ?
		ORDER BY category, created_at
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget_line_item table: %w", err)
	}
	defer rows.Close()

	items := []model.BudgetLineItem{}

	for rows.Next() {
		item, err := scanBudgetLine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget_line_item table: %w", err)
	}

	return items, nil
}

// GetLineItemOnID retrieves a single budget line by ID.
func (r *BudgetRepository) GetLineItemOnID(lineID string) (model.BudgetLineItem, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budget_line_item
		WHERE id = ?
	`

	item, err := scanBudgetLine(r.db.QueryRow(query, lineID))
	if err == sql.ErrNoRows {
		return model.BudgetLineItem{}, apperrors.ErrBudgetLineNotFound
	}
	if err != nil {
		return model.BudgetLineItem{}, err
	}

	return item, nil
}

// CreateLineItem inserts a new budget line.
func (r *BudgetRepository) CreateLineItem(item model.BudgetLineItem) error {
	query := `
		INSERT INTO budget_line_item (
			id, project_id, category, item, qty, unit, rate,
			underwriting_amount, forecast_amount, actual_amount
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		item.ID, item.ProjectID, item.Category, item.Item, item.Qty, item.Unit, item.Rate,
		item.UnderwritingAmount, item.ForecastAmount, item.ActualAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget line item: %w", err)
	}

	return nil
}

// UpdateLineItem rewrites all mutable columns of a budget line.
func (r *BudgetRepository) UpdateLineItem(item model.BudgetLineItem) error {
	query := `
		UPDATE budget_line_item
		SET category = ?, item = ?, qty = ?, unit = ?, rate = ?,
		    underwriting_amount = ?, forecast_amount = ?, actual_amount = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		item.Category, item.Item, item.Qty, item.Unit, item.Rate,
		item.UnderwritingAmount, item.ForecastAmount, item.ActualAmount,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget line item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetLineNotFound
	}

	return nil
}

// DeleteLineItem removes a budget line.
func (r *BudgetRepository) DeleteLineItem(lineID string) error {
	result, err := r.db.Exec("DELETE FROM budget_line_item WHERE id = ?", lineID)
	if err != nil {
		return fmt.Errorf("failed to delete budget line item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetLineNotFound
	}

	return nil
}

// GetTotalsOnProjectID returns the summed underwriting, forecast and actual
// amounts for one project, with missing actuals counted as 0.
func (r *BudgetRepository) GetTotalsOnProjectID(projectID string) (underwriting, forecast, actual float64, lineCount int, err error) {
	query := `
		SELECT
			COALESCE(SUM(underwriting_amount), 0),
			COALESCE(SUM(forecast_amount), 0),
			COALESCE(SUM(actual_amount), 0),
			COUNT(*)
		FROM budget_line_item
		WHERE project_id = ?
	`

	err = r.db.QueryRow(query, projectID).Scan(&underwriting, &forecast, &actual, &lineCount)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to query budget totals: %w", err)
	}

	return underwriting, forecast, actual, lineCount, nil
}

// GetCategorySubtotalsOnProjectID returns each category's underwriting
// subtotal. Used by the category_weighted contingency method.
func (r *BudgetRepository) GetCategorySubtotalsOnProjectID(projectID string) (map[string]float64, error) {
	query := `
		SELECT category, COALESCE(SUM(underwriting_amount), 0)
		FROM budget_line_item
		WHERE project_id = ?
		GROUP BY category
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category subtotals: %w", err)
	}
	defer rows.Close()

	subtotals := make(map[string]float64)

	for rows.Next() {
		var category string
		var subtotal float64
		if err := rows.Scan(&category, &subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan category subtotal: %w", err)
		}
		subtotals[category] = subtotal
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category subtotals: %w", err)
	}

	return subtotals, nil
}

func scanBudgetLine(s scanner) (model.BudgetLineItem, error) {
	var item model.BudgetLineItem

	err := s.Scan(
		&item.ID,
		&item.ProjectID,
		&item.Category,
		&item.Item,
		&item.Qty,
		&item.Unit,
		&item.Rate,
		&item.UnderwritingAmount,
		&item.ForecastAmount,
		&item.ActualAmount,
		&item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.BudgetLineItem{}, err
	}
	if err != nil {
		return model.BudgetLineItem{}, fmt.Errorf("failed to scan budget_line_item table results: %w", err)
	}

	return item, nil
}
