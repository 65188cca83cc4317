package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// ProjectRepository provides data access methods for the project table.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository with the provided database connection.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, name, address, city, state, zip, status,
	arv, purchase_price, rehab_budget, closing_costs,
	holding_costs_monthly, hold_months, selling_cost_percent, contingency_percent,
	created_at, updated_at
`

// GetProjects retrieves projects from the database based on filter criteria.
// Archived projects are excluded unless the filter asks for them; an empty
// status matches all statuses. Returns an empty slice when nothing matches.
func (r *ProjectRepository) GetProjects(filter model.ProjectFilter) ([]model.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM project
		WHERE 1=1
	`
	var args []any

	if !filter.IncludeArchived {
		query += " AND status != ?"
		args = append(args, model.StatusArchived)
	}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query project table: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project table: %w", err)
	}

	return projects, nil
}

// GetProjectOnID retrieves a single project by ID.
func (r *ProjectRepository) GetProjectOnID(projectID string) (model.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM project
		WHERE id = ?
	`

	row := r.db.QueryRow(query, projectID)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return model.Project{}, apperrors.ErrProjectNotFound
	}
	if err != nil {
		return model.Project{}, err
	}

	return p, nil
}

// CreateProject inserts a new project row.
func (r *ProjectRepository) CreateProject(p model.Project) error {
	query := `
		INSERT INTO project (
			id, name, address, city, state, zip, status,
			arv, purchase_price, rehab_budget, closing_costs,
			holding_costs_monthly, hold_months, selling_cost_percent, contingency_percent
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		p.ID, p.Name, p.Address, p.City, p.State, p.Zip, p.Status,
		p.ARV, p.PurchasePrice, p.RehabBudget, p.ClosingCosts,
		p.HoldingCostsMonthly, p.HoldMonths, p.SellingCostPercent, p.ContingencyPercent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

// UpdateProject rewrites all mutable columns of a project. Returns
// ErrProjectNotFound when no row matched.
func (r *ProjectRepository) UpdateProject(p model.Project) error {
	query := `
		UPDATE project
		SET name = ?, address = ?, city = ?, state = ?, zip = ?, status = ?,
		    arv = ?, purchase_price = ?, rehab_budget = ?, closing_costs = ?,
		    holding_costs_monthly = ?, hold_months = ?, selling_cost_percent = ?,
		    contingency_percent = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		p.Name, p.Address, p.City, p.State, p.Zip, p.Status,
		p.ARV, p.PurchasePrice, p.RehabBudget, p.ClosingCosts,
		p.HoldingCostsMonthly, p.HoldMonths, p.SellingCostPercent, p.ContingencyPercent,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes a project and, via foreign keys, its budget lines,
// draws, notes and photo metadata.
func (r *ProjectRepository) DeleteProject(projectID string) error {
	result, err := r.db.Exec("DELETE FROM project WHERE id = ?", projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (model.Project, error) {
	var p model.Project

	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.City,
		&p.State,
		&p.Zip,
		&p.Status,
		&p.ARV,
		&p.PurchasePrice,
		&p.RehabBudget,
		&p.ClosingCosts,
		&p.HoldingCostsMonthly,
		&p.HoldMonths,
		&p.SellingCostPercent,
		&p.ContingencyPercent,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Project{}, err
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to scan project table results: %w", err)
	}

	return p, nil
}
