package repository

import (
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// DrawRepository provides data access methods for the draw table.
type DrawRepository struct {
	db *sql.DB
}

// NewDrawRepository creates a new DrawRepository with the provided database connection.
func NewDrawRepository(db *sql.DB) *DrawRepository {
	return &DrawRepository{db: db}
}

const drawColumns = `
	id, project_id, vendor_id, number, description, amount, status, due_date, paid_date, created_at
`

// GetDrawsOnProjectID retrieves all draws for a project ordered by draw number.
func (r *DrawRepository) GetDrawsOnProjectID(projectID string) ([]model.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draw
		WHERE project_id = ?
		ORDER BY number
	`

	return r.queryDraws(query, projectID)
}

// GetDrawOnID retrieves a single draw by ID.
func (r *DrawRepository) GetDrawOnID(drawID string) (model.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draw
		WHERE id = ?
	`

	d, err := scanDraw(r.db.QueryRow(query, drawID))
	if err == sql.ErrNoRows {
		return model.Draw{}, apperrors.ErrDrawNotFound
	}
	if err != nil {
		return model.Draw{}, err
	}

	return d, nil
}

// GetDrawsDueBefore retrieves scheduled or requested draws due on or before
// the cutoff date, across all projects. Used by the nightly alert sweep.
func (r *DrawRepository) GetDrawsDueBefore(cutoff time.Time) ([]model.Draw, error) {
	query := `
		SELECT ` + drawColumns + `
		FROM draw
		WHERE status IN (?, ?) AND due_date <= ?
		ORDER BY due_date
	`

	return r.queryDraws(query, model.DrawScheduled, model.DrawRequested, cutoff.Format("2006-01-02"))
}

// CreateDraw inserts a new draw.
func (r *DrawRepository) CreateDraw(d model.Draw) error {
	query := `
		INSERT INTO draw (id, project_id, vendor_id, number, description, amount, status, due_date, paid_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		d.ID, d.ProjectID, d.VendorID, d.Number, d.Description, d.Amount,
		d.Status, d.DueDate.Format("2006-01-02"), formatDate(d.PaidDate),
	)
	if err != nil {
		return fmt.Errorf("failed to insert draw: %w", err)
	}

	return nil
}

// UpdateDraw rewrites all mutable columns of a draw.
func (r *DrawRepository) UpdateDraw(d model.Draw) error {
	query := `
		UPDATE draw
		SET vendor_id = ?, number = ?, description = ?, amount = ?, status = ?,
		    due_date = ?, paid_date = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		d.VendorID, d.Number, d.Description, d.Amount, d.Status,
		d.DueDate.Format("2006-01-02"), formatDate(d.PaidDate), d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update draw: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDrawNotFound
	}

	return nil
}

// DeleteDraw removes a draw.
func (r *DrawRepository) DeleteDraw(drawID string) error {
	result, err := r.db.Exec("DELETE FROM draw WHERE id = ?", drawID)
	if err != nil {
		return fmt.Errorf("failed to delete draw: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDrawNotFound
	}

	return nil
}

// GetTotalsOnProjectID returns the scheduled and paid dollar totals for one
// project. Cancelled draws count toward neither side.
func (r *DrawRepository) GetTotalsOnProjectID(projectID string) (model.DrawTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status != ? THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0)
		FROM draw
		WHERE project_id = ?
	`

	var totals model.DrawTotals
	err := r.db.QueryRow(query, model.DrawCancelled, model.DrawPaid, projectID).
		Scan(&totals.Scheduled, &totals.Paid)
	if err != nil {
		return model.DrawTotals{}, fmt.Errorf("failed to query draw totals: %w", err)
	}

	totals.Remaining = totals.Scheduled - totals.Paid

	return totals, nil
}

func (r *DrawRepository) queryDraws(query string, args ...any) ([]model.Draw, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query draw table: %w", err)
	}
	defer rows.Close()

	draws := []model.Draw{}

	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draw table: %w", err)
	}

	return draws, nil
}

func scanDraw(s scanner) (model.Draw, error) {
	var d model.Draw
	var dueDate string
	var paidDate *string

	err := s.Scan(
		&d.ID,
		&d.ProjectID,
		&d.VendorID,
		&d.Number,
		&d.Description,
		&d.Amount,
		&d.Status,
		&dueDate,
		&paidDate,
		&d.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Draw{}, err
	}
	if err != nil {
		return model.Draw{}, fmt.Errorf("failed to scan draw table results: %w", err)
	}

	if d.DueDate, err = ParseTime(dueDate); err != nil {
		return model.Draw{}, err
	}
	if paidDate != nil {
		paid, err := ParseTime(*paidDate)
		if err != nil {
			return model.Draw{}, err
		}
		d.PaidDate = &paid
	}

	return d, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
