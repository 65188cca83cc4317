package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// NoteRepository provides data access methods for the note table.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository with the provided database connection.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// GetNotesOnProjectID retrieves all notes for a project, newest first.
func (r *NoteRepository) GetNotesOnProjectID(projectID string) ([]model.Note, error) {
	query := `
		SELECT id, project_id, title, body, created_at, updated_at
		FROM note
		WHERE project_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query note table: %w", err)
	}
	defer rows.Close()

	notes := []model.Note{}

	for rows.Next() {
		var n model.Note
		err := rows.Scan(&n.ID, &n.ProjectID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note table results: %w", err)
		}
		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note table: %w", err)
	}

	return notes, nil
}

// GetNoteOnID retrieves a single note by ID.
func (r *NoteRepository) GetNoteOnID(noteID string) (model.Note, error) {
	query := `
		SELECT id, project_id, title, body, created_at, updated_at
		FROM note
		WHERE id = ?
	`

	var n model.Note
	err := r.db.QueryRow(query, noteID).
		Scan(&n.ID, &n.ProjectID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Note{}, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to query note: %w", err)
	}

	return n, nil
}

// CreateNote inserts a new note.
func (r *NoteRepository) CreateNote(n model.Note) error {
	query := `
		INSERT INTO note (id, project_id, title, body)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, n.ID, n.ProjectID, n.Title, n.Body)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// UpdateNote rewrites a note's title and body.
func (r *NoteRepository) UpdateNote(n model.Note) error {
	query := `
		UPDATE note
		SET title = ?, body = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Exec(query, n.Title, n.Body, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes a note.
func (r *NoteRepository) DeleteNote(noteID string) error {
	result, err := r.db.Exec("DELETE FROM note WHERE id = ?", noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// CountOnProjectID returns the number of notes on a project.
func (r *NoteRepository) CountOnProjectID(projectID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM note WHERE project_id = ?", projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}
