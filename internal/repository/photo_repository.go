package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// PhotoRepository provides data access methods for the photo metadata
// table. Image bytes live on disk; this table only tracks them.
type PhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new PhotoRepository with the provided database connection.
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

const photoColumns = `
	id, project_id, caption, phase, stored_name, original_name, content_type, size_bytes, created_at
`

// GetPhotosOnProjectID retrieves all photo records for a project, newest first.
func (r *PhotoRepository) GetPhotosOnProjectID(projectID string) ([]model.Photo, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM photo
		WHERE project_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photo table: %w", err)
	}
	defer rows.Close()

	photos := []model.Photo{}

	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo table: %w", err)
	}

	return photos, nil
}

// GetPhotoOnID retrieves a single photo record by ID.
func (r *PhotoRepository) GetPhotoOnID(photoID string) (model.Photo, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM photo
		WHERE id = ?
	`

	p, err := scanPhoto(r.db.QueryRow(query, photoID))
	if err == sql.ErrNoRows {
		return model.Photo{}, apperrors.ErrPhotoNotFound
	}
	if err != nil {
		return model.Photo{}, err
	}

	return p, nil
}

// CreatePhoto inserts a new photo metadata record.
func (r *PhotoRepository) CreatePhoto(p model.Photo) error {
	query := `
		INSERT INTO photo (id, project_id, caption, phase, stored_name, original_name, content_type, size_bytes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		p.ID, p.ProjectID, p.Caption, p.Phase, p.StoredName, p.OriginalName, p.ContentType, p.SizeBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}

	return nil
}

// DeletePhoto removes a photo metadata record.
func (r *PhotoRepository) DeletePhoto(photoID string) error {
	result, err := r.db.Exec("DELETE FROM photo WHERE id = ?", photoID)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPhotoNotFound
	}

	return nil
}

// CountOnProjectID returns the number of photos on a project.
func (r *PhotoRepository) CountOnProjectID(projectID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM photo WHERE project_id = ?", projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

func scanPhoto(s scanner) (model.Photo, error) {
	var p model.Photo

	err := s.Scan(
		&p.ID,
		&p.ProjectID,
		&p.Caption,
		&p.Phase,
		&p.StoredName,
		&p.OriginalName,
		&p.ContentType,
		&p.SizeBytes,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Photo{}, err
	}
	if err != nil {
		return model.Photo{}, fmt.Errorf("failed to scan photo table results: %w", err)
	}

	return p, nil
}
