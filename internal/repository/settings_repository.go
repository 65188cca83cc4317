package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// SettingsRepository provides data access methods for the
// calculation_settings table. The profile is stored as one JSON document
// per user: the tier list and per-category rate maps are naturally nested
// and have no other readers than the engine.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettingsOnUserID retrieves the user's calculation profile.
func (r *SettingsRepository) GetSettingsOnUserID(userID string) (model.SettingsRecord, error) {
	query := `
		SELECT id, user_id, profile, created_at, updated_at
		FROM calculation_settings
		WHERE user_id = ?
	`

	var record model.SettingsRecord
	var profileJSON string

	err := r.db.QueryRow(query, userID).
		Scan(&record.ID, &record.UserID, &profileJSON, &record.CreatedAt, &record.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.SettingsRecord{}, apperrors.ErrSettingsNotFound
	}
	if err != nil {
		return model.SettingsRecord{}, fmt.Errorf("failed to query calculation_settings: %w", err)
	}

	if err := json.Unmarshal([]byte(profileJSON), &record.Profile); err != nil {
		return model.SettingsRecord{}, fmt.Errorf("failed to decode settings profile: %w", err)
	}

	return record, nil
}

// CreateSettings inserts a new settings profile for a user.
func (r *SettingsRepository) CreateSettings(record model.SettingsRecord) error {
	profileJSON, err := json.Marshal(record.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode settings profile: %w", err)
	}

	query := `
		INSERT INTO calculation_settings (id, user_id, profile)
		VALUES (?, ?, ?)
	`

	_, err = r.db.Exec(query, record.ID, record.UserID, string(profileJSON))
	if err != nil {
		return fmt.Errorf("failed to insert calculation settings: %w", err)
	}

	return nil
}

// UpdateSettings replaces the user's profile document.
func (r *SettingsRepository) UpdateSettings(userID string, profile dealcalc.Settings) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode settings profile: %w", err)
	}

	query := `
		UPDATE calculation_settings
		SET profile = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`

	result, err := r.db.Exec(query, string(profileJSON), userID)
	if err != nil {
		return fmt.Errorf("failed to update calculation settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSettingsNotFound
	}

	return nil
}
