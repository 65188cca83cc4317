package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mdejong/Flip-Budget-Backend/internal/dealcalc"
	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
	"github.com/mdejong/Flip-Budget-Backend/internal/validation"
)

// DefaultUserID identifies the single-tenant profile owner until real
// authentication lands.
const DefaultUserID = "default"

// SettingsService handles calculation profile business logic operations.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService with the provided repository dependency.
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the user's calculation profile, materializing the
// default profile on first read so the API never returns not-found here.
func (s *SettingsService) GetSettings(userID string) (model.SettingsRecord, error) {
	record, err := s.settingsRepo.GetSettingsOnUserID(userID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, apperrors.ErrSettingsNotFound) {
		return model.SettingsRecord{}, err
	}

	record = model.SettingsRecord{
		ID:      uuid.New().String(),
		UserID:  userID,
		Profile: dealcalc.DefaultSettings(),
	}

	if err := s.settingsRepo.CreateSettings(record); err != nil {
		return model.SettingsRecord{}, err
	}

	return s.settingsRepo.GetSettingsOnUserID(userID)
}

// UpdateSettings validates and stores a replacement profile.
func (s *SettingsService) UpdateSettings(userID string, profile dealcalc.Settings) (model.SettingsRecord, error) {
	if err := validation.ValidateSettings(profile); err != nil {
		return model.SettingsRecord{}, err
	}

	// Materialize the row first so an update on a fresh install succeeds.
	if _, err := s.GetSettings(userID); err != nil {
		return model.SettingsRecord{}, err
	}

	if err := s.settingsRepo.UpdateSettings(userID, profile); err != nil {
		return model.SettingsRecord{}, err
	}

	return s.settingsRepo.GetSettingsOnUserID(userID)
}
