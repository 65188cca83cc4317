package service

import (
	"database/sql"
	"strconv"

	"github.com/mdejong/Flip-Budget-Backend/internal/database"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
	"github.com/mdejong/Flip-Budget-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns application and database version information.
func (s *SystemService) CheckVersion() model.VersionInfo {
	info := model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  "unknown",
		Features: map[string]bool{
			"exports": true,
			"alerts":  true,
		},
	}

	if v, err := database.Version(s.db); err == nil {
		info.DbVersion = strconv.FormatInt(v, 10)
	}

	return info
}
