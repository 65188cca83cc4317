package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mdejong/Flip-Budget-Backend/internal/config"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
	"github.com/mdejong/Flip-Budget-Backend/internal/secrets"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

func NewTestProjectService(t *testing.T, db *sql.DB) *service.ProjectService {
	t.Helper()

	return service.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewBudgetRepository(db),
		repository.NewDrawRepository(db),
		repository.NewNoteRepository(db),
		repository.NewPhotoRepository(db),
	)
}

func NewTestBudgetService(t *testing.T, db *sql.DB) *service.BudgetService {
	t.Helper()

	return service.NewBudgetService(
		repository.NewBudgetRepository(db),
		repository.NewProjectRepository(db),
	)
}

func NewTestVendorService(t *testing.T, db *sql.DB) *service.VendorService {
	t.Helper()

	return service.NewVendorService(NewTestVendorRepository(t, db))
}

// NewTestVendorRepository builds a vendor repository with encryption
// disabled so factory-inserted plaintext tax IDs read back unchanged.
func NewTestVendorRepository(t *testing.T, db *sql.DB) *repository.VendorRepository {
	t.Helper()

	codec, err := secrets.NewCodec("")
	if err != nil {
		t.Fatalf("Failed to create secrets codec: %v", err)
	}

	return repository.NewVendorRepository(db, codec)
}

func NewTestDrawService(t *testing.T, db *sql.DB) *service.DrawService {
	t.Helper()

	return service.NewDrawService(
		repository.NewDrawRepository(db),
		repository.NewProjectRepository(db),
	)
}

func NewTestNoteService(t *testing.T, db *sql.DB) *service.NoteService {
	t.Helper()

	return service.NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewProjectRepository(db),
	)
}

func NewTestPhotoService(t *testing.T, db *sql.DB) *service.PhotoService {
	t.Helper()

	return service.NewPhotoService(
		repository.NewPhotoRepository(db),
		repository.NewProjectRepository(db),
		t.TempDir(),
	)
}

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	return service.NewSettingsService(repository.NewSettingsRepository(db))
}

func NewTestDealService(t *testing.T, db *sql.DB) *service.DealService {
	t.Helper()

	return service.NewDealService(
		repository.NewProjectRepository(db),
		repository.NewBudgetRepository(db),
		NewTestSettingsService(t, db),
	)
}

func NewTestExportService(t *testing.T, db *sql.DB) *service.ExportService {
	t.Helper()

	return service.NewExportService(
		NewTestProjectService(t, db),
		NewTestBudgetService(t, db),
		NewTestDealService(t, db),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestAlertService builds an alert service with mail disabled; findings
// go to a discarded logger.
func NewTestAlertService(t *testing.T, db *sql.DB) *service.AlertService {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return service.NewAlertService(
		repository.NewProjectRepository(db),
		repository.NewBudgetRepository(db),
		repository.NewDrawRepository(db),
		NewTestSettingsService(t, db),
		config.SMTPConfig{},
		log,
	)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeProjectName generates a unique project name for testing.
//
// Example usage:
//
//	name := testutil.MakeProjectName("Oak St")
//	// Returns: "Oak St ABC123"
func MakeProjectName(base string) string {
	if base == "" {
		base = "Project"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeVendorName generates a unique vendor name for testing.
func MakeVendorName(base string) string {
	if base == "" {
		base = "Vendor"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
