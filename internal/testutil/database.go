package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the migration in internal/database/migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Project table
		CREATE TABLE project (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			address VARCHAR(200),
			city VARCHAR(100),
			state VARCHAR(2),
			zip VARCHAR(10),
			status VARCHAR(20) NOT NULL DEFAULT 'lead',
			arv FLOAT,
			purchase_price FLOAT,
			rehab_budget FLOAT NOT NULL DEFAULT 0,
			closing_costs FLOAT NOT NULL DEFAULT 0,
			holding_costs_monthly FLOAT NOT NULL DEFAULT 0,
			hold_months FLOAT NOT NULL DEFAULT 0,
			selling_cost_percent FLOAT NOT NULL DEFAULT 0,
			contingency_percent FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Budget table
		CREATE TABLE budget_line_item (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			project_id VARCHAR(36) NOT NULL,
			category VARCHAR(30) NOT NULL,
			item VARCHAR(200) NOT NULL,
			qty FLOAT NOT NULL DEFAULT 0,
			unit VARCHAR(20),
			rate FLOAT NOT NULL DEFAULT 0,
			underwriting_amount FLOAT NOT NULL DEFAULT 0,
			forecast_amount FLOAT NOT NULL DEFAULT 0,
			actual_amount FLOAT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES project(id) ON DELETE CASCADE
		);

		-- Vendor directory
		CREATE TABLE vendor (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			company VARCHAR(100),
			trade VARCHAR(50),
			phone VARCHAR(30),
			email VARCHAR(100),
			address VARCHAR(200),
			tax_id TEXT,
			is_preferred BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Draw schedule
		CREATE TABLE draw (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			project_id VARCHAR(36) NOT NULL,
			vendor_id VARCHAR(36),
			number INTEGER NOT NULL,
			description VARCHAR(200),
			amount FLOAT NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'scheduled',
			due_date DATE NOT NULL,
			paid_date DATE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES project(id) ON DELETE CASCADE,
			FOREIGN KEY(vendor_id) REFERENCES vendor(id) ON DELETE SET NULL
		);

		-- Notes
		CREATE TABLE note (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			project_id VARCHAR(36) NOT NULL,
			title VARCHAR(200),
			body TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES project(id) ON DELETE CASCADE
		);

		-- Photo metadata
		CREATE TABLE photo (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			project_id VARCHAR(36) NOT NULL,
			caption VARCHAR(200),
			phase VARCHAR(10) NOT NULL DEFAULT 'progress',
			stored_name VARCHAR(100) NOT NULL,
			original_name VARCHAR(200),
			content_type VARCHAR(100),
			size_bytes INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES project(id) ON DELETE CASCADE
		);

		-- Calculation profile, one JSON document per user
		CREATE TABLE calculation_settings (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			profile TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT unique_settings_user UNIQUE (user_id)
		);
	`

	_, err := db.Exec(schema)
	return err
}
