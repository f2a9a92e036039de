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
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Owner table
		CREATE TABLE IF NOT EXISTS owner (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Property table
		CREATE TABLE IF NOT EXISTS property (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			owner_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(30) NOT NULL,
			address TEXT NOT NULL,
			purchase_value FLOAT NOT NULL CHECK (purchase_value > 0),
			current_value FLOAT,
			rent_amount FLOAT NOT NULL DEFAULT 0 CHECK (rent_amount >= 0),
			roi FLOAT,
			is_liquidated BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(owner_id) REFERENCES owner(id)
		);

		-- Transaction table. No cascade delete: transactions are retained
		-- after a property is liquidated or deleted.
		CREATE TABLE IF NOT EXISTS property_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			kind VARCHAR(10) NOT NULL CHECK (kind IN ('income', 'expense')),
			amount FLOAT NOT NULL CHECK (amount > 0),
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_property_transaction_property_date
			ON property_transaction(property_id, date);

		-- Liquidation table
		CREATE TABLE IF NOT EXISTS liquidation (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL,
			sale_date DATE NOT NULL,
			sale_value FLOAT NOT NULL,
			cost_basis FLOAT NOT NULL,
			gross_profit FLOAT NOT NULL,
			net_profit FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(property_id) REFERENCES property(id)
		);

		-- Valuation snapshot table
		CREATE TABLE IF NOT EXISTS valuation_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL UNIQUE,
			total_properties INTEGER NOT NULL,
			total_value FLOAT NOT NULL,
			current_value FLOAT NOT NULL,
			monthly_income FLOAT NOT NULL,
			occupancy_rate FLOAT NOT NULL,
			calculated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}
