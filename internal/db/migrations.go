package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Statements use __PK__ as a placeholder for the driver's autoincrement
// primary key column, so the same schema runs on sqlite and postgres.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id __PK__,
		username VARCHAR(64) NOT NULL UNIQUE,
		password_hash VARCHAR(128) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id __PK__,
		actor VARCHAR(64) NOT NULL,
		action TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS demand (
		code __PK__,
		entry_date VARCHAR(10),
		requester TEXT,
		protocol_date VARCHAR(10),
		letter_ref TEXT,
		process_number TEXT,
		status VARCHAR(16) NOT NULL DEFAULT 'NEW'
	);`,
	`CREATE TABLE IF NOT EXISTS agreement_letter (
		id __PK__,
		demand_code BIGINT,
		institution TEXT, instrument TEXT, subproject TEXT, ta TEXT, pta TEXT,
		action TEXT, result TEXT, goal TEXT,
		contract_number TEXT,
		validity_start VARCHAR(10),
		validity_end VARCHAR(10),
		original_validity_end VARCHAR(10),
		secondary_institution TEXT,
		tax_id VARCHAR(20),
		project_title TEXT,
		objective TEXT,
		estimated_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		notes TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS product_or_service (
		id __PK__,
		demand_code BIGINT,
		supplier TEXT,
		modality TEXT,
		objective TEXT,
		validity_start VARCHAR(10),
		validity_end VARCHAR(10),
		notes TEXT,
		estimated_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		institution TEXT, instrument TEXT, subproject TEXT, ta TEXT, pta TEXT,
		action TEXT, result TEXT, goal TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS event (
		id __PK__,
		demand_code BIGINT,
		institution TEXT, instrument TEXT, subproject TEXT, ta TEXT, pta TEXT,
		action TEXT, result TEXT, goal TEXT,
		event_title TEXT,
		supplier TEXT,
		notes TEXT,
		estimated_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_value NUMERIC(18,2) NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS amendment (
		id __PK__,
		parent_id BIGINT NOT NULL,
		parent_kind VARCHAR(32) NOT NULL,
		amendment_type TEXT,
		description TEXT,
		amendment_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		new_validity_end VARCHAR(10),
		registration_date VARCHAR(10)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_amendment_parent ON amendment (parent_id, parent_kind);`,
	`CREATE TABLE IF NOT EXISTS supplier (
		id __PK__,
		name TEXT NOT NULL,
		tax_id VARCHAR(20),
		notes TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS event_title (
		id __PK__,
		title TEXT NOT NULL,
		city TEXT,
		state VARCHAR(2),
		date_start VARCHAR(10),
		date_end VARCHAR(10)
	);`,
	`CREATE TABLE IF NOT EXISTS costing_entries (
		id __PK__,
		institution TEXT,
		project_code TEXT,
		ta TEXT,
		result TEXT,
		subproject TEXT
	);`,
}

func runMigrations(database *gorm.DB, driver string) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	for i, stmt := range migrationStatements {
		stmt = strings.ReplaceAll(stmt, "__PK__", pk)
		if err := database.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
