package models

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Database represents the database connection and operations
type Database struct {
	db *sqlitecloud.SQCloud
}

// NewDatabase creates a new database connection
func NewDatabase(dbPath string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(dbPath))

	// Connect to SQLite Cloud
	db, err := sqlitecloud.Connect(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %v", err)
	}

	database := &Database{
		db: db,
	}

	// Create tables if they don't exist
	if err := database.createTables(); err != nil {
		return nil, err
	}

	return database, nil
}

// maskConnectionString hides the API key in logs for security
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

// executeSQL executes a SQL command using SQLite Cloud
func (d *Database) executeSQL(sql string, args ...interface{}) error {
	// Use SQLite Cloud's Execute method for DDL/DML operations
	if len(args) > 0 {
		return d.db.ExecuteArray(sql, args)
	}
	return d.db.Execute(sql)
}

// createTables creates the necessary tables if they don't exist
func (d *Database) createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS sheet_sync_log (
			id TEXT PRIMARY KEY,
			spreadsheet_id TEXT NOT NULL,
			sheet_range TEXT NOT NULL,
			stats_json TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sheet_sync_log_created_at
			ON sheet_sync_log(created_at)`,
	}

	for _, table := range tables {
		if err := d.executeSQL(table); err != nil {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}
	return nil
}

// StoreSyncRecord stores one sheet write in the sync history
func (d *Database) StoreSyncRecord(record *SyncRecord) error {
	data, err := json.Marshal(record.Stats)
	if err != nil {
		return err
	}

	sql := `INSERT INTO sheet_sync_log (id, spreadsheet_id, sheet_range, stats_json)
			VALUES (?, ?, ?, ?)`

	return d.db.ExecuteArray(sql, []interface{}{record.ID, record.SpreadsheetID, record.Range, string(data)})
}

// GetRecentSyncs retrieves the most recent sync records, newest first
func (d *Database) GetRecentSyncs(limit int) ([]SyncRecord, error) {
	sql := `SELECT id, spreadsheet_id, sheet_range, stats_json, created_at
			FROM sheet_sync_log
			ORDER BY created_at DESC LIMIT ?`

	result, err := d.db.SelectArray(sql, []interface{}{limit})
	if err != nil {
		return nil, err
	}

	records := make([]SyncRecord, 0, result.GetNumberOfRows())
	for row := uint64(0); row < result.GetNumberOfRows(); row++ {
		var record SyncRecord

		if record.ID, err = result.GetStringValue(row, 0); err != nil {
			return nil, err
		}
		if record.SpreadsheetID, err = result.GetStringValue(row, 1); err != nil {
			return nil, err
		}
		if record.Range, err = result.GetStringValue(row, 2); err != nil {
			return nil, err
		}

		statsJSON, err := result.GetStringValue(row, 3)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(statsJSON), &record.Stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats for sync record %s: %v", record.ID, err)
		}

		createdAt, err := result.GetStringValue(row, 4)
		if err != nil {
			return nil, err
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			record.CreatedAt = parsed
		}

		records = append(records, record)
	}

	return records, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
