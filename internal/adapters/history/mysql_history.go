package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/bnavalyal/suspicious-checker/internal/core"
	"go.uber.org/zap"
)

// MySQLHistory is a MySQL implementation of the HistoryRepository interface
type MySQLHistory struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLHistory creates a new MySQL-backed history store
func NewMySQLHistory(dsn string, logger *zap.Logger) (*MySQLHistory, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			input TEXT NOT NULL,
			issues TEXT,
			score INT,
			status VARCHAR(32)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLHistory{
		db:     db,
		logger: logger,
	}, nil
}

// Append inserts records in order after the existing history
func (h *MySQLHistory) Append(ctx context.Context, records []core.ClassificationRecord) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, r := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO history (input, issues, score, status)
			VALUES (?, ?, ?, ?)
		`, r.Input, r.Issues, r.Score, string(r.Status)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert history record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history records: %w", err)
	}

	h.logger.Debug("Appended history records", zap.Int("count", len(records)))
	return nil
}

// LoadAll returns every persisted record in insertion order
func (h *MySQLHistory) LoadAll(ctx context.Context) ([]core.ClassificationRecord, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT input, issues, score, status
		FROM history
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []core.ClassificationRecord
	for rows.Next() {
		var r core.ClassificationRecord
		var status string
		if err := rows.Scan(&r.Input, &r.Issues, &r.Score, &status); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		r.Status = core.ParseStatus(status)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history records: %w", err)
	}

	return records, nil
}

// Close closes the database connection
func (h *MySQLHistory) Close() error {
	return h.db.Close()
}
