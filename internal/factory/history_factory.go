package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnavalyal/suspicious-checker/internal/adapters/history"
	"github.com/bnavalyal/suspicious-checker/internal/config"
	"github.com/bnavalyal/suspicious-checker/internal/core"
	"go.uber.org/zap"
)

// HistoryFactory creates history repositories based on configuration
type HistoryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHistoryFactory creates a new history factory
func NewHistoryFactory(cfg *config.Config, logger *zap.Logger) *HistoryFactory {
	return &HistoryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateHistoryRepository creates a history repository based on the configuration
func (f *HistoryFactory) CreateHistoryRepository() (core.HistoryRepository, error) {
	hc := f.cfg.GetHistory()

	switch hc.Backend {
	case "csv":
		return history.NewCSVHistory(hc.CSVPath, f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if dir := filepath.Dir(hc.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
			}
		}
		return history.NewSQLiteHistory(hc.SQLitePath, f.logger)
	case "mysql":
		return history.NewMySQLHistory(hc.MySQLDSN, f.logger)
	case "memory":
		return history.NewMemoryHistory(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", hc.Backend)
	}
}
