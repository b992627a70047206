package history

import (
	"fmt"

	"github.com/bnavalyal/suspicious-checker/internal/core"
	"go.uber.org/zap"
)

// CSVExporter writes one run's records to a user-chosen path. The snapshot
// holds only the records passed in, never the cumulative history.
type CSVExporter struct {
	logger *zap.Logger
}

// NewCSVExporter creates a new snapshot exporter
func NewCSVExporter(logger *zap.Logger) *CSVExporter {
	return &CSVExporter{logger: logger}
}

// Export writes records to path using the same table schema as the history
// file.
func (e *CSVExporter) Export(path string, records []core.ClassificationRecord) error {
	if err := writeRecords(path, records); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	e.logger.Info("Exported results",
		zap.String("path", path),
		zap.Int("count", len(records)))
	return nil
}
