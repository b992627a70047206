package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/bnavalyal/suspicious-checker/internal/core"
	"go.uber.org/zap"
)

// header is the fixed column order of the persisted table.
var header = []string{"Input", "Issues", "Score", "Status"}

// CSVHistory is a CSV file implementation of the HistoryRepository interface.
// The file carries a header row and one record per row, standard quoting.
type CSVHistory struct {
	path   string
	logger *zap.Logger
}

// NewCSVHistory creates a new CSV-backed history store
func NewCSVHistory(path string, logger *zap.Logger) *CSVHistory {
	return &CSVHistory{
		path:   path,
		logger: logger,
	}
}

// Append concatenates records after the existing history and rewrites the
// full table. A corrupt or unreadable prior file is discarded wholesale; the
// write proceeds with only the new records.
func (h *CSVHistory) Append(ctx context.Context, records []core.ClassificationRecord) error {
	existing, err := readRecords(h.path)
	if err != nil {
		h.logger.Warn("Discarding unreadable history file",
			zap.Error(err),
			zap.String("path", h.path))
		existing = nil
	}

	merged := append(existing, records...)
	if err := writeRecords(h.path, merged); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	h.logger.Debug("Rewrote history file",
		zap.String("path", h.path),
		zap.Int("prior", len(existing)),
		zap.Int("appended", len(records)))
	return nil
}

// LoadAll returns every persisted record in file order. A missing file is
// treated as empty history.
func (h *CSVHistory) LoadAll(ctx context.Context) ([]core.ClassificationRecord, error) {
	if _, err := os.Stat(h.path); os.IsNotExist(err) {
		return nil, nil
	}
	records, err := readRecords(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return records, nil
}

// readRecords parses the full table, skipping the header row.
func readRecords(path string) ([]core.ClassificationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var records []core.ClassificationRecord
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == header[0] {
			continue
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("malformed history row %d: %d columns", i, len(row))
		}
		score, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("malformed score in history row %d: %w", i, err)
		}
		records = append(records, core.ClassificationRecord{
			Input:  row[0],
			Issues: row[1],
			Score:  score,
			Status: core.ParseStatus(row[3]),
		})
	}
	return records, nil
}

// writeRecords rewrites the table with a header row.
func writeRecords(path string, records []core.ClassificationRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.Input, r.Issues, strconv.Itoa(r.Score), string(r.Status)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
