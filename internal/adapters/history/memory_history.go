package history

import (
	"context"
	"sync"

	"github.com/bnavalyal/suspicious-checker/internal/core"
	"go.uber.org/zap"
)

// MemoryHistory is an in-memory implementation of the HistoryRepository
// interface. Nothing survives the process; useful for tests and for running
// without persistence.
type MemoryHistory struct {
	records []core.ClassificationRecord
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewMemoryHistory creates a new in-memory history store
func NewMemoryHistory(logger *zap.Logger) *MemoryHistory {
	return &MemoryHistory{
		logger: logger,
	}
}

// Append adds records after the existing history
func (h *MemoryHistory) Append(ctx context.Context, records []core.ClassificationRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, records...)
	h.logger.Debug("Appended history records", zap.Int("count", len(records)))
	return nil
}

// LoadAll returns a copy of every record in insertion order
func (h *MemoryHistory) LoadAll(ctx context.Context) ([]core.ClassificationRecord, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]core.ClassificationRecord, len(h.records))
	copy(out, h.records)
	return out, nil
}
