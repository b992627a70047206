package core

import (
	"context"
)

// EntryScorer scores a single submitted entry against a fixed rule set.
type EntryScorer interface {
	// Score returns the clamped risk score and the ordered issue labels.
	Score(entry string) ScoreResult
}

// HistoryRepository persists classification records across runs.
type HistoryRepository interface {
	// Append adds records after any existing history, preserving order.
	Append(ctx context.Context, records []ClassificationRecord) error

	// LoadAll returns every persisted record in original order.
	// A missing store yields an empty slice, not an error.
	LoadAll(ctx context.Context) ([]ClassificationRecord, error)
}
