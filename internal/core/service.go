package core

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// AllowlistChecker reports whether an email entry's domain is trusted.
type AllowlistChecker interface {
	IsAllowed(entry string) bool
}

// EntryNormalizer cleans up a raw input line before scoring.
type EntryNormalizer interface {
	ProcessEntry(entry string) string
}

// SnapshotExporter writes one run's records to a user-chosen path.
type SnapshotExporter interface {
	Export(path string, records []ClassificationRecord) error
}

// CheckerService is the core service for entry classification.
type CheckerService struct {
	urlScorer   EntryScorer
	emailScorer EntryScorer
	history     HistoryRepository
	allowlist   AllowlistChecker
	normalizer  EntryNormalizer
	exporter    SnapshotExporter
	logger      *zap.Logger
}

// NewCheckerService creates a new checker service. The allowlist and
// normalizer may be nil.
func NewCheckerService(
	urlScorer EntryScorer,
	emailScorer EntryScorer,
	history HistoryRepository,
	allowlist AllowlistChecker,
	normalizer EntryNormalizer,
	exporter SnapshotExporter,
	logger *zap.Logger,
) *CheckerService {
	return &CheckerService{
		urlScorer:   urlScorer,
		emailScorer: emailScorer,
		history:     history,
		allowlist:   allowlist,
		normalizer:  normalizer,
		exporter:    exporter,
		logger:      logger,
	}
}

// CheckEntry scores and classifies a single entry. Dispatch between the URL
// and email scorers is solely "contains @".
func (s *CheckerService) CheckEntry(entry string) ClassificationRecord {
	var result ScoreResult

	switch {
	case strings.Contains(entry, "@") && s.allowlist != nil && s.allowlist.IsAllowed(entry):
		s.logger.Info("Skipping rule checks for allowlisted domain",
			zap.String("entry", entry),
			zap.String("action", "allowlist_bypass"))
		result = ScoreResult{Score: 0, Issues: []string{"Domain is allowlisted"}}
	case strings.Contains(entry, "@"):
		result = s.emailScorer.Score(entry)
	default:
		result = s.urlScorer.Score(entry)
	}

	return ClassificationRecord{
		Input:  entry,
		Issues: strings.Join(result.Issues, ", "),
		Score:  result.Score,
		Status: Classify(result.Score),
	}
}

// AnalyzeText classifies every non-blank line of text and appends the run's
// records to the history store. A history write failure degrades to a log
// entry; the computed records are returned either way.
func (s *CheckerService) AnalyzeText(ctx context.Context, text string) ([]ClassificationRecord, RunSummary) {
	var records []ClassificationRecord
	var summary RunSummary

	for _, line := range strings.Split(text, "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		if s.normalizer != nil {
			entry = s.normalizer.ProcessEntry(entry)
		}
		record := s.CheckEntry(entry)
		records = append(records, record)
		summary.Add(record.Status)
	}

	if len(records) == 0 {
		return nil, summary
	}

	if err := s.history.Append(ctx, records); err != nil {
		s.logger.Error("Failed to append records to history", zap.Error(err))
	} else {
		s.logger.Debug("Appended records to history", zap.Int("count", len(records)))
	}

	return records, summary
}

// History returns every persisted record with recomputed status counts.
func (s *CheckerService) History(ctx context.Context) ([]ClassificationRecord, RunSummary, error) {
	records, err := s.history.LoadAll(ctx)
	if err != nil {
		return nil, RunSummary{}, err
	}

	var summary RunSummary
	for _, record := range records {
		summary.Add(record.Status)
	}
	return records, summary, nil
}

// Export snapshots the given run's records to path. It writes only the
// records passed in, never the cumulative history; an empty run is a no-op.
func (s *CheckerService) Export(path string, records []ClassificationRecord) error {
	if len(records) == 0 {
		s.logger.Info("Nothing to export, skipping", zap.String("path", path))
		return nil
	}
	return s.exporter.Export(path, records)
}
