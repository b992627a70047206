package core

import (
	"strings"
)

// Status buckets an entry's risk score.
type Status string

const (
	StatusSafe       Status = "SAFE"
	StatusPotential  Status = "POTENTIAL"
	StatusSuspicious Status = "SUSPICIOUS"
)

// Display markers for each status. Markers are derived at render time only;
// the canonical Status token is what gets persisted.
const (
	MarkerSafe       = "✅"
	MarkerPotential  = "⚠️"
	MarkerSuspicious = "❌"
)

// Marker returns the display glyph for the status.
func (s Status) Marker() string {
	switch s {
	case StatusSuspicious:
		return MarkerSuspicious
	case StatusPotential:
		return MarkerPotential
	default:
		return MarkerSafe
	}
}

// ParseStatus maps a persisted Status cell back to a status bucket.
// Canonical tokens match first; legacy rows written with display markers
// fall back to marker-substring matching (suspicious, then potential,
// else safe).
func ParseStatus(s string) Status {
	switch {
	case strings.Contains(s, string(StatusSuspicious)), strings.Contains(s, MarkerSuspicious):
		return StatusSuspicious
	case strings.Contains(s, string(StatusPotential)), strings.Contains(s, "⚠"):
		return StatusPotential
	default:
		return StatusSafe
	}
}

// ScoreResult is the outcome of running one entry through a scorer.
// Issues preserve rule evaluation order.
type ScoreResult struct {
	Score  int
	Issues []string
}

// ClassificationRecord is one classified entry as it is rendered and persisted.
type ClassificationRecord struct {
	Input  string
	Issues string
	Score  int
	Status Status
}

// RunSummary counts records per status bucket for the dashboard cards.
type RunSummary struct {
	Safe       int
	Potential  int
	Suspicious int
}

// Add counts a record into the summary.
func (s *RunSummary) Add(status Status) {
	switch status {
	case StatusSuspicious:
		s.Suspicious++
	case StatusPotential:
		s.Potential++
	default:
		s.Safe++
	}
}

// Total returns the number of counted records.
func (s RunSummary) Total() int {
	return s.Safe + s.Potential + s.Suspicious
}

// Classify maps a clamped risk score to its status bucket.
func Classify(score int) Status {
	switch {
	case score >= 5:
		return StatusSuspicious
	case score > 0:
		return StatusPotential
	default:
		return StatusSafe
	}
}
