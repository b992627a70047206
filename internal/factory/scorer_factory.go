package factory

import (
	"github.com/bnavalyal/suspicious-checker/internal/config"
	"github.com/bnavalyal/suspicious-checker/internal/rules"
	"go.uber.org/zap"
)

// ScorerFactory creates heuristic scorers with pattern sets taken from
// configuration, falling back to the built-in sets.
type ScorerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewScorerFactory creates a new scorer factory
func NewScorerFactory(cfg *config.Config, logger *zap.Logger) *ScorerFactory {
	return &ScorerFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateURLScorer creates the URL scorer
func (f *ScorerFactory) CreateURLScorer() *rules.URLScorer {
	rc := f.cfg.GetRules()
	sets := rules.DefaultURLSets()
	if len(rc.URLKeywords) > 0 {
		sets.Keywords = rc.URLKeywords
	}
	if len(rc.URLShorteners) > 0 {
		sets.Shorteners = rc.URLShorteners
	}
	if len(rc.URLLookalikes) > 0 {
		sets.Lookalikes = rc.URLLookalikes
	}
	return rules.NewURLScorer(sets, f.logger)
}

// CreateEmailScorer creates the email scorer
func (f *ScorerFactory) CreateEmailScorer() *rules.EmailScorer {
	rc := f.cfg.GetRules()
	sets := rules.DefaultEmailSets()
	if len(rc.EmailKeywords) > 0 {
		sets.Keywords = rc.EmailKeywords
	}
	if len(rc.EmailTLDs) > 0 {
		sets.TLDs = rc.EmailTLDs
	}
	return rules.NewEmailScorer(sets, f.logger)
}
