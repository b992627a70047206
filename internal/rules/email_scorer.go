package rules

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/core"
)

// emailFormatRe must match the whole entry: local part, @, domain, dot, TLD.
// Unicode letter/digit classes rather than \w, which is ASCII-only in Go's
// regexp; non-ASCII addresses are not invalid on format grounds.
var emailFormatRe = regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+$`)

// EmailScorer applies the fixed email heuristic rules.
type EmailScorer struct {
	keywordRe *regexp.Regexp
	tlds      []string
	logger    *zap.Logger
}

// NewEmailScorer creates an email scorer for the given pattern sets.
func NewEmailScorer(sets EmailSets, logger *zap.Logger) *EmailScorer {
	return &EmailScorer{
		keywordRe: compileAlternation(sets.Keywords, "", "", true),
		tlds:      sets.TLDs,
		logger:    logger,
	}
}

// Score runs each rule independently in fixed order, sums the points and
// clamps the total.
func (s *EmailScorer) Score(entry string) core.ScoreResult {
	score := 0
	var issues []string

	if !emailFormatRe.MatchString(entry) {
		issues = append(issues, IssueInvalidEmail)
		score += 5
	}

	if s.keywordRe != nil && s.keywordRe.MatchString(entry) {
		issues = append(issues, IssueKeywords)
		score += 3
	}

	// Suffix match is case-sensitive: .XYZ does not trigger.
	for _, tld := range s.tlds {
		if strings.HasSuffix(entry, tld) {
			issues = append(issues, IssueSuspiciousTLD)
			score += 2
			break
		}
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score == 0 {
		issues = []string{IssueNone}
	}

	s.logger.Debug("Scored email entry",
		zap.String("entry", entry),
		zap.Int("score", score),
		zap.Strings("issues", issues))

	return core.ScoreResult{Score: score, Issues: issues}
}
