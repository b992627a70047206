package rules

import (
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/core"
)

var (
	ipAddressRe = regexp.MustCompile(`^http[s]?://\d+\.\d+\.\d+\.\d+`)
	symbolRunRe = regexp.MustCompile(`[?=&]{3,}`)
)

// URLScorer applies the fixed URL heuristic rules. All regexes are compiled
// once at construction.
type URLScorer struct {
	keywordRe   *regexp.Regexp
	shortenerRe *regexp.Regexp
	lookalikeRe *regexp.Regexp
	logger      *zap.Logger
}

// NewURLScorer creates a URL scorer for the given pattern sets. Keyword and
// look-alike matching is case-insensitive; the shortener host match is not.
func NewURLScorer(sets URLSets, logger *zap.Logger) *URLScorer {
	return &URLScorer{
		keywordRe:   compileAlternation(sets.Keywords, "", "", true),
		shortenerRe: compileAlternation(sets.Shorteners, `^http[s]?://`, "", false),
		lookalikeRe: compileAlternation(sets.Lookalikes, "", "", true),
		logger:      logger,
	}
}

// Score runs each rule independently in fixed order, sums the points and
// clamps the total.
func (s *URLScorer) Score(entry string) core.ScoreResult {
	score := 0
	var issues []string

	if u, err := url.Parse(entry); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, IssueInvalidURL)
		score += 5
	}

	if ipAddressRe.MatchString(entry) {
		issues = append(issues, IssueIPAddress)
		score += 3
	}

	if s.keywordRe != nil && s.keywordRe.MatchString(entry) {
		issues = append(issues, IssueKeywords)
		score += 2
	}

	if s.shortenerRe != nil && s.shortenerRe.MatchString(entry) {
		issues = append(issues, IssueShortenedURL)
		score += 2
	}

	if strings.Contains(entry, "@") {
		issues = append(issues, IssueAtSymbol)
		score += 2
	}

	if symbolRunRe.MatchString(entry) {
		issues = append(issues, IssueExcessiveSymbol)
		score += 1
	}

	if s.lookalikeRe != nil && s.lookalikeRe.MatchString(entry) {
		issues = append(issues, IssuePhishingDomain)
		score += 3
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score == 0 {
		issues = []string{IssueNone}
	}

	s.logger.Debug("Scored URL entry",
		zap.String("entry", entry),
		zap.Int("score", score),
		zap.Strings("issues", issues))

	return core.ScoreResult{Score: score, Issues: issues}
}

// compileAlternation builds an alternation regex from literal patterns, with
// optional anchors around the group. Empty sets yield nil so the rule never
// fires.
func compileAlternation(patterns []string, prefix, suffix string, ignoreCase bool) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}
	quoted := make([]string, len(patterns))
	for i, p := range patterns {
		quoted[i] = regexp.QuoteMeta(p)
	}
	expr := prefix + "(" + strings.Join(quoted, "|") + ")" + suffix
	if ignoreCase {
		expr = "(?i)" + expr
	}
	return regexp.MustCompile(expr)
}
