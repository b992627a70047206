package rules

// Issue labels, one per heuristic rule. Output order always follows rule
// evaluation order.
const (
	IssueInvalidURL      = "Invalid URL format"
	IssueIPAddress       = "Contains IP address"
	IssueKeywords        = "Suspicious keywords"
	IssueShortenedURL    = "Shortened URL"
	IssueAtSymbol        = "Contains @ symbol"
	IssueExcessiveSymbol = "Excessive symbols"
	IssuePhishingDomain  = "Possible phishing domain"
	IssueInvalidEmail    = "Invalid email format"
	IssueSuspiciousTLD   = "Suspicious TLD"
	IssueNone            = "No obvious issues found"
)

// MaxScore caps the additive risk total for any entry.
const MaxScore = 10

// URLSets holds the pattern sets the URL scorer matches against. Sets are
// configuration; points, labels, and rule order are fixed.
type URLSets struct {
	Keywords   []string
	Shorteners []string
	Lookalikes []string
}

// EmailSets holds the pattern sets the email scorer matches against.
type EmailSets struct {
	Keywords []string
	TLDs     []string
}

// DefaultURLSets returns the built-in URL pattern sets.
func DefaultURLSets() URLSets {
	return URLSets{
		Keywords:   []string{"free", "login", "verify", "update", "secure", "bank", "paypal", "confirm", "account"},
		Shorteners: []string{"bit.ly", "tinyurl.com", "goo.gl", "t.co"},
		Lookalikes: []string{"goog1e", "facebo0k", "paypa1"},
	}
}

// DefaultEmailSets returns the built-in email pattern sets.
func DefaultEmailSets() EmailSets {
	return EmailSets{
		Keywords: []string{"admin", "support", "verify", "noreply", "security", "alert"},
		TLDs:     []string{".xyz", ".club", ".top", ".online"},
	}
}
