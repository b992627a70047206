package allowlist

import (
	"strings"

	"go.uber.org/zap"
)

// Checker provides functionality to check if entry domains are allowlisted
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a new allowlist checker
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	// Normalize domains (lowercase)
	normalizedDomains := make([]string, len(domains))
	for i, domain := range domains {
		normalizedDomains[i] = strings.ToLower(strings.TrimSpace(domain))
	}

	if len(normalizedDomains) > 0 && logger != nil {
		logger.Info("Initialized allowlist checker", zap.Strings("domains", normalizedDomains))
	}

	return &Checker{
		domains: normalizedDomains,
		logger:  logger,
	}
}

// IsAllowed checks if the entry's domain is in the allowlist
func (c *Checker) IsAllowed(entry string) bool {
	if len(c.domains) == 0 {
		return false
	}

	// Extract domain from email-style entry
	parts := strings.Split(entry, "@")
	if len(parts) != 2 {
		return false
	}
	domain := strings.ToLower(parts[1])

	for _, allowed := range c.domains {
		if allowed == domain {
			if c.logger != nil {
				c.logger.Debug("Domain is allowlisted",
					zap.String("domain", domain),
					zap.String("entry", entry))
			}
			return true
		}
	}

	return false
}
