package config

// HistoryConfig represents the configuration for the history store
type HistoryConfig struct {
	Backend    string
	CSVPath    string
	SQLitePath string
	MySQLDSN   string
}

// RulesConfig represents the pattern-set overrides for the heuristic scorers
type RulesConfig struct {
	URLKeywords   []string
	URLShorteners []string
	URLLookalikes []string
	EmailKeywords []string
	EmailTLDs     []string
}

// CheckerConfig represents the configuration for the checker service
type CheckerConfig struct {
	AllowlistedDomains []string
}

// GetHistory returns the history store configuration
func (c *Config) GetHistory() HistoryConfig {
	return HistoryConfig{
		Backend:    c.GetString("history.backend"),
		CSVPath:    c.GetString("history.csv_path"),
		SQLitePath: c.GetString("history.sqlite_path"),
		MySQLDSN:   c.GetString("history.mysql_dsn"),
	}
}

// GetRules returns the pattern-set overrides
func (c *Config) GetRules() RulesConfig {
	return RulesConfig{
		URLKeywords:   c.GetStringSlice("rules.url_keywords"),
		URLShorteners: c.GetStringSlice("rules.url_shorteners"),
		URLLookalikes: c.GetStringSlice("rules.url_lookalikes"),
		EmailKeywords: c.GetStringSlice("rules.email_keywords"),
		EmailTLDs:     c.GetStringSlice("rules.email_tlds"),
	}
}

// GetChecker returns the checker service configuration
func (c *Config) GetChecker() CheckerConfig {
	return CheckerConfig{
		AllowlistedDomains: c.GetStringSlice("checker.allowlisted_domains"),
	}
}
