package di

import (
	"flag"
	"os"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/adapters/history"
	"github.com/bnavalyal/suspicious-checker/internal/adapters/report"
	"github.com/bnavalyal/suspicious-checker/internal/allowlist"
	"github.com/bnavalyal/suspicious-checker/internal/config"
	"github.com/bnavalyal/suspicious-checker/internal/core"
	"github.com/bnavalyal/suspicious-checker/internal/factory"
	"github.com/bnavalyal/suspicious-checker/internal/logging"
	"github.com/bnavalyal/suspicious-checker/internal/rules"
	"github.com/bnavalyal/suspicious-checker/internal/utils"
)

// CLIFlags contains all command line flags for the checker application
type CLIFlags struct {
	// Input flags
	InputFile   string
	ShowHistory bool
	ExportPath  string

	// History flags
	HistoryBackend string
	HistoryFile    string

	// Checker flags
	Allowlist string

	// Logging flags
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input file with one URL or email per line (use stdin if not specified)")
	flag.BoolVar(&flags.ShowHistory, "history", false, "Show the persisted classification history instead of analyzing input")
	flag.StringVar(&flags.ExportPath, "export", "", "Export this run's results to the given CSV path")

	// History flags
	flag.StringVar(&flags.HistoryBackend, "history-backend", "csv", "History backend (csv, sqlite, mysql, memory)")
	flag.StringVar(&flags.HistoryFile, "history-file", "history.csv", "Path of the CSV history file")

	// Checker flags
	flag.StringVar(&flags.Allowlist, "allowlist", "", "Comma-separated list of allowlisted email domains")

	// Logging flags
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildContainer creates and configures a dependency injection container
func BuildContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags) (*config.Config, error) {
		if flags.ConfigFile != "" {
			return config.New()
		}
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register logger. Config-file runs honor logging.level/logging.format;
	// flag runs use the console logger.
	if err := container.Provide(func(flags *CLIFlags, cfg *config.Config) (*zap.Logger, error) {
		if flags.ConfigFile != "" {
			logger, err := logging.InitLogger(cfg)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return logger, nil
		}
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewHistoryFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewScorerFactory); err != nil {
		return nil, err
	}

	// Register history repository
	if err := container.Provide(func(f *factory.HistoryFactory) (core.HistoryRepository, error) {
		return f.CreateHistoryRepository()
	}); err != nil {
		return nil, err
	}

	// Register scorers
	if err := container.Provide(func(f *factory.ScorerFactory) *rules.URLScorer {
		return f.CreateURLScorer()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ScorerFactory) *rules.EmailScorer {
		return f.CreateEmailScorer()
	}); err != nil {
		return nil, err
	}

	// Register allowlist checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *allowlist.Checker {
		domains := cfg.GetChecker().AllowlistedDomains
		return allowlist.NewChecker(domains, logger)
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register exporter
	if err := container.Provide(history.NewCSVExporter); err != nil {
		return nil, err
	}

	// Register checker service
	if err := container.Provide(func(
		urlScorer *rules.URLScorer,
		emailScorer *rules.EmailScorer,
		repo core.HistoryRepository,
		al *allowlist.Checker,
		tp *utils.TextProcessor,
		exporter *history.CSVExporter,
		logger *zap.Logger,
	) *core.CheckerService {
		return core.NewCheckerService(urlScorer, emailScorer, repo, al, tp, exporter, logger)
	}); err != nil {
		return nil, err
	}

	// Register renderer
	if err := container.Provide(func(logger *zap.Logger) *report.Renderer {
		return report.NewRenderer(os.Stdout, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	// Set history backend
	v.Set("history.backend", flags.HistoryBackend)
	v.Set("history.csv_path", flags.HistoryFile)

	// Set allowlisted domains
	if flags.Allowlist != "" {
		domains := strings.Split(flags.Allowlist, ",")
		for i, domain := range domains {
			domains[i] = strings.TrimSpace(domain)
		}
		v.Set("checker.allowlisted_domains", domains)
	} else {
		v.Set("checker.allowlisted_domains", []string{})
	}

	return config.NewFromViper(v)
}
