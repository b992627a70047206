package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/adapters/report"
	"github.com/bnavalyal/suspicious-checker/internal/core"
	"github.com/bnavalyal/suspicious-checker/internal/di"
)

func main() {
	flags := di.ParseFlags()

	// Build the dependency injection container
	container, err := di.BuildContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	flags *di.CLIFlags,
	logger *zap.Logger,
	service *core.CheckerService,
	renderer *report.Renderer,
	repo core.HistoryRepository,
) error {
	defer logger.Sync()
	ctx := context.Background()

	// Close the history backend if needed
	defer func() {
		if closer, ok := repo.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Error("Failed to close history store", zap.Error(err))
			}
		}
	}()

	if flags.ShowHistory {
		records, summary, err := service.History(ctx)
		if err != nil {
			logger.Error("Failed to load history", zap.Error(err))
			return err
		}
		renderer.RenderRun("History", records, summary)
		return nil
	}

	// Read entries from file or stdin
	var entryReader io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			logger.Error("Failed to open input file", zap.Error(err), zap.String("file", flags.InputFile))
			return err
		}
		defer file.Close()
		entryReader = file
		logger.Info("Reading entries from file", zap.String("file", flags.InputFile))
	} else {
		entryReader = os.Stdin
		logger.Info("Reading entries from stdin")
	}

	text, err := io.ReadAll(entryReader)
	if err != nil {
		logger.Error("Failed to read input", zap.Error(err))
		return err
	}

	records, summary := service.AnalyzeText(ctx, string(text))
	renderer.RenderRun("Results", records, summary)

	if flags.ExportPath != "" {
		if err := service.Export(flags.ExportPath, records); err != nil {
			logger.Error("Failed to export results", zap.Error(err))
			return err
		}
	}

	return nil
}
