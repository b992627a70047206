package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bnavalyal/suspicious-checker/internal/core"
	"github.com/bnavalyal/suspicious-checker/internal/logging"
	"github.com/bnavalyal/suspicious-checker/internal/rules"
)

var (
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: check [flags] <url-or-email>\n")
		os.Exit(2)
	}
	entry := strings.TrimSpace(flag.Arg(0))

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var result core.ScoreResult
	var kind string
	if strings.Contains(entry, "@") {
		kind = "email"
		result = rules.NewEmailScorer(rules.DefaultEmailSets(), logger).Score(entry)
	} else {
		kind = "url"
		result = rules.NewURLScorer(rules.DefaultURLSets(), logger).Score(entry)
	}
	status := core.Classify(result.Score)

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Entry: %s\n", entry)
	fmt.Printf("Kind: %s\n", kind)
	fmt.Printf("Score: %d\n", result.Score)
	fmt.Printf("Issues: %s\n", strings.Join(result.Issues, ", "))
	fmt.Printf("Status: %s %s\n", status, status.Marker())

	if status == core.StatusSuspicious {
		os.Exit(1)
	}
}
