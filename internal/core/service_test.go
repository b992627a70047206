package core_test

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/adapters/history"
	"github.com/bnavalyal/suspicious-checker/internal/allowlist"
	"github.com/bnavalyal/suspicious-checker/internal/core"
	"github.com/bnavalyal/suspicious-checker/internal/rules"
	"github.com/bnavalyal/suspicious-checker/internal/utils"
)

func newService(t *testing.T, repo core.HistoryRepository, domains []string) *core.CheckerService {
	t.Helper()
	logger := zap.NewNop()
	return core.NewCheckerService(
		rules.NewURLScorer(rules.DefaultURLSets(), logger),
		rules.NewEmailScorer(rules.DefaultEmailSets(), logger),
		repo,
		allowlist.NewChecker(domains, logger),
		utils.NewTextProcessor(logger),
		history.NewCSVExporter(logger),
		logger,
	)
}

func TestCheckEntryDispatch(t *testing.T) {
	svc := newService(t, history.NewMemoryHistory(zap.NewNop()), nil)

	cases := []struct {
		entry      string
		wantScore  int
		wantStatus core.Status
		wantIssues string
	}{
		{"user@example.com", 0, core.StatusSafe, "No obvious issues found"},
		{"verify@mail.xyz", 5, core.StatusSuspicious, "Suspicious keywords, Suspicious TLD"},
		{"http://192.168.1.1/login", 5, core.StatusSuspicious, "Contains IP address, Suspicious keywords"},
		{"http://bit.ly/abc", 2, core.StatusPotential, "Shortened URL"},
		{"https://example.com", 0, core.StatusSafe, "No obvious issues found"},
	}

	for _, c := range cases {
		got := svc.CheckEntry(c.entry)
		if got.Score != c.wantScore {
			t.Errorf("CheckEntry(%q) score = %d; want %d", c.entry, got.Score, c.wantScore)
		}
		if got.Status != c.wantStatus {
			t.Errorf("CheckEntry(%q) status = %s; want %s", c.entry, got.Status, c.wantStatus)
		}
		if got.Issues != c.wantIssues {
			t.Errorf("CheckEntry(%q) issues = %q; want %q", c.entry, got.Issues, c.wantIssues)
		}
	}
}

func TestAnalyzeTextAppendsRunsInOrder(t *testing.T) {
	repo := history.NewMemoryHistory(zap.NewNop())
	svc := newService(t, repo, nil)
	ctx := context.Background()

	runA := "http://bit.ly/abc\nuser@example.com\n"
	runB := "\nverify@mail.xyz\n\n"

	recordsA, summaryA := svc.AnalyzeText(ctx, runA)
	if len(recordsA) != 2 {
		t.Fatalf("run A records = %d; want 2", len(recordsA))
	}
	if summaryA.Safe != 1 || summaryA.Potential != 1 || summaryA.Suspicious != 0 {
		t.Errorf("run A summary = %+v", summaryA)
	}

	recordsB, summaryB := svc.AnalyzeText(ctx, runB)
	if len(recordsB) != 1 {
		t.Fatalf("run B records = %d; want 1", len(recordsB))
	}
	if summaryB.Suspicious != 1 {
		t.Errorf("run B summary = %+v", summaryB)
	}

	all, summary, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	wantInputs := []string{"http://bit.ly/abc", "user@example.com", "verify@mail.xyz"}
	if len(all) != len(wantInputs) {
		t.Fatalf("history length = %d; want %d", len(all), len(wantInputs))
	}
	for i, want := range wantInputs {
		if all[i].Input != want {
			t.Errorf("history[%d].Input = %q; want %q", i, all[i].Input, want)
		}
	}
	if summary.Safe != 1 || summary.Potential != 1 || summary.Suspicious != 1 {
		t.Errorf("history summary = %+v", summary)
	}
}

func TestAnalyzeTextEmptyInput(t *testing.T) {
	repo := history.NewMemoryHistory(zap.NewNop())
	svc := newService(t, repo, nil)

	records, summary := svc.AnalyzeText(context.Background(), "\n  \n\n")
	if records != nil {
		t.Errorf("records = %v; want nil", records)
	}
	if summary.Total() != 0 {
		t.Errorf("summary total = %d; want 0", summary.Total())
	}

	all, _, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("history not empty after blank run: %v", all)
	}
}

func TestAllowlistBypass(t *testing.T) {
	svc := newService(t, history.NewMemoryHistory(zap.NewNop()), []string{"example.com"})

	got := svc.CheckEntry("verify@example.com")
	if got.Score != 0 || got.Status != core.StatusSafe {
		t.Errorf("allowlisted entry scored %d/%s; want 0/SAFE", got.Score, got.Status)
	}
	if got.Issues != "Domain is allowlisted" {
		t.Errorf("allowlisted entry issues = %q", got.Issues)
	}

	// Other domains still go through the rules
	got = svc.CheckEntry("verify@mail.xyz")
	if got.Status != core.StatusSuspicious {
		t.Errorf("non-allowlisted entry status = %s; want SUSPICIOUS", got.Status)
	}
}

func TestExportSnapshot(t *testing.T) {
	repo := history.NewMemoryHistory(zap.NewNop())
	svc := newService(t, repo, nil)
	ctx := context.Background()

	records, _ := svc.AnalyzeText(ctx, "http://bit.ly/abc\n")
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := svc.Export(path, records); err != nil {
		t.Fatalf("Export: %v", err)
	}

	// The snapshot is a valid table holding only this run's records
	exported := history.NewCSVHistory(path, zap.NewNop())
	got, err := exported.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll(exported): %v", err)
	}
	if len(got) != 1 || got[0].Input != "http://bit.ly/abc" {
		t.Errorf("exported records = %v", got)
	}
}

func TestExportEmptyRunIsNoop(t *testing.T) {
	svc := newService(t, history.NewMemoryHistory(zap.NewNop()), nil)

	path := filepath.Join(t.TempDir(), "missing", "export.csv")
	if err := svc.Export(path, nil); err != nil {
		t.Fatalf("Export of empty run: %v", err)
	}
}
