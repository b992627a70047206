package report

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/core"
)

func TestRenderRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, zap.NewNop())

	records := []core.ClassificationRecord{
		{Input: "http://bit.ly/abc", Issues: "Shortened URL", Score: 2, Status: core.StatusPotential},
		{Input: "verify@mail.xyz", Issues: "Suspicious keywords, Suspicious TLD", Score: 5, Status: core.StatusSuspicious},
	}
	var summary core.RunSummary
	for _, rec := range records {
		summary.Add(rec.Status)
	}

	r.RenderRun("Results", records, summary)
	out := buf.String()

	for _, want := range []string{
		"=== Results ===",
		"INPUT",
		"http://bit.ly/abc",
		"POTENTIAL " + core.MarkerPotential,
		"SUSPICIOUS " + core.MarkerSuspicious,
		"=== Dashboard ===",
		"SAFE: 0",
		"POTENTIAL: 1",
		"SUSPICIOUS: 1",
		"Total: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRunEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, zap.NewNop())

	r.RenderRun("History", nil, core.RunSummary{})
	if !strings.Contains(buf.String(), "No entries") {
		t.Errorf("empty run output = %q", buf.String())
	}
}
