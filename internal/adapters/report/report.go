package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bnavalyal/suspicious-checker/internal/core"
	"go.uber.org/zap"
)

// Renderer writes classification results as text. It stands in for the
// original table and dashboard cards.
type Renderer struct {
	out    io.Writer
	logger *zap.Logger
}

// NewRenderer creates a new text renderer
func NewRenderer(out io.Writer, logger *zap.Logger) *Renderer {
	return &Renderer{
		out:    out,
		logger: logger,
	}
}

// RenderRun prints a result table followed by the dashboard counters.
func (r *Renderer) RenderRun(title string, records []core.ClassificationRecord, summary core.RunSummary) {
	fmt.Fprintf(r.out, "\n=== %s ===\n", title)
	if len(records) == 0 {
		fmt.Fprintf(r.out, "No entries\n")
		return
	}
	r.renderTable(records)
	r.renderSummary(summary)
}

func (r *Renderer) renderTable(records []core.ClassificationRecord) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tISSUES\tSCORE\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s %s\n",
			rec.Input, rec.Issues, rec.Score, rec.Status, rec.Status.Marker())
	}
	if err := w.Flush(); err != nil {
		r.logger.Error("Failed to render result table", zap.Error(err))
	}
}

func (r *Renderer) renderSummary(summary core.RunSummary) {
	fmt.Fprintf(r.out, "\n=== Dashboard ===\n")
	fmt.Fprintf(r.out, "%s SAFE: %d\n", core.MarkerSafe, summary.Safe)
	fmt.Fprintf(r.out, "%s POTENTIAL: %d\n", core.MarkerPotential, summary.Potential)
	fmt.Fprintf(r.out, "%s SUSPICIOUS: %d\n", core.MarkerSuspicious, summary.Suspicious)
	fmt.Fprintf(r.out, "Total: %d\n", summary.Total())
}
