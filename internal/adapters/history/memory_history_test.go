package history

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/bnavalyal/suspicious-checker/internal/core"
)

func TestMemoryHistoryAppendOrder(t *testing.T) {
	store := NewMemoryHistory(zap.NewNop())
	ctx := context.Background()

	if err := store.Append(ctx, sampleRecords()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append(ctx, []core.ClassificationRecord{
		{Input: "verify@mail.xyz", Score: 5, Status: core.StatusSuspicious},
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("loaded %d records; want 3", len(got))
	}
	if got[2].Input != "verify@mail.xyz" {
		t.Errorf("records out of order: %v", got)
	}

	// LoadAll returns a copy; mutating it must not affect the store
	got[0].Input = "mutated"
	again, _ := store.LoadAll(ctx)
	if again[0].Input == "mutated" {
		t.Error("LoadAll result aliases internal storage")
	}
}
