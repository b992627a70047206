package core

import (
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		score int
		want  Status
	}{
		{0, StatusSafe},
		{1, StatusPotential},
		{2, StatusPotential},
		{4, StatusPotential},
		{5, StatusSuspicious},
		{7, StatusSuspicious},
		{10, StatusSuspicious},
	}

	for _, c := range cases {
		if got := Classify(c.score); got != c.want {
			t.Errorf("Classify(%d) = %s; want %s", c.score, got, c.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		cell string
		want Status
	}{
		// Canonical tokens
		{"SAFE", StatusSafe},
		{"POTENTIAL", StatusPotential},
		{"SUSPICIOUS", StatusSuspicious},
		// Legacy rows written with display markers
		{"SUSPICIOUS ❌", StatusSuspicious},
		{"POTENTIAL ⚠️", StatusPotential},
		{"SAFE ✅", StatusSafe},
		{"❌", StatusSuspicious},
		{"⚠", StatusPotential},
		// Anything unrecognized falls back to safe
		{"", StatusSafe},
		{"whatever", StatusSafe},
	}

	for _, c := range cases {
		if got := ParseStatus(c.cell); got != c.want {
			t.Errorf("ParseStatus(%q) = %s; want %s", c.cell, got, c.want)
		}
	}
}

func TestRunSummaryAdd(t *testing.T) {
	var s RunSummary
	for _, status := range []Status{StatusSafe, StatusSafe, StatusPotential, StatusSuspicious} {
		s.Add(status)
	}
	if s.Safe != 2 || s.Potential != 1 || s.Suspicious != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.Total() != 4 {
		t.Errorf("Total() = %d; want 4", s.Total())
	}
}
