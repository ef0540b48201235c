package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
)

func TestResultRows(t *testing.T) {
	rows := ResultRows([]arkanoid.SimResult{
		{Seed: 42, Ticks: 900, Outcome: arkanoid.OutcomeLost, Score: 150, Hits: 12, PaddleHits: 7, BricksDestroyed: 5, BricksRemaining: 93},
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	expected := []string{"42", "900", "lost", "150", "12", "7", "5", "93"}
	for i, want := range expected {
		if rows[0][i] != want {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], want)
		}
	}
	if len(rows[0]) != len(resultColumns) {
		t.Errorf("row has %d cells, table has %d columns", len(rows[0]), len(resultColumns))
	}
}

func TestRenderResults(t *testing.T) {
	out := RenderResults([]arkanoid.SimResult{
		{Seed: 1, Outcome: arkanoid.OutcomeWon, Score: 48510},
		{Seed: 2, Outcome: arkanoid.OutcomeLost, Score: 70},
	})

	for _, want := range []string{"Seed", "Outcome", "won", "lost", "2 runs, 1 won, best score 48510"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := summarize(nil); got != "no runs" {
		t.Errorf("summarize(nil) = %q", got)
	}
}
