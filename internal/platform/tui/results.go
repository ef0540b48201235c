package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/arkanoid"
)

// resultColumns are the columns of the simulation results table.
var resultColumns = []table.Column{
	{Title: "Seed", Width: 20},
	{Title: "Ticks", Width: 8},
	{Title: "Outcome", Width: 8},
	{Title: "Score", Width: 8},
	{Title: "Hits", Width: 6},
	{Title: "Paddle", Width: 7},
	{Title: "Bricks", Width: 7},
	{Title: "Left", Width: 5},
}

// ResultRows converts simulation results to table rows.
func ResultRows(results []arkanoid.SimResult) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Ticks),
			r.Outcome.String(),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Hits),
			fmt.Sprintf("%d", r.PaddleHits),
			fmt.Sprintf("%d", r.BricksDestroyed),
			fmt.Sprintf("%d", r.BricksRemaining),
		}
	}
	return rows
}

// RenderResults renders simulation results as a bordered table with a
// summary line, for printing to stdout.
func RenderResults(results []arkanoid.SimResult) string {
	t := table.New(
		table.WithColumns(resultColumns),
		table.WithRows(ResultRows(results)),
		table.WithFocused(false),
		table.WithHeight(len(results)+3), // Header, its border and one line per run
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(boxStyle.Render(t.View()))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(summarize(results)))
	b.WriteString("\n")
	return b.String()
}

func summarize(results []arkanoid.SimResult) string {
	if len(results) == 0 {
		return "no runs"
	}
	won, best := 0, 0
	for _, r := range results {
		if r.Outcome == arkanoid.OutcomeWon {
			won++
		}
		best = max(best, r.Score)
	}
	return fmt.Sprintf("%d runs, %d won, best score %d", len(results), won, best)
}
