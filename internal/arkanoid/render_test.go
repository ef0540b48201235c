package arkanoid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// A 60x80 grid gives ten world units per cell.
func testViewport() Viewport {
	return NewViewport(60, 80, testConfig())
}

func TestViewportRect(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name     string
		in       core.Rect
		expected core.Rect
	}{
		{"aligned", core.NewRect(100, 200, 40, 30), core.NewRect(10, 20, 4, 3)},
		{"unaligned", core.NewRect(69, 50, 40, 30), core.NewRect(6, 5, 5, 3)},
		{"tiny", core.NewRect(0, 0, 1, 1), core.NewRect(0, 0, 1, 1)},
		{"paddle", core.NewRect(100, 770, 350, 15), core.NewRect(10, 77, 35, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Rect(tt.in); got != tt.expected {
				t.Errorf("Rect(%+v) = %+v, expected %+v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestViewportWorld(t *testing.T) {
	v := testViewport()

	if got := v.World(0, 0); got != (core.Point{X: 5, Y: 5}) {
		t.Errorf("World(0, 0) = %+v, expected {5 5}", got)
	}
	if got := v.World(20, 45); !RestartButton(testConfig()).ContainsPoint(got) {
		t.Errorf("World(20, 45) = %+v, expected a point on the restart button", got)
	}
	if got := v.Row(799); got != 79 {
		t.Errorf("Row(799) = %d, expected 79", got)
	}
}

func TestNewViewportClampsSize(t *testing.T) {
	v := NewViewport(0, -3, testConfig())
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("viewport = %dx%d, expected 1x1", v.Cols, v.Rows)
	}
}

func TestRenderPlaying(t *testing.T) {
	s := playing(ballAt(300, 300, 5, -5), Brick{Rect: core.NewRect(100, 200, 40, 30), Tier: TierRed})
	s.Score = 70
	s.Hits = 6

	dst := core.NewScreen(60, 80)
	RenderState(dst, s, testConfig())

	if c := dst.GetCell(10, 20); c.Rune != BrickChar || c.Color != core.ColorRed {
		t.Errorf("brick cell = %+v, expected red brick", c)
	}
	if c := dst.GetCell(20, 77); c.Rune != PaddleChar || c.Color != core.ColorWhite {
		t.Errorf("paddle cell = %+v, expected white paddle", c)
	}
	if c := dst.GetCell(31, 31); c.Rune != BallChar {
		t.Errorf("ball cell = %+v, expected ball", c)
	}
	if !strings.Contains(dst.Row(0), "Score: 70") {
		t.Errorf("row 0 = %q, expected score", dst.Row(0))
	}
	if !strings.Contains(dst.Row(1), "Hits: 6") {
		t.Errorf("row 1 = %q, expected hits", dst.Row(1))
	}
}

func TestRenderPlayingKeepsBackground(t *testing.T) {
	dst := core.NewScreen(60, 80)
	dst.Fill('.', core.ColorDim)

	RenderState(dst, playing(ballAt(300, 300, 5, -5)), testConfig())

	if c := dst.GetCell(59, 60); c.Rune != '.' || c.Color != core.ColorDim {
		t.Errorf("background cell = %+v, expected it untouched", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	s := playing(ballAt(300, 300, 5, -5))
	s.Phase = PhaseGameOver
	s.Outcome = OutcomeLost
	s.Score = 30
	s.Hits = 4

	dst := core.NewScreen(60, 80)
	dst.Fill('.', core.ColorDim)
	RenderState(dst, s, testConfig())

	if c := dst.GetCell(0, 0); c.Rune != ' ' || c.Color != core.ColorBlack {
		t.Errorf("corner cell = %+v, expected black fill", c)
	}

	msg := "Game Over! Final Score: 30, Hits: 4"
	if GameOverMessage(s) != msg {
		t.Errorf("GameOverMessage() = %q, expected %q", GameOverMessage(s), msg)
	}
	if !strings.Contains(dst.Row(35), msg) {
		t.Errorf("row 35 = %q, expected the game-over message", dst.Row(35))
	}

	if c := dst.GetCell(20, 45); c.Rune != ButtonChar || c.Color != core.ColorGreen {
		t.Errorf("button cell = %+v, expected green button", c)
	}
	if !strings.Contains(dst.Row(47), "[ "+RestartLabel+" ]") {
		t.Errorf("row 47 = %q, expected the button label", dst.Row(47))
	}
}
