package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
	ButtonChar = '░'
)

// RestartLabel is the text on the restart button.
const RestartLabel = "Repeat Game"

// Viewport maps world coordinates onto a terminal cell grid.
type Viewport struct {
	Cols, Rows     int // Cell grid size
	WorldW, WorldH int // Logical screen size
}

// NewViewport creates a viewport for a cols x rows cell grid.
func NewViewport(cols, rows int, cfg config.Config) Viewport {
	return Viewport{
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		WorldW: cfg.Screen.Width,
		WorldH: cfg.Screen.Height,
	}
}

// Rect converts a world rectangle to the cells it covers.
// Every non-empty rectangle covers at least one cell.
func (v Viewport) Rect(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*v.Cols, v.WorldW)
	x1 := ceilDiv(r.Right()*v.Cols, v.WorldW)
	y0 := floorDiv(r.Y*v.Rows, v.WorldH)
	y1 := ceilDiv(r.Bottom()*v.Rows, v.WorldH)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Row converts a world y-coordinate to a cell row.
func (v Viewport) Row(y int) int {
	return floorDiv(y*v.Rows, v.WorldH)
}

// World converts a cell to the world point at its center.
func (v Viewport) World(col, row int) core.Point {
	return core.Point{
		X: (2*col + 1) * v.WorldW / (2 * v.Cols),
		Y: (2*row + 1) * v.WorldH / (2 * v.Rows),
	}
}

// Render draws the current state into dst, scaled to the screen size.
// Playing rounds are drawn over dst's existing content so the platform can
// put a background underneath; the game-over screen replaces it.
func (g *Game) Render(dst *core.Screen) {
	RenderState(dst, g.state, g.cfg)
}

// RenderState draws s into dst.
func RenderState(dst *core.Screen, s State, cfg config.Config) {
	v := NewViewport(dst.Width(), dst.Height(), cfg)

	if s.Phase == PhaseGameOver {
		renderGameOver(dst, v, s, cfg)
		return
	}

	for _, b := range s.Bricks {
		dst.DrawRect(v.Rect(b.Rect), BrickChar, b.Tier.Color())
	}
	dst.DrawRect(v.Rect(s.Paddle.Rect), PaddleChar, core.ColorWhite)

	bx, by := s.Ball.Center()
	ball := v.Rect(core.NewRect(bx, by, 1, 1))
	dst.SetCell(ball.X, ball.Y, BallChar, core.ColorWhite)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)
	dst.DrawText(1, 1, fmt.Sprintf("Hits: %d", s.Hits), core.ColorWhite)
}

func renderGameOver(dst *core.Screen, v Viewport, s State, cfg config.Config) {
	dst.Fill(' ', core.ColorBlack)

	msg := GameOverMessage(s)
	dst.DrawTextCentered(v.Row(cfg.Screen.Height/2-50), msg, core.ColorWhite)

	button := v.Rect(RestartButton(cfg))
	dst.DrawRect(button, ButtonChar, core.ColorGreen)
	label := "[ " + RestartLabel + " ]"
	dst.DrawText(button.X+(button.W-len(label))/2, button.Y+button.H/2, label, core.ColorGreen)
}

// GameOverMessage returns the text shown on the game-over screen.
func GameOverMessage(s State) string {
	return fmt.Sprintf("Game Over! Final Score: %d, Hits: %d", s.Score, s.Hits)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
