package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// RestartButton returns the rectangle of the game-over screen's restart
// button, placed relative to the screen center.
func RestartButton(cfg config.Config) core.Rect {
	return core.NewRect(
		cfg.Screen.Width/2+cfg.RestartButton.OffsetX,
		cfg.Screen.Height/2+cfg.RestartButton.OffsetY,
		cfg.RestartButton.Width,
		cfg.RestartButton.Height,
	)
}

// HandleClick applies a pointer press at p.
// Only a press inside the restart button while the round is over starts a
// new round; anything else leaves the state untouched.
func HandleClick(s State, p core.Point, cfg config.Config, rng RandomSource) (State, bool) {
	if s.Phase != PhaseGameOver {
		return s, false
	}
	if !RestartButton(cfg).ContainsPoint(p) {
		return s, false
	}
	return NewState(cfg, rng), true
}
