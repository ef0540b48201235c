package arkanoid

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Game drives rounds for a platform: it owns the current State, applies the
// frame's input and runs the physics step.
type Game struct {
	cfg    config.Config
	rng    RandomSource
	logger *log.Logger
	state  State
}

// New creates a game and sets up the first round.
// A nil logger discards all output.
func New(cfg config.Config, rng RandomSource, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}
	g.state = NewState(cfg, rng)
	g.logger.Info("round started",
		"paddle_x", g.state.Paddle.X,
		"ball_vx", g.state.Ball.VX,
		"ball_vy", g.state.Ball.VY,
		"bricks", len(g.state.Bricks),
	)
	return g
}

// State returns the current round state.
func (g *Game) State() State {
	return g.state
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Step processes one frame: pointer presses first (they may restart a
// finished round), then one physics step if the round is playing.
func (g *Game) Step(in core.InputFrame) StepResult {
	for _, p := range in.Clicks {
		g.click(p)
	}

	next, res := Step(g.state, g.cfg)
	g.state = next

	if res.Ended {
		switch g.state.Outcome {
		case OutcomeWon:
			g.logger.Info("you win!", "score", g.state.Score, "hits", g.state.Hits, "ticks", g.state.Tick)
		case OutcomeLost:
			g.logger.Info("ball lost", "score", g.state.Score, "hits", g.state.Hits,
				"bricks_left", len(g.state.Bricks), "ticks", g.state.Tick)
		}
	}
	return res
}

func (g *Game) click(p core.Point) {
	if g.state.Phase != PhaseGameOver {
		return
	}
	g.logger.Debug("mouse clicked", "x", p.X, "y", p.Y)

	next, restarted := HandleClick(g.state, p, g.cfg, g.rng)
	if !restarted {
		return
	}
	g.state = next
	g.logger.Info("restart button clicked")
	g.logger.Info("round restarted",
		"paddle_x", g.state.Paddle.X,
		"ball_vx", g.state.Ball.VX,
		"ball_vy", g.state.Ball.VY,
	)
}
