// Package arkanoid implements the invader Breakout game: brick field
// generation, the per-frame physics step and the game-over/restart state
// machine. It has no rendering or platform dependencies beyond the terminal
// cell buffer in core.
package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Phase is the state of the game-over/restart state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Outcome records how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Round still running
	OutcomeWon                 // Brick field cleared
	OutcomeLost                // Ball reached the bottom edge
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Paddle is the auto-moving paddle.
type Paddle struct {
	core.Rect
	Dir int // +1 right, -1 left
}

// Advance moves the paddle one step and flips its direction once an edge
// reaches or passes the screen bounds. The paddle is not clamped, so it may
// overshoot an edge by one step.
func (p *Paddle) Advance(speed, screenW int) {
	p.X += speed * p.Dir
	if p.X <= 0 || p.Right() >= screenW {
		p.Dir = -p.Dir
	}
}

// Ball is the ball with an integer velocity in pixels per tick.
type Ball struct {
	core.Rect
	VX, VY int
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// State is the complete state of one round.
// Step takes a State and returns the next one; the value is never shared
// with the platforms' rendering code.
type State struct {
	Paddle Paddle
	Ball   Ball
	Bricks []Brick

	Score      int
	Hits       int // Paddle and brick contacts
	Multiplier int // Consecutive brick hits since the last paddle contact, plus one

	PaddleHits      int
	BricksDestroyed int
	Tick            int // Physics steps since the round started

	Phase   Phase
	Outcome Outcome
}

// NewState sets up a fresh round: a randomly placed paddle moving right, the
// ball resting centered on it and launched up with a random horizontal
// direction, and the full brick field.
func NewState(cfg config.Config, rng RandomSource) State {
	paddleX := rng.Intn(cfg.Screen.Width - cfg.Paddle.Width + 1)
	paddle := Paddle{
		Rect: core.NewRect(paddleX, cfg.PaddleY(), cfg.Paddle.Width, cfg.Paddle.Height),
		Dir:  1,
	}

	vx := cfg.Ball.Speed
	if rng.Intn(2) == 0 {
		vx = -vx
	}
	ball := Ball{
		Rect: core.NewRect(
			paddle.CenterX()-cfg.Ball.Size/2,
			paddle.Y-cfg.Ball.Size,
			cfg.Ball.Size,
			cfg.Ball.Size,
		),
		VX: vx,
		VY: -cfg.Ball.Speed,
	}

	return State{
		Paddle:     paddle,
		Ball:       ball,
		Bricks:     GenerateBricks(cfg),
		Multiplier: 1,
		Phase:      PhasePlaying,
	}
}

// GameOver reports whether the round has ended.
func (s State) GameOver() bool {
	return s.Phase == PhaseGameOver
}
