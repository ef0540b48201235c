package arkanoid

import "github.com/vovakirdan/arkanoid/internal/config"

// StepResult describes what happened during one physics step.
type StepResult struct {
	PaddleContact bool    // Ball touched the paddle this frame
	Destroyed     []Brick // Bricks removed this frame, in list order
	Points        int     // Score awarded this frame
	Ended         bool    // The round ended this frame
}

// Step advances a playing round by one frame and returns the next state.
// A round that is already over is returned unchanged.
//
// Order within a frame: move the ball, reflect off the side and top walls,
// paddle contact, brick contacts, bottom-edge loss check, paddle movement,
// cleared-field win check.
func Step(s State, cfg config.Config) (State, StepResult) {
	var res StepResult
	if s.Phase != PhasePlaying {
		return s, res
	}

	s.Ball.Move()

	// Walls. Velocity flips without clamping the position.
	if s.Ball.X <= 0 || s.Ball.Right() >= cfg.Screen.Width {
		s.Ball.VX = -s.Ball.VX
	}
	if s.Ball.Y <= 0 {
		s.Ball.VY = -s.Ball.VY
	}

	// Paddle: always send the ball up at full speed, regardless of the
	// incoming direction or the contact point.
	if s.Ball.Intersects(s.Paddle.Rect) {
		s.Ball.VY = -cfg.Ball.Speed
		s.Hits++
		s.PaddleHits++
		s.Multiplier = 1
		res.PaddleContact = true
	}

	// Bricks. Every overlapping brick counts and flips VY on its own, so two
	// bricks hit in the same frame cancel each other's flip.
	survivors := make([]Brick, 0, len(s.Bricks))
	for _, brick := range s.Bricks {
		if !s.Ball.Intersects(brick.Rect) {
			survivors = append(survivors, brick)
			continue
		}
		s.Ball.VY = -s.Ball.VY
		points := cfg.Scoring.BrickPoints
		if s.Multiplier > 1 {
			points *= s.Multiplier
		}
		s.Score += points
		s.Hits++
		s.BricksDestroyed++
		s.Multiplier++
		res.Points += points
		res.Destroyed = append(res.Destroyed, brick)
	}
	s.Bricks = survivors

	if s.Ball.Bottom() >= cfg.Screen.Height {
		s.end(OutcomeLost)
	}

	s.Paddle.Advance(cfg.Paddle.Speed, cfg.Screen.Width)

	if len(s.Bricks) == 0 {
		s.end(OutcomeWon)
	}

	s.Tick++
	res.Ended = s.Phase == PhaseGameOver
	return s, res
}

// end moves the round to game over. A later call in the same frame
// overrides the outcome.
func (s *State) end(o Outcome) {
	s.Phase = PhaseGameOver
	s.Outcome = o
}
