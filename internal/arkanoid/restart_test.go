package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestRestartButton(t *testing.T) {
	if got := RestartButton(testConfig()); got != core.NewRect(200, 450, 200, 50) {
		t.Errorf("RestartButton() = %+v, expected {200 450 200 50}", got)
	}
}

func gameOverState(t *testing.T) State {
	t.Helper()
	s := playing(ballAt(500, 778, 0, 5), farBrick)
	s.Score = 120
	s.Hits = 9
	s.Multiplier = 3
	s.Paddle.Dir = -1
	s, _ = Step(s, testConfig())
	if !s.GameOver() {
		t.Fatal("setup: expected game over")
	}
	return s
}

func TestHandleClickInsideButton(t *testing.T) {
	cfg := testConfig()

	for _, p := range []core.Point{{X: 200, Y: 450}, {X: 300, Y: 475}, {X: 399, Y: 499}} {
		over := gameOverState(t)
		next, restarted := HandleClick(over, p, cfg, newSeqRNG(42, 0))

		if !restarted {
			t.Fatalf("click at %+v should restart", p)
		}
		if next.Phase != PhasePlaying || next.Outcome != OutcomeNone {
			t.Errorf("phase = %v, outcome = %v after restart", next.Phase, next.Outcome)
		}
		if next.Score != 0 || next.Hits != 0 || next.Multiplier != 1 {
			t.Errorf("score = %d, hits = %d, multiplier = %d after restart", next.Score, next.Hits, next.Multiplier)
		}
		if len(next.Bricks) != PatternBrickCount() {
			t.Errorf("bricks = %d, expected full field", len(next.Bricks))
		}
		if next.Paddle.X != 42 || next.Paddle.Dir != 1 {
			t.Errorf("paddle x=%d dir=%d, expected x=42 dir=1", next.Paddle.X, next.Paddle.Dir)
		}
		if next.Ball.Y != 750 || next.Ball.VX != -5 || next.Ball.VY != -5 {
			t.Errorf("ball not reset: %+v", next.Ball)
		}
	}
}

func TestHandleClickOutsideButton(t *testing.T) {
	cfg := testConfig()
	over := gameOverState(t)

	for _, p := range []core.Point{{X: 199, Y: 450}, {X: 400, Y: 450}, {X: 300, Y: 449}, {X: 300, Y: 500}, {X: 0, Y: 0}} {
		next, restarted := HandleClick(over, p, cfg, newSeqRNG(42, 0))
		if restarted {
			t.Errorf("click at %+v should not restart", p)
		}
		if next.Phase != PhaseGameOver || next.Score != over.Score || next.Hits != over.Hits {
			t.Errorf("click at %+v changed state", p)
		}
	}
}

func TestHandleClickWhilePlaying(t *testing.T) {
	s := playing(ballAt(300, 300, 5, -5))
	s.Score = 50

	next, restarted := HandleClick(s, core.Point{X: 300, Y: 475}, testConfig(), newSeqRNG(1))
	if restarted || next.Score != 50 {
		t.Error("clicks while playing should be ignored")
	}
}
