package arkanoid

import "github.com/vovakirdan/arkanoid/internal/config"

// SimResult summarizes a headless run.
type SimResult struct {
	Seed            int64
	Ticks           int
	Outcome         Outcome
	Score           int
	Hits            int
	PaddleHits      int
	BricksDestroyed int
	BricksRemaining int
	Hash            uint64
}

// Simulate plays one round without rendering or input, seeded with seed,
// for at most maxSteps frames. The round may still be running when the
// step budget is exhausted; Outcome is then OutcomeNone.
func Simulate(cfg config.Config, seed int64, maxSteps int) SimResult {
	s := NewState(cfg, NewSimpleRNG(seed))
	for range maxSteps {
		if s.GameOver() {
			break
		}
		s, _ = Step(s, cfg)
	}

	snap := TakeSnapshot(s)
	return SimResult{
		Seed:            seed,
		Ticks:           s.Tick,
		Outcome:         s.Outcome,
		Score:           s.Score,
		Hits:            s.Hits,
		PaddleHits:      s.PaddleHits,
		BricksDestroyed: s.BricksDestroyed,
		BricksRemaining: len(s.Bricks),
		Hash:            snap.Hash(),
	}
}
