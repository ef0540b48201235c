package arkanoid

// Snapshot contains the complete round state as primitive values.
type Snapshot struct {
	Tick       uint64
	PaddleX    int
	PaddleDir  int
	BallX      int
	BallY      int
	BallVX     int
	BallVY     int
	Score      int
	Hits       int
	Multiplier int
	Phase      int
	Outcome    int

	// Remaining bricks, 3 ints each: X, Y, Tier
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return TakeSnapshot(g.state)
}

// TakeSnapshot flattens a State.
func TakeSnapshot(s State) Snapshot {
	brickData := make([]int, 0, len(s.Bricks)*3)
	for _, b := range s.Bricks {
		brickData = append(brickData, b.X, b.Y, int(b.Tier))
	}

	return Snapshot{
		Tick:       uint64(s.Tick), //#nosec G115 -- tick count is always positive
		PaddleX:    s.Paddle.X,
		PaddleDir:  s.Paddle.Dir,
		BallX:      s.Ball.X,
		BallY:      s.Ball.Y,
		BallVX:     s.Ball.VX,
		BallVY:     s.Ball.VY,
		Score:      s.Score,
		Hits:       s.Hits,
		Multiplier: s.Multiplier,
		Phase:      int(s.Phase),
		Outcome:    int(s.Outcome),
		BrickData:  brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.PaddleX, snap.PaddleDir,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.Score, snap.Hits, snap.Multiplier,
		snap.Phase, snap.Outcome,
		len(snap.BrickData),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
