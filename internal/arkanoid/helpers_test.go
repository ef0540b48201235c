package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// seqRNG returns its values in order, reduced modulo n, and then repeats.
type seqRNG struct {
	values []int
	i      int
}

func newSeqRNG(values ...int) *seqRNG {
	return &seqRNG{values: values}
}

func (r *seqRNG) Intn(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

// farBrick sits in the top-left corner, away from every test trajectory,
// so a round does not end by clearing the field.
var farBrick = Brick{Rect: core.NewRect(0, 0, 1, 1), Tier: TierGray}

func testConfig() config.Config {
	return config.DefaultConfig()
}

// playing builds a running round with the paddle parked at x=100.
func playing(ball Ball, bricks ...Brick) State {
	if len(bricks) == 0 {
		bricks = []Brick{farBrick}
	}
	return State{
		Paddle:     Paddle{Rect: core.NewRect(100, 770, 350, 15), Dir: 1},
		Ball:       ball,
		Bricks:     bricks,
		Multiplier: 1,
		Phase:      PhasePlaying,
	}
}

func ballAt(x, y, vx, vy int) Ball {
	return Ball{Rect: core.NewRect(x, y, 20, 20), VX: vx, VY: vy}
}
