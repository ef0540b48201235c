package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// Tier is the color class of a brick.
type Tier int

const (
	TierNone   Tier = iota
	TierYellow      // antennae
	TierRed         // eyes
	TierGray        // body
)

// Color returns the palette color used to draw the tier.
func (t Tier) Color() core.Color {
	switch t {
	case TierYellow:
		return core.ColorYellow
	case TierRed:
		return core.ColorRed
	case TierGray:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// InvaderPattern is the brick layout: a space invader, 16 rows by 11 columns.
// 0 = empty, 1 = yellow, 2 = red, 3 = gray.
var InvaderPattern = [16][11]Tier{
	{0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 3, 3, 3, 3, 3, 3, 3, 0, 0},
	{0, 0, 3, 2, 3, 3, 3, 2, 3, 0, 0},
	{0, 3, 3, 2, 3, 3, 3, 2, 3, 3, 0},
	{0, 3, 3, 3, 3, 3, 3, 3, 3, 3, 0},
	{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	{3, 0, 3, 3, 3, 3, 3, 3, 3, 0, 3},
	{3, 0, 3, 0, 0, 0, 0, 0, 3, 0, 3},
	{3, 0, 3, 0, 0, 0, 0, 0, 3, 0, 3},
	{0, 0, 0, 3, 3, 0, 3, 3, 0, 0, 0},
	{0, 0, 0, 3, 3, 0, 3, 3, 0, 0, 0},
}

// PatternColumns is the number of columns in InvaderPattern.
const PatternColumns = len(InvaderPattern[0])

// Brick is a destructible rectangle with a color tier.
type Brick struct {
	core.Rect
	Tier Tier
}

// HorizontalOffset returns the x of the first brick column, centering the
// pattern on the screen.
func HorizontalOffset(cfg config.Config) int {
	total := PatternColumns * (cfg.Bricks.Width + cfg.Bricks.Margin)
	return (cfg.Screen.Width - total) / 2
}

// GenerateBricks builds the full brick field from InvaderPattern.
// Bricks are ordered row by row, left to right; the result is freshly
// allocated on every call.
func GenerateBricks(cfg config.Config) []Brick {
	offset := HorizontalOffset(cfg)
	stepX := cfg.Bricks.Width + cfg.Bricks.Margin
	stepY := cfg.Bricks.Height + cfg.Bricks.Margin

	bricks := make([]Brick, 0, PatternBrickCount())
	for row, cells := range InvaderPattern {
		for col, tier := range cells {
			if tier == TierNone {
				continue
			}
			bricks = append(bricks, Brick{
				Rect: core.NewRect(
					offset+col*stepX,
					row*stepY+cfg.Bricks.TopOffset,
					cfg.Bricks.Width,
					cfg.Bricks.Height,
				),
				Tier: tier,
			})
		}
	}
	return bricks
}

// PatternBrickCount returns the number of non-empty cells in InvaderPattern.
func PatternBrickCount() int {
	n := 0
	for _, cells := range InvaderPattern {
		for _, tier := range cells {
			if tier != TierNone {
				n++
			}
		}
	}
	return n
}
