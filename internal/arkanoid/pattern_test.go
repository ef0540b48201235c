package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestPatternBrickCount(t *testing.T) {
	if got := PatternBrickCount(); got != 98 {
		t.Errorf("PatternBrickCount() = %d, expected 98", got)
	}
	if got := len(GenerateBricks(testConfig())); got != PatternBrickCount() {
		t.Errorf("GenerateBricks() returned %d bricks, expected %d", got, PatternBrickCount())
	}
}

func TestHorizontalOffset(t *testing.T) {
	// (600 - 11*42) / 2
	if got := HorizontalOffset(testConfig()); got != 69 {
		t.Errorf("HorizontalOffset() = %d, expected 69", got)
	}
}

func TestGenerateBricksLayout(t *testing.T) {
	bricks := GenerateBricks(testConfig())

	first := bricks[0]
	if first.Rect != core.NewRect(153, 50, 40, 30) || first.Tier != TierYellow {
		t.Errorf("first brick = %+v, expected yellow at (153, 50)", first)
	}

	last := bricks[len(bricks)-1]
	if last.Rect != core.NewRect(363, 530, 40, 30) || last.Tier != TierGray {
		t.Errorf("last brick = %+v, expected gray at (363, 530)", last)
	}

	// Row-major order: y never decreases, x increases within a row.
	for i := 1; i < len(bricks); i++ {
		prev, cur := bricks[i-1], bricks[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X <= prev.X) {
			t.Fatalf("bricks %d and %d out of order: %+v then %+v", i-1, i, prev, cur)
		}
	}

	// Bricks never overlap each other.
	for i := range bricks {
		for j := i + 1; j < len(bricks); j++ {
			if bricks[i].Intersects(bricks[j].Rect) {
				t.Fatalf("bricks %d and %d overlap", i, j)
			}
		}
	}
}

func TestGenerateBricksTiers(t *testing.T) {
	counts := map[Tier]int{}
	for _, b := range GenerateBricks(testConfig()) {
		counts[b.Tier]++
	}
	if counts[TierYellow] != 8 || counts[TierRed] != 4 || counts[TierGray] != 86 {
		t.Errorf("tier counts = %v, expected 8 yellow, 4 red, 86 gray", counts)
	}
}

func TestGenerateBricksIndependent(t *testing.T) {
	cfg := testConfig()
	a := GenerateBricks(cfg)
	a[0].X = -1000
	a = a[:1]

	b := GenerateBricks(cfg)
	if b[0].X != 153 || len(b) != 98 {
		t.Error("GenerateBricks should return a fresh field on every call")
	}
}

func TestTierColor(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected core.Color
	}{
		{TierYellow, core.ColorYellow},
		{TierRed, core.ColorRed},
		{TierGray, core.ColorGray},
		{TierNone, core.ColorDefault},
	}
	for _, tc := range tests {
		if got := tc.tier.Color(); got != tc.expected {
			t.Errorf("Tier(%d).Color() = %v, expected %v", tc.tier, got, tc.expected)
		}
	}
}
