// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
// The defaults reproduce the classic 600x800 invader layout.
type Config struct {
	Screen        ScreenConfig `yaml:"screen"`
	Bricks        BrickConfig  `yaml:"bricks"`
	Paddle        PaddleConfig `yaml:"paddle"`
	Ball          BallConfig   `yaml:"ball"`
	Scoring       ScoreConfig  `yaml:"scoring"`
	RestartButton ButtonConfig `yaml:"restart_button"`
	Assets        AssetsConfig `yaml:"assets"`
}

// ScreenConfig defines the logical playfield size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BrickConfig defines brick dimensions and field placement.
type BrickConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Margin    int `yaml:"margin"`     // Gap between neighbouring bricks
	TopOffset int `yaml:"top_offset"` // Y of the first brick row
}

// PaddleConfig defines the auto-moving paddle.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"`
	Speed        int `yaml:"speed"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"`
}

// ScoreConfig defines scoring.
type ScoreConfig struct {
	BrickPoints int `yaml:"brick_points"` // Points for a brick at multiplier 1
}

// ButtonConfig places the restart button relative to the screen center.
type ButtonConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

// AssetsConfig lists the static assets loaded at startup.
type AssetsConfig struct {
	Background string `yaml:"background"`
}

// PaddleY returns the y-coordinate of the paddle's top edge.
func (c Config) PaddleY() int {
	return c.Screen.Height - c.Paddle.BottomOffset
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name string
		val  int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"ball.size", c.Ball.Size},
		{"ball.speed", c.Ball.Speed},
		{"scoring.brick_points", c.Scoring.BrickPoints},
		{"restart_button.width", c.RestartButton.Width},
		{"restart_button.height", c.RestartButton.Height},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.val))
		}
	}

	if c.Bricks.Margin < 0 {
		errs = append(errs, fmt.Errorf("bricks.margin must not be negative, got %d", c.Bricks.Margin))
	}
	if c.Paddle.Width >= c.Screen.Width {
		errs = append(errs, fmt.Errorf("paddle.width %d must be less than screen.width %d", c.Paddle.Width, c.Screen.Width))
	}
	if c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("paddle.bottom_offset %d out of range", c.Paddle.BottomOffset))
	}
	if c.Assets.Background == "" {
		errs = append(errs, errors.New("assets.background must be set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
