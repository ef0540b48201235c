package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/arkanoid.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  600,
			Height: 800,
		},
		Bricks: BrickConfig{
			Width:     40,
			Height:    30,
			Margin:    2,
			TopOffset: 50,
		},
		Paddle: PaddleConfig{
			Width:        350,
			Height:       15,
			BottomOffset: 30,
			Speed:        5,
		},
		Ball: BallConfig{
			Size:  20,
			Speed: 5,
		},
		Scoring: ScoreConfig{
			BrickPoints: 10,
		},
		RestartButton: ButtonConfig{
			Width:   200,
			Height:  50,
			OffsetX: -100,
			OffsetY: 50,
		},
		Assets: AssetsConfig{
			Background: "img/background.png",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
