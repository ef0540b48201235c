// Package assets loads the background picture shared by the platforms.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	"golang.org/x/image/draw"
)

// LoadBackground reads the image at path and scales it to w x h pixels.
func LoadBackground(path string, w, h int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}

	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: invalid background size %dx%d", w, h)
	}
	return Scale(img, w, h), nil
}

// Scale resamples src to exactly w x h pixels.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
