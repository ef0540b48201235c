package assets

import (
	"image"
	"image/color"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// ShadeRamp lists the glyphs used for background shading, darkest first.
var ShadeRamp = []rune(" .:░▒▓")

// Shade paints img onto dst as dim glyphs, one sample per cell taken from
// the center of the cell's region.
func Shade(dst *core.Screen, img image.Image) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	outW, outH := dst.Width(), dst.Height()
	if srcW == 0 || srcH == 0 || outW == 0 || outH == 0 {
		return
	}

	for y := range outH {
		for x := range outW {
			sx := bounds.Min.X + (x*srcW+srcW/2)/outW
			sy := bounds.Min.Y + (y*srcH+srcH/2)/outH
			dst.SetCell(x, y, ShadeGlyph(img.At(sx, sy)), core.ColorDim)
		}
	}
}

// ShadeGlyph returns the ramp glyph for a pixel's luminance.
func ShadeGlyph(c color.Color) rune {
	lum := Luminance(c)
	return ShadeRamp[int(lum)*len(ShadeRamp)/256]
}

// Luminance returns the perceived brightness of c in [0, 255].
func Luminance(c color.Color) uint8 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0
	}
	// Un-premultiply, then weight as in ITU-R BT.601.
	r = r * 0xff / a
	g = g * 0xff / a
	b = b * 0xff / a
	return uint8((299*r + 587*g + 114*b) / 1000) //#nosec G115 -- weighted average of 8-bit channels
}
