package game

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Palette holds the bright toy colours shapes and particles are born with.
var Palette = struct {
	Red    RGB
	Orange RGB
	Yellow RGB
	Green  RGB
	Teal   RGB
	Blue   RGB
	Purple RGB
	Pink   RGB
	White  RGB
}{
	Red:    RGB{R: 244, G: 67, B: 54},
	Orange: RGB{R: 255, G: 152, B: 0},
	Yellow: RGB{R: 255, G: 221, B: 64},
	Green:  RGB{R: 76, G: 200, B: 80},
	Teal:   RGB{R: 0, G: 200, B: 212},
	Blue:   RGB{R: 66, G: 133, B: 244},
	Purple: RGB{R: 156, G: 89, B: 182},
	Pink:   RGB{R: 240, G: 98, B: 146},
	White:  RGB{R: 250, G: 250, B: 250},
}

var brightColors = []RGB{
	Palette.Red, Palette.Orange, Palette.Yellow, Palette.Green,
	Palette.Teal, Palette.Blue, Palette.Purple, Palette.Pink,
}

func randomBright(r *Rand) RGB {
	return brightColors[r.Intn(len(brightColors))]
}

// hueRGB converts a hue angle (degrees) to a fully saturated colour.
// Drives the rainbow effect's age-based hue cycling.
func hueRGB(hue float64) RGB {
	c := colorful.Hsv(math.Mod(hue, 360), 1.0, 1.0)
	return RGB{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255)}
}
