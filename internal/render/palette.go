package render

import "image/color"

// Breathing circles palette.
var (
	CalmBlue      = color.NRGBA{R: 89, G: 115, B: 217, A: 255}  // #5973D9
	SerenePurple  = color.NRGBA{R: 128, G: 89, B: 217, A: 255}  // #8059D9
	SoftPurple    = color.NRGBA{R: 115, G: 89, B: 166, A: 255}  // #7359A6
	DeepIndigo    = color.NRGBA{R: 46, G: 38, B: 89, A: 255}    // #2E2659
	LighterIndigo = color.NRGBA{R: 64, G: 56, B: 107, A: 255}   // #40386B
	Mist          = color.NRGBA{R: 255, G: 255, B: 255, A: 255} // core highlight
	Clear         = color.NRGBA{}
)

// Ripples palette.
var (
	RippleSky  = color.NRGBA{R: 100, G: 150, B: 220, A: 255}
	RippleDusk = color.NRGBA{R: 180, G: 80, B: 200, A: 255}
)

// WithAlpha returns c with its opacity replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Lerp interpolates every channel independently as start + (end-start)*t.
// t is clamped to [0, 1]; fractional results truncate toward zero.
func Lerp(start, end color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: lerpChannel(start.R, end.R, t),
		G: lerpChannel(start.G, end.G, t),
		B: lerpChannel(start.B, end.B, t),
		A: lerpChannel(start.A, end.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
