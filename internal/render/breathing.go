package render

import (
	"image"
	"image/color"
	"math"
)

// BreathingReference is the edge length the breathing circles are authored at.
const BreathingReference = 1024.0

// BreathingLayout is the breathing circles artwork scaled to one size.
type BreathingLayout struct {
	Size   int
	Scale  float64
	Center float64
	// Glow fades from the first stop to the second.
	Glow       []Stop
	Rings      []Ring
	Core       []Stop
	CoreStroke Ring
}

// BreathingCircles is the current app icon: concentric rings over an indigo
// gradient with a glowing core.
type BreathingCircles struct{}

// Name implements Design.
func (BreathingCircles) Name() string { return "breathing" }

// Layout scales every shape parameter for size.
func (BreathingCircles) Layout(size int) BreathingLayout {
	s := float64(size) / BreathingReference
	ring := func(radius, width float64, c color.NRGBA, a uint8) Ring {
		return Ring{Radius: radius * s, Width: strokeWidth(width * s), Color: WithAlpha(c, a)}
	}

	coreWidth := math.Max(1, math.Trunc(2*s))
	return BreathingLayout{
		Size:   size,
		Scale:  s,
		Center: float64(size) / 2,
		Glow: []Stop{
			{Radius: 100 * s, Color: WithAlpha(SerenePurple, 76)},
			{Radius: 300 * s, Color: Clear},
		},
		// Outermost first; inner rings are more opaque.
		Rings: []Ring{
			ring(400, 3, SoftPurple, 102),
			ring(330, 4, SoftPurple, 128),
			ring(260, 5, CalmBlue, 153),
			ring(190, 6, CalmBlue, 179),
			ring(120, 7, CalmBlue, 204),
		},
		Core: []Stop{
			{Radius: 5 * s, Color: WithAlpha(Mist, 230)},
			{Radius: 25 * s, Color: WithAlpha(CalmBlue, 204)},
			{Radius: 40 * s, Color: WithAlpha(SerenePurple, 179)},
		},
		CoreStroke: Ring{
			Radius: math.Max(math.Trunc(40*s), coreWidth),
			Width:  coreWidth,
			Color:  CalmBlue,
		},
	}
}

// Render implements Design.
func (d BreathingCircles) Render(size int) *image.RGBA {
	img := newCanvas(size)
	if size <= 0 {
		return img
	}
	l := d.Layout(size)

	for y := 0; y < size; y++ {
		c := Lerp(LighterIndigo, DeepIndigo, float64(y)/float64(size))
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < size; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 0xff
		}
	}

	composite(img, radialLayer(size, l.Center, l.Glow, false))
	for _, r := range l.Rings {
		drawRing(img, l.Center, r)
	}
	composite(img, radialLayer(size, l.Center, l.Core, true))
	drawRing(img, l.Center, l.CoreStroke)
	return img
}
