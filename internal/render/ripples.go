package render

import (
	"image"
	"math"
)

const (
	rippleCount     = 5
	rippleSpan      = 0.4
	rippleDotRadius = 0.08
)

// RipplesLayout is the ripples artwork scaled to one size.
type RipplesLayout struct {
	Size      int
	Center    float64
	Rings     []Ring
	DotRadius float64
}

// Ripples is the first ZenFlow icon: white breathing waves over a blue to
// purple radial gradient.
type Ripples struct{}

// Name implements Design.
func (Ripples) Name() string { return "ripples" }

// Layout scales every shape parameter for size.
func (Ripples) Layout(size int) RipplesLayout {
	maxRadius := float64(size) * rippleSpan
	width := strokeWidth(float64(size / 100))

	rings := make([]Ring, 0, rippleCount)
	for i := 0; i < rippleCount; i++ {
		opacity := uint8(255 * (1 - float64(i)/rippleCount) * 0.5)
		rings = append(rings, Ring{
			Radius: maxRadius * float64(i+1) / rippleCount,
			Width:  width,
			Color:  WithAlpha(Mist, opacity),
		})
	}
	return RipplesLayout{
		Size:      size,
		Center:    float64(size) / 2,
		Rings:     rings,
		DotRadius: float64(size) * rippleDotRadius,
	}
}

// Render implements Design.
func (d Ripples) Render(size int) *image.RGBA {
	img := newCanvas(size)
	if size <= 0 {
		return img
	}
	l := d.Layout(size)

	// Normalised against the distance to the farthest corner.
	farthest := math.Hypot(l.Center, l.Center)
	for y := 0; y < size; y++ {
		dy := float64(y) + 0.5 - l.Center
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - l.Center
			c := Lerp(RippleSky, RippleDusk, math.Hypot(dx, dy)/farthest)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}

	for _, r := range l.Rings {
		drawRing(img, l.Center, r)
	}
	drawDisc(img, l.Center, l.DotRadius, WithAlpha(Mist, 230))
	return img
}
