package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498307936

// Design renders one icon artwork at any size.
type Design interface {
	Name() string
	Render(size int) *image.RGBA
}

// Ring is a circular stroke. The stroke runs inward from Radius.
type Ring struct {
	Radius float64
	Width  float64
	Color  color.NRGBA
}

// Stop is a colour at a distance from the icon centre.
type Stop struct {
	Radius float64
	Color  color.NRGBA
}

// newCanvas allocates the output image; non-positive sizes yield an empty one.
func newCanvas(size int) *image.RGBA {
	if size <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// strokeWidth scales a reference stroke, never going below one pixel.
func strokeWidth(width float64) float64 {
	return math.Max(1, width)
}

// addCircle appends a closed circle to the rasterizer path. Reversed circles
// wind the other way and cut holes in earlier ones.
func addCircle(z *vector.Rasterizer, cx, cy, r float64, reversed bool) {
	k := kappa * r
	pt := func(x, y float64) (float32, float32) { return float32(x), float32(y) }

	z.MoveTo(pt(cx+r, cy))
	if !reversed {
		cube(z, cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		cube(z, cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		cube(z, cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		cube(z, cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		cube(z, cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		cube(z, cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		cube(z, cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		cube(z, cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

func cube(z *vector.Rasterizer, bx, by, cx, cy, dx, dy float64) {
	z.CubeTo(float32(bx), float32(by), float32(cx), float32(cy), float32(dx), float32(dy))
}

// drawRing composites an anti-aliased ring onto dst.
func drawRing(dst *image.RGBA, center float64, ring Ring) {
	if ring.Radius <= 0 || ring.Width <= 0 || dst.Bounds().Empty() {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	addCircle(z, center, center, ring.Radius, false)
	if inner := ring.Radius - ring.Width; inner > 0 {
		addCircle(z, center, center, inner, true)
	}
	z.Draw(dst, b, image.NewUniform(ring.Color), image.Point{})
}

// drawDisc composites an anti-aliased filled circle onto dst.
func drawDisc(dst *image.RGBA, center, radius float64, c color.NRGBA) {
	drawRing(dst, center, Ring{Radius: radius, Width: radius, Color: c})
}

// radialLayer builds a layer whose colour at each pixel depends only on the
// distance from the centre. Pixels beyond the last stop are transparent, and
// the outer edge is anti-aliased over one pixel.
func radialLayer(size int, center float64, stops []Stop, feather bool) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, size, size))
	if len(stops) == 0 {
		return layer
	}
	outer := stops[len(stops)-1].Radius
	for y := 0; y < size; y++ {
		dy := float64(y) + 0.5 - center
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			d := math.Hypot(dx, dy)
			if d > outer+0.5 {
				continue
			}
			c := colorAt(stops, d)
			if feather {
				if cover := clamp01(outer - d + 0.5); cover < 1 {
					c.A = uint8(float64(c.A) * cover)
				}
			}
			layer.SetNRGBA(x, y, c)
		}
	}
	return layer
}

// colorAt interpolates between the stops bracketing distance d.
func colorAt(stops []Stop, d float64) color.NRGBA {
	if d <= stops[0].Radius {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if d <= hi.Radius {
			span := hi.Radius - lo.Radius
			if span <= 0 {
				return hi.Color
			}
			return Lerp(lo.Color, hi.Color, (d-lo.Radius)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// composite draws layer over dst.
func composite(dst *image.RGBA, layer image.Image) {
	xdraw.Draw(dst, dst.Bounds(), layer, image.Point{}, xdraw.Over)
}
