package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type point struct{ x, y float64 }

// painter accumulates closed paths in a rasterizer and composites them
// onto dst with a solid color. Subpaths wound in opposite directions
// cancel, which is how rings and arcs get their holes.
type painter struct {
	dst   *image.NRGBA
	z     *vector.Rasterizer
	dirty bool
}

func newPainter(dst *image.NRGBA) *painter {
	b := dst.Bounds()
	return &painter{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// paint draws the pending paths in c and clears the rasterizer.
func (p *painter) paint(c color.NRGBA) {
	if !p.dirty {
		return
	}
	b := p.dst.Bounds()
	p.z.DrawOp = draw.Over
	p.z.Draw(p.dst, b, image.NewUniform(c), image.Point{})
	p.z.Reset(b.Dx(), b.Dy())
	p.dirty = false
}

func (p *painter) polygon(pts []point) {
	if len(pts) < 3 {
		return
	}
	p.z.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, q := range pts[1:] {
		p.z.LineTo(float32(q.x), float32(q.y))
	}
	p.z.ClosePath()
	p.dirty = true
}

func (p *painter) roundRect(rr RoundRect) {
	r := rr.Bounds
	if r.Empty() {
		return
	}
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)
	rad := math.Min(float64(rr.Radius), math.Min(x1-x0, y1-y0)/2)
	if rad <= 0 {
		p.polygon([]point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
		return
	}
	var pts []point
	pts = arcPoints(pts, x1-rad, y0+rad, rad, rad, -math.Pi/2, 0)
	pts = arcPoints(pts, x1-rad, y1-rad, rad, rad, 0, math.Pi/2)
	pts = arcPoints(pts, x0+rad, y1-rad, rad, rad, math.Pi/2, math.Pi)
	pts = arcPoints(pts, x0+rad, y0+rad, rad, rad, math.Pi, 3*math.Pi/2)
	p.polygon(pts)
}

func (p *painter) ellipse(r image.Rectangle) {
	if r.Empty() {
		return
	}
	cx, cy, rx, ry := ellipseOf(r)
	p.polygon(arcPoints(nil, cx, cy, rx, ry, 0, 2*math.Pi))
}

// ring strokes the outline of the ellipse inscribed in r, growing inward.
func (p *painter) ring(rg Ring) {
	r := rg.Bounds
	if r.Empty() || rg.Width <= 0 {
		return
	}
	cx, cy, rx, ry := ellipseOf(r)
	w := float64(rg.Width)
	p.polygon(arcPoints(nil, cx, cy, rx, ry, 0, 2*math.Pi))
	if w < rx && w < ry {
		p.polygon(arcPoints(nil, cx, cy, rx-w, ry-w, 2*math.Pi, 0))
	}
}

// arc strokes the part of the ellipse inscribed in a.Bounds between
// a.Start and a.End, growing inward.
func (p *painter) arc(a Arc) {
	r := a.Bounds
	if r.Empty() || a.Width <= 0 {
		return
	}
	cx, cy, rx, ry := ellipseOf(r)
	w := float64(a.Width)
	a0, a1 := a.Start*math.Pi/180, a.End*math.Pi/180
	pts := arcPoints(nil, cx, cy, rx, ry, a0, a1)
	pts = arcPoints(pts, cx, cy, math.Max(rx-w, 0), math.Max(ry-w, 0), a1, a0)
	p.polygon(pts)
}

func ellipseOf(r image.Rectangle) (cx, cy, rx, ry float64) {
	rx, ry = float64(r.Dx())/2, float64(r.Dy())/2
	return float64(r.Min.X) + rx, float64(r.Min.Y) + ry, rx, ry
}

// arcPoints appends a flattened elliptical arc from angle a0 to a1
// (radians, y down) to pts.
func arcPoints(pts []point, cx, cy, rx, ry, a0, a1 float64) []point {
	n := segments(rx, ry, a1-a0)
	for k := 0; k <= n; k++ {
		a := a0 + (a1-a0)*float64(k)/float64(n)
		pts = append(pts, point{cx + rx*math.Cos(a), cy + ry*math.Sin(a)})
	}
	return pts
}

// segments picks a flattening step of roughly one pixel of arc length.
func segments(rx, ry, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * math.Max(rx, ry)))
	return min(max(n, 8), 1024)
}
