package icon

import "image"

// ReferenceSize is the edge length every design constant is expressed in.
const ReferenceSize = 1024

// RoundRect is a filled rectangle with circular corners.
type RoundRect struct {
	Bounds image.Rectangle
	Radius int
}

// Ring is an ellipse outline stroked inward from Bounds.
type Ring struct {
	Bounds image.Rectangle
	Width  int
}

// Arc is a stroked elliptical arc. Angles are degrees, clockwise from
// 3 o'clock in image space, so 0..180 is the lower half of the ellipse.
type Arc struct {
	Bounds     image.Rectangle
	Start, End float64
	Width      int
}

// Layout is the pixel geometry of the icon at one size.
type Layout struct {
	Size       int
	Background RoundRect
	Body       RoundRect
	Head       image.Rectangle
	Base       RoundRect
	Grille     [2]Ring
	Waves      [6]Arc
	Dots       [6]image.Rectangle
}

// scaler maps design constants onto a canvas of a given size.
type scaler int

// of returns c*size/ReferenceSize truncated toward zero.
func (s scaler) of(c int) int {
	return c * int(s) / ReferenceSize
}

// LayoutFor computes the geometry of every primitive for size.
func LayoutFor(size int) Layout {
	sc := scaler(size).of
	cx, cy := size/2, size/2

	l := Layout{Size: size}

	m := sc(50)
	l.Background = RoundRect{image.Rect(m, m, size-m, size-m), sc(100)}

	l.Body = RoundRect{image.Rect(cx-sc(30), cy-sc(100), cx+sc(30), cy+sc(100)), sc(30)}
	l.Head = image.Rect(cx-sc(40), cy-sc(120), cx+sc(40), cy-sc(80))
	l.Base = RoundRect{image.Rect(cx-sc(40), cy+sc(100), cx+sc(40), cy+sc(120)), sc(10)}

	// grille sits 20 below the top of the body
	l.Grille[0] = Ring{image.Rect(cx-sc(25), cy-sc(105), cx+sc(25), cy-sc(55)), sc(3)}
	l.Grille[1] = Ring{image.Rect(cx-sc(15), cy-sc(95), cx+sc(15), cy-sc(65)), sc(2)}

	for i := 0; i < 3; i++ {
		y0, y1 := cy+sc(-125+20*i), cy+sc(-75+20*i)
		near, far := sc(150+100*i), sc(350+100*i)
		l.Waves[2*i] = Arc{image.Rect(cx+near, y0, cx+far, y1), 0, 180, sc(8)}
		l.Waves[2*i+1] = Arc{image.Rect(cx-far, y0, cx-near, y1), 0, 180, sc(8)}

		dx, dy, r := sc(180+20*i), sc(120+20*i), sc(8-2*i)
		l.Dots[2*i] = image.Rect(cx+dx-r, cy-dy-r, cx+dx+r, cy-dy+r)
		l.Dots[2*i+1] = image.Rect(cx-dx-r, cy-dy-r, cx-dx+r, cy-dy+r)
	}
	return l
}
