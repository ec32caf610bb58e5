// Package icon draws the microphone application icon at any pixel size.
// The composition is defined once at ReferenceSize and every coordinate is
// scaled linearly, so all sizes are geometrically self-similar.
package icon

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	Background = color.NRGBA{R: 0x4A, G: 0x90, B: 0xE2, A: 0xFF} // #4A90E2
	Foreground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Render returns a new size×size icon with a transparent surround.
// It panics if size is not positive.
func Render(size int) *image.NRGBA {
	if size <= 0 {
		panic(fmt.Sprintf("icon: invalid size %d", size))
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	l := LayoutFor(size)
	p := newPainter(img)

	p.roundRect(l.Background)
	p.paint(Background)

	p.roundRect(l.Body)
	p.paint(Foreground)
	p.ellipse(l.Head)
	p.paint(Foreground)
	p.roundRect(l.Base)
	p.paint(Foreground)

	for _, g := range l.Grille {
		p.ring(g)
		p.paint(Background)
	}

	for _, w := range l.Waves {
		p.arc(w)
		p.paint(Foreground)
	}

	for _, d := range l.Dots {
		p.ellipse(d)
		p.paint(Foreground)
	}
	return img
}

// Resample scales src to size×size with Catmull-Rom filtering.
func Resample(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
