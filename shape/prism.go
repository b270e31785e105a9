package shape

import (
	"deedles.dev/solid/num"
	"deedles.dev/ximage/geom"
)

// Prism is a rectangular box with three independent edges.
type Prism[T num.Number[T]] struct {
	length, width, height T
}

// NewPrism returns a prism with the given edge lengths.
func NewPrism[T num.Number[T]](length, width, height T) Prism[T] {
	return Prism[T]{
		length: length,
		width:  width,
		height: height,
	}
}

// PrismOnRect returns a prism standing on base. The base's X extent
// becomes the length and its Y extent the width. base should be
// well-formed, as the rectangles returned by geom.Rt are.
func PrismOnRect[T num.Number[T]](base geom.Rect[T], height T) Prism[T] {
	return NewPrism(base.Dx(), base.Dy(), height)
}

func (p Prism[T]) Length() T {
	return p.length
}

func (p Prism[T]) Width() T {
	return p.width
}

func (p Prism[T]) Height() T {
	return p.height
}

// Area returns 2·(hw + wl + hl).
func (p Prism[T]) Area() T {
	hw := p.height * p.width
	wl := p.width * p.length
	hl := p.height * p.length
	return num.Double(hw + wl + hl)
}

// Volume returns l·w·h.
func (p Prism[T]) Volume() T {
	return p.length * p.width * p.height
}

// Base returns the footprint of the prism as a rectangle at the
// origin, length along X and width along Y.
func (p Prism[T]) Base() geom.Rect[T] {
	return geom.Rt(0, 0, p.length, p.width)
}
