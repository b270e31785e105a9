// Package shape provides solid shapes whose measurements are computed
// in a caller-chosen numeric domain.
//
// Every formula is written once against num.Number. Constants are
// float64 values projected into the domain before use, so an integer
// Circle sees π as 3 and an integer Sphere sees 4/3 as 1. That is the
// defined result in those domains, not an approximation error.
package shape

import (
	"math"

	"deedles.dev/solid/num"
)

// Shape is implemented by every shape in this package.
type Shape[T num.Number[T]] interface {
	// Area returns the surface area of the shape.
	Area() T

	// Volume returns the volume of the shape. Flat shapes return zero.
	Volume() T
}

var (
	_ Shape[num.Float64] = Circle[num.Float64]{}
	_ Shape[num.Float64] = Sphere[num.Float64]{}
	_ Shape[num.Float64] = Cube[num.Float64]{}
	_ Shape[num.Float64] = Prism[num.Float64]{}
)

// pi returns π in the domain T.
func pi[T num.Number[T]]() T {
	return num.From[T](math.Pi)
}

// Total sums the areas and volumes of shapes in their shared domain.
func Total[T num.Number[T]](shapes ...Shape[T]) (area, volume T) {
	for _, s := range shapes {
		area += s.Area()
		volume += s.Volume()
	}
	return area, volume
}

// Measurement holds the measurements of a shape lifted out of its
// domain.
type Measurement struct {
	Area, Volume float64
}

// Measure computes the measurements of s in its own domain and then
// converts them to float64. The domain's truncation has already
// happened by the time the conversion takes place.
func Measure[T num.Number[T]](s Shape[T]) Measurement {
	return Measurement{
		Area:   s.Area().Float(),
		Volume: s.Volume().Float(),
	}
}
