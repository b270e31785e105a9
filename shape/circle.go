package shape

import (
	"deedles.dev/solid/num"
	"deedles.dev/ximage/geom"
)

// Circle is a flat circle. Its diameter is derived from its radius,
// or vice versa, when it is created and is never recomputed.
type Circle[T num.Number[T]] struct {
	radius, diameter T
}

// CircleByRadius returns a circle with the given radius.
func CircleByRadius[T num.Number[T]](radius T) Circle[T] {
	return Circle[T]{
		radius:   radius,
		diameter: num.Double(radius),
	}
}

// CircleByDiameter returns a circle with the given diameter. In
// integer domains an odd diameter loses its remainder when the radius
// is derived.
func CircleByDiameter[T num.Number[T]](diameter T) Circle[T] {
	return Circle[T]{
		radius:   num.Half(diameter),
		diameter: diameter,
	}
}

// Radius returns the radius of the circle.
func (c Circle[T]) Radius() T {
	return c.radius
}

// Diameter returns the diameter of the circle.
func (c Circle[T]) Diameter() T {
	return c.diameter
}

// Area returns π·r².
func (c Circle[T]) Area() T {
	return pi[T]() * num.Square(c.radius)
}

// Volume always returns zero.
func (c Circle[T]) Volume() T {
	return num.From[T](0)
}

// Bounds returns the square that encloses the circle, with a corner at
// the origin. It is the minimum corner unless the radius is negative.
func (c Circle[T]) Bounds() geom.Rect[T] {
	return geom.Rt(0, 0, c.diameter, c.diameter)
}
