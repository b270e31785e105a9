package shape

import (
	"deedles.dev/solid/num"
	"deedles.dev/ximage/geom"
)

// Sphere is a ball. Like Circle, one of its radius and diameter is
// derived from the other at creation.
type Sphere[T num.Number[T]] struct {
	radius, diameter T
}

// SphereByRadius returns a sphere with the given radius.
func SphereByRadius[T num.Number[T]](radius T) Sphere[T] {
	return Sphere[T]{
		radius:   radius,
		diameter: num.Double(radius),
	}
}

// SphereByDiameter returns a sphere with the given diameter. Odd
// diameters in integer domains lose their remainder, as with
// CircleByDiameter.
func SphereByDiameter[T num.Number[T]](diameter T) Sphere[T] {
	return Sphere[T]{
		radius:   num.Half(diameter),
		diameter: diameter,
	}
}

// Radius returns the radius of the sphere.
func (s Sphere[T]) Radius() T {
	return s.radius
}

// Diameter returns the diameter of the sphere.
func (s Sphere[T]) Diameter() T {
	return s.diameter
}

// Circumference returns 2·π·r, the length of a great circle.
func (s Sphere[T]) Circumference() T {
	return num.From[T](2) * pi[T]() * s.radius
}

// Area returns 4·π·r².
func (s Sphere[T]) Area() T {
	return num.From[T](4) * pi[T]() * num.Square(s.radius)
}

// Volume returns 4/3·π·r³. The 4/3 factor is divided in float64 and
// projected into T once, like π.
func (s Sphere[T]) Volume() T {
	return num.From[T](4.0/3.0) * pi[T]() * num.Cube(s.radius)
}

// Bounds returns the square silhouette of the sphere, with a corner
// at the origin. It is the minimum corner unless the radius is
// negative.
func (s Sphere[T]) Bounds() geom.Rect[T] {
	return geom.Rt(0, 0, s.diameter, s.diameter)
}
