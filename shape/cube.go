package shape

import (
	"deedles.dev/solid/num"
	"deedles.dev/ximage/geom"
)

// Cube is a box whose edges all have the same length.
type Cube[T num.Number[T]] struct {
	sides T
}

// NewCube returns a cube with edges of length sides.
func NewCube[T num.Number[T]](sides T) Cube[T] {
	return Cube[T]{sides: sides}
}

// Sides returns the length of each edge.
func (c Cube[T]) Sides() T {
	return c.sides
}

// Area returns 6·sides².
func (c Cube[T]) Area() T {
	return num.From[T](6) * num.Square(c.sides)
}

// Volume returns sides³.
func (c Cube[T]) Volume() T {
	return num.Cube(c.sides)
}

// Face returns one face of the cube as a rectangle with a corner at
// the origin.
func (c Cube[T]) Face() geom.Rect[T] {
	return geom.Rt(0, 0, c.sides, c.sides)
}
