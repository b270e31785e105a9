// Package num defines the numeric domains that solid shapes can be
// measured in.
//
// A domain is any type that supports the ordinary arithmetic and
// ordering operators and that knows how to move values to and from
// float64. The float64 direction matters because constants such as π
// only exist as floating values, so every formula projects them into
// its domain exactly once, with that domain's own truncation rule.
package num

import "golang.org/x/exp/constraints"

// Number is a constraint for the types that solid shapes and the
// helpers in this package can handle. T is the type itself, so a
// domain D satisfies Number[D].
type Number[T any] interface {
	constraints.Integer | constraints.Float

	// FromFloat projects f into the domain. The receiver is ignored.
	FromFloat(f float64) T

	// Float returns the value as a float64.
	Float() float64
}

// From projects f into the domain T.
func From[T Number[T]](f float64) T {
	var zero T
	return zero.FromFloat(f)
}

// Conv converts a value from one domain into another by way of
// float64, applying Out's projection rule.
func Conv[Out Number[Out], In Number[In]](v In) Out {
	return From[Out](v.Float())
}
