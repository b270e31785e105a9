package num

import "math"

// Int is the platform int domain. Projection truncates toward zero
// and saturates at the bounds of int.
type Int int

func (Int) FromFloat(f float64) Int { return saturate[Int](f, math.MinInt, math.MaxInt) }
func (v Int) Float() float64 { return float64(v) }

// Int32 is the 32-bit signed domain. Projection truncates toward zero
// and saturates at the bounds of int32.
type Int32 int32

func (Int32) FromFloat(f float64) Int32 { return saturate[Int32](f, math.MinInt32, math.MaxInt32) }
func (v Int32) Float() float64 { return float64(v) }

// Int64 is the 64-bit signed domain. Projection truncates toward zero
// and saturates at the bounds of int64.
type Int64 int64

func (Int64) FromFloat(f float64) Int64 { return saturate[Int64](f, math.MinInt64, math.MaxInt64) }
func (v Int64) Float() float64 { return float64(v) }

// Uint is the unsigned size domain. Projection truncates toward zero;
// negative values become zero and large values saturate at the
// largest uint.
type Uint uint

func (Uint) FromFloat(f float64) Uint { return saturate[Uint](f, 0, math.MaxUint) }
func (v Uint) Float() float64 { return float64(v) }

// Uint32 is the 32-bit unsigned domain, projected like Uint.
type Uint32 uint32

func (Uint32) FromFloat(f float64) Uint32 { return saturate[Uint32](f, 0, math.MaxUint32) }
func (v Uint32) Float() float64 { return float64(v) }

// Uint64 is the 64-bit unsigned domain, projected like Uint.
type Uint64 uint64

func (Uint64) FromFloat(f float64) Uint64 { return saturate[Uint64](f, 0, math.MaxUint64) }
func (v Uint64) Float() float64 { return float64(v) }

// Float32 is the 32-bit floating domain. Projection rounds to the
// nearest float32; values beyond its range become ±Inf.
type Float32 float32

func (Float32) FromFloat(f float64) Float32 { return Float32(f) }
func (v Float32) Float() float64 { return float64(v) }

// Float64 is the 64-bit floating domain. Projection is the identity.
type Float64 float64

func (Float64) FromFloat(f float64) Float64 { return Float64(f) }
func (v Float64) Float() float64 { return float64(v) }
