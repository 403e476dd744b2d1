// SPDX-License-Identifier: MIT

// Package matrix: extended-precision (double-double) scalar arithmetic.
//
// Purpose:
//   - Represent a value as an unevaluated sum hi+lo of two float64, giving
//     roughly 106 bits of significand.
//   - Feed Concatenate with scale/offset pairs that survive the catastrophic
//     cancellation inherent in geodetic coefficient chains (degree→radian
//     factors multiplied into meridian offsets, then subtracted back).
//
// Determinism:
//   - All operations are branch-free sequences of IEEE-754 ops (Dekker/Knuth
//     error-free transformations, products via math.FMA); results are
//     bit-identical across runs.

package matrix

import "math"

// Extended is a double-double value: the exact sum Hi+Lo where |Lo| is at
// most half an ULP of Hi. The zero value is an exact zero.
type Extended struct {
	Hi, Lo float64
}

// Extended-precision constants for the angular conversions that appear in
// every normalize/denormalize affine. The low-order words carry the residual
// of the constant beyond float64 precision.
var (
	// DegreesToRadians is π/180 in double-double precision.
	DegreesToRadians = Extended{Hi: 0.017453292519943295, Lo: 2.9486522708701687e-19}

	// RadiansToDegrees is 180/π in double-double precision.
	RadiansToDegrees = Extended{Hi: 57.29577951308232, Lo: -1.9878495670576283e-15}
)

// NewExtended wraps a plain float64 with a zero error term.
func NewExtended(v float64) Extended {
	return Extended{Hi: v}
}

// Value rounds the extended value back to the nearest float64.
func (x Extended) Value() float64 {
	return x.Hi + x.Lo
}

// IsZero reports whether the value is an exact zero.
func (x Extended) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// twoSum computes a+b exactly as a rounded sum and an error term (Knuth).
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	v := s - a
	e = (a - (s - v)) + (b - v)
	return s, e
}

// twoProd computes a*b exactly as a rounded product and an error term,
// using a fused multiply-add for the residual.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return p, e
}

// Add returns x+y in extended precision.
func (x Extended) Add(y Extended) Extended {
	s, e := twoSum(x.Hi, y.Hi)
	e += x.Lo + y.Lo
	hi, lo := twoSum(s, e)
	return Extended{Hi: hi, Lo: lo}
}

// Mul returns x*y in extended precision.
func (x Extended) Mul(y Extended) Extended {
	p, e := twoProd(x.Hi, y.Hi)
	e += x.Hi*y.Lo + x.Lo*y.Hi
	hi, lo := twoSum(p, e)
	return Extended{Hi: hi, Lo: lo}
}

// Neg returns -x.
func (x Extended) Neg() Extended {
	return Extended{Hi: -x.Hi, Lo: -x.Lo}
}

// Div returns x/b for a plain float64 divisor.
func (x Extended) Div(b float64) Extended {
	q1 := x.Hi / b
	p, e := twoProd(q1, b)
	r := ((x.Hi - p) - e) + x.Lo
	q2 := r / b
	hi, lo := twoSum(q1, q2)
	return Extended{Hi: hi, Lo: lo}
}
