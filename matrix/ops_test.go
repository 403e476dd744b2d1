// SPDX-License-Identifier: MIT

// Package matrix_test: unit tests for the linear-algebra kernels.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shruda/geodesy/matrix"
)

//----------------------------------------------------------------------------//
// Mul / Transpose
//----------------------------------------------------------------------------//

// TestMul_Identity verifies multiply(multiply(A,B), I) == multiply(A,B).
func TestMul_Identity(t *testing.T) {
	a := MustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := MustFromSlice(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	abi, err := matrix.Mul(ab, id)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(ab, abi), "A·B·I must equal A·B bit-for-bit")
}

// TestMul_DimensionMismatch verifies the inner-dimension guard.
func TestMul_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_InterfaceFallback verifies that hiding the concrete type behind a
// wrapper produces the same product through the generic path.
func TestMul_InterfaceFallback(t *testing.T) {
	a := MustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := MustFromSlice(t, 2, 2, []float64{5, 6, 7, 8})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(fast, slow))
}

// TestTranspose verifies shape flip and value placement.
func TestTranspose(t *testing.T) {
	m := MustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	assert.Equal(t, 4.0, MustAt(t, tr, 0, 1))
	assert.Equal(t, 6.0, MustAt(t, tr, 2, 1))
}

//----------------------------------------------------------------------------//
// Inverse
//----------------------------------------------------------------------------//

// TestInverse_RoundTrip verifies invert(invert(A)) == A within tolerance
// for 2×2 and 3×3 matrices with non-zero determinant.
func TestInverse_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		n    int
		vals []float64
	}{
		{"2x2", 2, []float64{4, 7, 2, 6}},
		{"3x3_affine", 3, []float64{0.017, 0, -0.14, 0, 0.017, 0, 0, 0, 1}},
		{"3x3_general", 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := MustFromSlice(t, tc.n, tc.n, tc.vals)
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			back, err := matrix.Inverse(inv)
			require.NoError(t, err)
			assert.True(t, matrix.EqualTol(a, back, 1e-10),
				"invert(invert(A)) drifted:\nA=%v\nback=%v", a, back)
		})
	}
}

// TestInverse_TimesOriginalIsIdentity verifies A·A⁻¹ ≈ I.
func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	a := MustFromSlice(t, 3, 3, []float64{1, 2, 0, 0, 1, 3, 4, 0, 1})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	assert.True(t, matrix.IsIdentityTol(prod, 1e-12))
}

// TestInverse_Singular2x2 verifies the exact zero-determinant check.
func TestInverse_Singular2x2(t *testing.T) {
	a := MustFromSlice(t, 2, 2, []float64{1, 2, 2, 4})
	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_NearSingularGeneral verifies the reciprocal-condition guard on
// the elimination path: an exactly rank-deficient 3×3 and a numerically
// rank-deficient one must both be rejected.
func TestInverse_NearSingularGeneral(t *testing.T) {
	exact := MustFromSlice(t, 3, 3, []float64{1, 2, 3, 2, 4, 6, 1, 0, 1})
	_, err := matrix.Inverse(exact)
	require.ErrorIs(t, err, matrix.ErrSingular)

	near := MustFromSlice(t, 3, 3, []float64{1, 2, 3, 2, 4, 6.0000000000001, 1, 0, 1})
	_, err = matrix.Inverse(near, matrix.WithRCond(1e-9))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_NonSquare verifies the shape guard.
func TestInverse_NonSquare(t *testing.T) {
	a := MustDense(t, 2, 3)
	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

//----------------------------------------------------------------------------//
// Predicates and equality
//----------------------------------------------------------------------------//

// TestIsAffine verifies the homogeneous-row convention.
func TestIsAffine(t *testing.T) {
	affine := MustFromSlice(t, 3, 3, []float64{2, 0, 5, 0, 3, 7, 0, 0, 1})
	if !matrix.IsAffine(affine) {
		t.Error("matrix with [0,0,1] bottom row must be affine")
	}
	general := MustFromSlice(t, 3, 3, []float64{2, 0, 5, 0, 3, 7, 0.1, 0, 1})
	if matrix.IsAffine(general) {
		t.Error("perturbed bottom row must not be affine")
	}
}

// TestIsIdentity_ExactVsTolerance verifies both identity flavours.
func TestIsIdentity_ExactVsTolerance(t *testing.T) {
	m := MustFromSlice(t, 2, 2, []float64{1, 0, 1e-12, 1})
	if matrix.IsIdentity(m) {
		t.Error("exact IsIdentity must reject a 1e-12 perturbation")
	}
	if !matrix.IsIdentityTol(m, 1e-9) {
		t.Error("IsIdentityTol(1e-9) must accept a 1e-12 perturbation")
	}
}

// TestEqual_ExactVsTolerance verifies both equality flavours.
func TestEqual_ExactVsTolerance(t *testing.T) {
	a := MustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := MustFromSlice(t, 2, 2, []float64{1, 2, 3, 4 + 1e-13})
	if matrix.Equal(a, b) {
		t.Error("bit-for-bit Equal must reject a 1e-13 drift")
	}
	if !matrix.EqualTol(a, b, 1e-9) {
		t.Error("EqualTol(1e-9) must accept a 1e-13 drift")
	}
	c := MustDense(t, 2, 3)
	if matrix.Equal(a, c) || matrix.EqualTol(a, c, 1) {
		t.Error("differing shapes must compare unequal")
	}
}

//----------------------------------------------------------------------------//
// Concatenate (extended precision)
//----------------------------------------------------------------------------//

// TestConcatenate_DegreesToRadians verifies that folding the degree→radian
// factor and a central-meridian offset into an identity matrix lands within
// half an ULP of the mathematically exact coefficients.
func TestConcatenate_DegreesToRadians(t *testing.T) {
	m, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	offset := matrix.NewExtended(-9).Mul(matrix.DegreesToRadians)
	require.NoError(t, m.Concatenate(0, matrix.DegreesToRadians, offset))
	require.NoError(t, m.Concatenate(1, matrix.DegreesToRadians, matrix.Extended{}))

	assert.Equal(t, math.Pi/180, MustAt(t, m, 0, 0))
	assert.Equal(t, math.Pi/180, MustAt(t, m, 1, 1))
	assert.InEpsilon(t, -9*math.Pi/180, MustAt(t, m, 0, 2), 1e-15)
	// Homogeneous row untouched.
	assert.Equal(t, 1.0, MustAt(t, m, 2, 2))
	assert.Equal(t, 0.0, MustAt(t, m, 2, 0))
}

// TestConcatenate_AxisGuard verifies that the homogeneous row is rejected.
func TestConcatenate_AxisGuard(t *testing.T) {
	m, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	one := matrix.NewExtended(1)
	for _, axis := range []int{-1, 2, 3} {
		err := m.Concatenate(axis, one, matrix.Extended{})
		if !errors.Is(err, matrix.ErrOutOfRange) {
			t.Errorf("Concatenate(axis=%d) error = %v; want ErrOutOfRange", axis, err)
		}
	}
}

// TestExtended_Arithmetic exercises the double-double primitives against
// values whose error terms are analytically known.
func TestExtended_Arithmetic(t *testing.T) {
	// (1 + 2⁻⁶⁰) is not representable in float64; the low word must carry it.
	x := matrix.NewExtended(1).Add(matrix.NewExtended(math.Ldexp(1, -60)))
	assert.Equal(t, 1.0, x.Hi)
	assert.Equal(t, math.Ldexp(1, -60), x.Lo)

	// π/180 · 180/π must round-trip to 1 to extended precision.
	p := matrix.DegreesToRadians.Mul(matrix.RadiansToDegrees)
	assert.InDelta(t, 1.0, p.Value(), 1e-30)

	// Division must reconstruct the degree→radian constant from π.
	pi := matrix.Extended{Hi: math.Pi, Lo: 1.2246467991473532e-16}
	d := pi.Div(180)
	assert.Equal(t, matrix.DegreesToRadians.Hi, d.Hi)
	assert.InDelta(t, matrix.DegreesToRadians.Lo, d.Lo, 1e-33)
}
