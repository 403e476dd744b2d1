// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shruda/geodesy/matrix"
	"github.com/shruda/geodesy/parameter"
	"github.com/shruda/geodesy/transform"
)

// mustAffine builds an Affine from row-major values or fails the test.
func mustAffine(t *testing.T, rows, cols int, values ...float64) *transform.Affine {
	t.Helper()
	m, err := matrix.NewFromSlice(rows, cols, values)
	require.NoError(t, err)
	a, err := transform.NewAffine(m)
	require.NoError(t, err)
	return a
}

// stubMethod satisfies transform.Method for tests.
type stubMethod struct {
	group *parameter.DescriptorGroup
	src   int
	tgt   int
}

func (m stubMethod) Parameters() *parameter.DescriptorGroup { return m.group }
func (m stubMethod) SourceDimensions() int                  { return m.src }
func (m stubMethod) TargetDimensions() int                  { return m.tgt }

func newStubMethod(src, tgt int) stubMethod {
	return stubMethod{group: parameter.NewGroup("stub", "TEST:1"), src: src, tgt: tgt}
}

// TestAffine_Apply covers the plain affine application paths.
func TestAffine_Apply(t *testing.T) {
	t.Run("translation", func(t *testing.T) {
		a := mustAffine(t, 3, 3,
			1, 0, 10,
			0, 1, -5,
			0, 0, 1)
		got, err := a.Transform([]float64{2, 3})
		require.NoError(t, err)
		assert.Equal(t, []float64{12, -2}, got)
	})

	t.Run("dimension drop", func(t *testing.T) {
		// 3D -> 2D: discard the height axis
		a := mustAffine(t, 3, 4,
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1)
		got, err := a.Transform([]float64{7, 8, 999})
		require.NoError(t, err)
		assert.Equal(t, []float64{7, 8}, got)
	})

	t.Run("length mismatch", func(t *testing.T) {
		a := mustAffine(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1)
		_, err := a.Transform([]float64{1, 2, 3})
		require.ErrorIs(t, err, transform.ErrMismatchedDimensions)
	})

	t.Run("input not mutated", func(t *testing.T) {
		a := mustAffine(t, 3, 3, 2, 0, 0, 0, 2, 0, 0, 0, 1)
		src := []float64{1, 1}
		_, err := a.Transform(src)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1}, src)
	})
}

// TestAffine_Inverse checks inversion and the non-invertible failure.
func TestAffine_Inverse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		a := mustAffine(t, 3, 3,
			2, 0, 3,
			0, 4, -1,
			0, 0, 1)
		inv, err := a.Inverse()
		require.NoError(t, err)
		fwd, err := a.Transform([]float64{1.5, -2.5})
		require.NoError(t, err)
		back, err := inv.Transform(fwd)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, back[0], 1e-12)
		assert.InDelta(t, -2.5, back[1], 1e-12)
	})

	t.Run("singular", func(t *testing.T) {
		a := mustAffine(t, 3, 3,
			1, 2, 0,
			2, 4, 0,
			0, 0, 1)
		_, err := a.Inverse()
		require.ErrorIs(t, err, transform.ErrNoninvertible)
	})

	t.Run("rectangular", func(t *testing.T) {
		a := mustAffine(t, 3, 4,
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1)
		_, err := a.Inverse()
		require.ErrorIs(t, err, transform.ErrNoninvertible)
	})
}

// TestConcatenated_Normalization checks flattening, linear merging and
// identity elision at construction time.
func TestConcatenated_Normalization(t *testing.T) {
	scale := mustAffine(t, 3, 3, 2, 0, 0, 0, 2, 0, 0, 0, 1)
	shift := mustAffine(t, 3, 3, 1, 0, 5, 0, 1, 5, 0, 0, 1)
	ident := mustAffine(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1)

	t.Run("adjacent linears merge", func(t *testing.T) {
		c, err := transform.NewConcatenated(scale, shift)
		require.NoError(t, err)
		merged, ok := c.(*transform.Affine)
		require.True(t, ok, "two affine steps should fold into one")
		got, err := merged.Transform([]float64{3, 4})
		require.NoError(t, err)
		assert.Equal(t, []float64{11, 13}, got)
	})

	t.Run("identity elided", func(t *testing.T) {
		c, err := transform.NewConcatenated(ident, shift)
		require.NoError(t, err)
		a, ok := c.(*transform.Affine)
		require.True(t, ok)
		assert.True(t, matrix.Equal(shift.Matrix(), a.Matrix()))
	})

	t.Run("inverse cancels", func(t *testing.T) {
		c, err := transform.NewConcatenated(scale, shift)
		require.NoError(t, err)
		inv, err := c.Inverse()
		require.NoError(t, err)
		back, err := inv.Transform([]float64{11, 13})
		require.NoError(t, err)
		assert.InDelta(t, 3, back[0], 1e-12)
		assert.InDelta(t, 4, back[1], 1e-12)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		drop := mustAffine(t, 3, 4, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1)
		_, err := transform.NewConcatenated(drop, mustAffine(t, 4, 4,
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1))
		require.ErrorIs(t, err, transform.ErrMismatchedDimensions)
	})
}

// TestFactory_Unique verifies that equally parameterized kernels collapse
// onto one canonical instance while affine steps pass through unchanged.
func TestFactory_Unique(t *testing.T) {
	f := transform.NewFactory()

	ctx1, err := transform.NewContextualParameters(newStubMethod(2, 2))
	require.NoError(t, err)
	ctx2, err := transform.NewContextualParameters(newStubMethod(2, 2))
	require.NoError(t, err)

	k1 := transform.NewTransverseMercator(ctx1, 0.00669437999014, 0)
	k2 := transform.NewTransverseMercator(ctx2, 0.00669437999014, 0)
	require.NotSame(t, k1, k2)

	first := f.Unique(k1)
	second := f.Unique(k2)
	assert.Same(t, first, second, "same parameterization should share one kernel")

	other := transform.NewTransverseMercator(ctx1, 0.0066943800229, 0)
	assert.NotSame(t, first, f.Unique(other))

	a := mustAffine(t, 3, 3, 1, 0, 1, 0, 1, 0, 0, 0, 1)
	assert.Same(t, a, f.Unique(a), "non-canonicalizable transforms pass through")
}
