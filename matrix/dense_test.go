// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/shruda/geodesy/matrix"
)

// TestNewDense_Errors verifies shape validation on construction.
func TestNewDense_Errors(t *testing.T) {
	cases := []struct{ rows, cols int }{
		{0, 3}, {3, 0}, {-1, 2}, {2, -5},
	}
	for _, tc := range cases {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrBadShape) {
			t.Errorf("NewDense(%d,%d) error = %v; want ErrBadShape", tc.rows, tc.cols, err)
		}
	}
}

// TestNewDense_Zeroed verifies that all elements start at zero.
func TestNewDense_Zeroed(t *testing.T) {
	m := MustDense(t, 3, 4)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			if v := MustAt(t, m, i, j); v != 0 {
				t.Fatalf("element [%d,%d] of a new Dense must be 0, got %v", i, j, v)
			}
		}
	}
}

// TestNewIdentity verifies identity construction and the exact predicate.
func TestNewIdentity(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		m, err := matrix.NewIdentity(n)
		if err != nil {
			t.Fatalf("NewIdentity(%d): %v", n, err)
		}
		if !matrix.IsIdentity(m) {
			t.Errorf("NewIdentity(%d) is not identity", n)
		}
	}
}

// TestNewFromSlice_LengthMismatch verifies the value-count guard.
func TestNewFromSlice_LengthMismatch(t *testing.T) {
	_, err := matrix.NewFromSlice(2, 2, []float64{1, 2, 3})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("NewFromSlice error = %v; want ErrDimensionMismatch", err)
	}
}

// TestDense_Bounds verifies that At/Set return ErrOutOfRange, never panic.
func TestDense_Bounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	bad := [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}}
	for _, ij := range bad {
		if _, err := m.At(ij[0], ij[1]); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Errorf("At(%d,%d) error = %v; want ErrOutOfRange", ij[0], ij[1], err)
		}
		if err := m.Set(ij[0], ij[1], 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Errorf("Set(%d,%d) error = %v; want ErrOutOfRange", ij[0], ij[1], err)
		}
	}
}

// TestDense_CloneIndependence verifies deep copies.
func TestDense_CloneIndependence(t *testing.T) {
	m := MustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	MustSet(t, m, 0, 0, 99)
	if v := MustAt(t, c, 0, 0); v != 1 {
		t.Errorf("clone mutated through original: got %v; want 1", v)
	}
}

// TestDense_SetToIdentity verifies the in-place reset and its square guard.
func TestDense_SetToIdentity(t *testing.T) {
	m := MustFromSlice(t, 3, 3, []float64{2, 0, 5, 0, 2, 7, 0, 0, 1})
	if err := m.SetToIdentity(); err != nil {
		t.Fatalf("SetToIdentity: %v", err)
	}
	if !matrix.IsIdentity(m) {
		t.Errorf("SetToIdentity did not produce identity:\n%v", m)
	}

	rect := MustDense(t, 2, 3)
	if err := rect.SetToIdentity(); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Errorf("SetToIdentity on 2×3 error = %v; want ErrDimensionMismatch", err)
	}
}
