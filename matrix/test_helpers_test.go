// SPDX-License-Identifier: MIT

// Package matrix_test: shared helpers keeping the actual tests terse.

package matrix_test

import (
	"testing"

	"github.com/shruda/geodesy/matrix"
)

// MustDense allocates an r×c Dense or fails the test.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	return m
}

// MustFromSlice builds a Dense from row-major values or fails the test.
func MustFromSlice(t *testing.T, rows, cols int, values []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromSlice(rows, cols, values)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", rows, cols, err)
	}
	return m
}

// MustAt reads an element or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes an element or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// hide wraps a Matrix to defeat the *Dense fast-path type assertions,
// forcing kernels through the generic interface path.
type hide struct{ matrix.Matrix }
