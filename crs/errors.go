// SPDX-License-Identifier: MIT
// Package crs: sentinel error set.

package crs

import "errors"

var (
	// ErrInvalidAxes indicates ellipsoid axes that are non-positive or with
	// semi-minor exceeding semi-major.
	ErrInvalidAxes = errors.New("crs: invalid ellipsoid axes")

	// ErrNilCRS indicates a nil CRS argument where one is required.
	ErrNilCRS = errors.New("crs: nil coordinate reference system")
)
