// SPDX-License-Identifier: MIT

// Package crs models the coordinate-reference-system collaborators the
// transform core consumes: ellipsoids, datums, geographic and projected CRS,
// and an explicit registry of well-known definitions.
//
// What:
//
//   - Ellipsoid: semi-major/semi-minor axes in metres with derived
//     flattening/eccentricity and pairwise Δa/Δf difference computation.
//   - Datum: a named reference surface bound to one ellipsoid.
//   - Geographic: latitude/longitude (degrees, EPSG axis order), 2D or 3D.
//   - Projected: a geographic base plus an operation-method name and its
//     parameter values; planar axes are easting/northing in metres.
//   - Registry: the well-known definitions (WGS 84 and friends), built
//     eagerly once and passed by reference to all consumers — an explicit
//     dependency instead of package-level lookup tables.
//
// Why:
//
//   - The transform engine needs to classify a CRS (geographic vs projected,
//     which projection method, which parameters) without owning metadata
//     concerns; these types are that minimal contract.
//
// Errors:
//
//   - ErrInvalidAxes: ellipsoid construction with non-positive or inverted
//     axes.
//   - ErrNilCRS: a nil CRS handed to a consumer.
//
// All types are immutable after construction and safe for concurrent reads.
package crs
