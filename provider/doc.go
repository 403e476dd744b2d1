// SPDX-License-Identifier: MIT

// Package provider implements operation-method providers: named,
// parameter-described recipes that turn a filled parameter group into a
// ready-to-use coordinate transform.
//
// What:
//
//   - Molodensky / Abridged Molodensky: geographic datum shifts, with a
//     sibling table covering every 2D/3D source/target combination
//     (Redimension) and target-axis derivation from explicit Δa/Δf.
//   - TransverseMercator: the UTM workhorse projection, plus the zone
//     helpers UTMZone and CentralMeridian with the Norway and Svalbard
//     exceptions baked in.
//   - PolarStereographicA: variant A (origin at a pole), plus IsUPS to
//     recognize Universal Polar Stereographic parameterizations.
//   - Factory: the registry tying it together — method lookup by name,
//     UTM/UPS projected-CRS composition and FindOperation, which builds
//     the complete transform between two coordinate reference systems.
//
// Why:
//
// Kernels in package transform are normalized and unit-free; providers own
// the messy outside: parameter names and aliases, degrees and metres,
// derived values, axis order. Everything a caller needs funnels through a
// Factory so construction stays in one place.
//
// Errors: ErrUnknownMethod, ErrOperationNotFound, ErrIllegalArgument, plus
// wrapped sentinels from the parameter and transform packages.
//
// Factories are safe for concurrent use after construction.
package provider
