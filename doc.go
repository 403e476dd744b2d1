// Package geodesy is an in-process geodetic coordinate-transformation
// engine: it converts direct positions between coordinate reference
// systems, assembles parameterized map-projection and datum-shift
// pipelines, and encodes positions into grid-reference labels (MGRS).
//
// 🌍 What is geodesy?
//
//	A pure-Go library that brings together:
//		• Matrix algebra: dense matrices with affine-aware operations and
//		  extended-precision (double-double) row updates
//		• Contextual parameters: the normalize → kernel → denormalize
//		  pipeline behind every map projection and datum shift
//		• Operation methods: Molodensky, Transverse Mercator,
//		  Polar Stereographic (variant A), with 2D/3D redimensioning
//		• Grid references: MGRS labels with UTM zoning (Norway/Svalbard
//		  exceptions included) and full UPS polar support
//
// ✨ Why choose geodesy?
//
//   - Deterministic numerics – fixed loop orders, explicit tolerances
//   - Sentinel errors – every failure mode is matchable via errors.Is
//   - No hidden globals – the CRS registry is built once and injected
//   - Pure computation – no network, file, or process boundary anywhere
//
// Under the hood, everything is organized under leaf-first subpackages:
//
//	unit/      — angular/linear units and conversion factors
//	matrix/    — dense matrix algebra for affine transform steps
//	parameter/ — operation parameter descriptors and value groups
//	crs/       — ellipsoids, datums, CRS model and the WGS84 registry
//	transform/ — transforms, factory, contextual parameters, kernels
//	provider/  — operation-method providers and the operation factory
//	mgrs/      — Military Grid Reference System encoder
//
// Quick ASCII picture of the transform pipeline:
//
//	degrees ──[normalize]──► radians ──[kernel]──► planar ──[denormalize]──► metres
//
// Dive into each package's doc.go for tutorials and the error contracts.
package geodesy
