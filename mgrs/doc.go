// SPDX-License-Identifier: MIT

// Package mgrs encodes coordinates as Military Grid Reference System
// labels, covering both the UTM body of the grid (latitude bands C…X)
// and the polar caps (UPS bands A, B, Y, Z).
//
// What:
//
//   - Encoder: built once per source CRS; classifies the CRS up front
//     (UTM zone, UPS aspect or a generic route through geographic
//     coordinates) and caches the projections it needs.
//   - Encode(position, digits): produces the label, with digits pairs of
//     0 to 5 digits (100 km down to 1 m resolution). Values are truncated
//     toward zero, never rounded, so a label always names the grid cell
//     containing the position.
//
// Grid rules:
//
//   - Latitude bands are 8° tall from 80°S, letters C…X skipping I and O,
//     with X widened to 12° (72°N to 84°N).
//   - Zone exceptions: band V widens zone 32 over south-west Norway, and
//     band X drops zones 32, 34 and 36 over Svalbard. Positions are
//     re-projected into the zone their label requires.
//   - Beyond 84°N and 80°S the UPS grid takes over: bands Y/Z around the
//     north pole and A/B around the south pole, with no zone digits and
//     the polar 100 km letter tables.
//
// Example label: 32UMA2833339109 (zone 32, band U, square MA, easting
// 28333 m, northing 39109 m inside the square).
//
// Errors: ErrIllegalDigits for a digit count outside 0…5;
// transform.ErrOutsideDomain when the position cannot carry a label at
// the requested resolution; ErrUnsupportedCRS at construction.
//
// Concurrency: an Encoder caches projections lazily and is therefore
// single-threaded by contract; build one Encoder per goroutine.
package mgrs
