// SPDX-License-Identifier: MIT

// Package unit provides the small measurement facility consumed by the
// coordinate-operation core: angular, linear and dimensionless units with
// exact conversion factors.
//
// What:
//
//   - Unit values (Degree, Radian, ArcSecond, Metre, Kilometre, One) carrying
//     a kind and a scale factor to the kind's base unit.
//   - Convert transforms a value between two units of the same kind.
//   - Factors are plain float64 multipliers; no registry, no global state.
//
// Why:
//
//   - Parameter values arrive in authority-specific units (degrees, metres)
//     while kernels work in radians and dimensionless space; every read from
//     a parameter group funnels through Convert.
//
// Errors:
//
//   - ErrIncompatibleUnits: conversion requested across kinds
//     (e.g. degrees → metres).
//
// All functions are pure and allocation-free.
package unit
