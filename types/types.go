// Package types defines core type constraints and enums shared across the
// tessellate module: the numeric constraints geometric operations are
// generic over, and the fill-rule tag threaded through the sweep-line
// trapezoid driver.
//
// # Key Features
//
//   - SignedNumber Interface: a type set of signed integers and floats,
//     used by numeric.Abs, which accepts both.
//   - Real Interface: a narrower type set of float32/float64, used by the
//     sweep-line core and geom package, which require division, square
//     root, and approximate equality.
//   - FillRule Enum: the fill rule accepted by the trapezoidizer.
//
// This package is internal plumbing: it exists so the rest of the module
// can be generic without repeating these constraints at every call site.
package types
