// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues and
// operations on signed numbers.
//
// # Overview
//
// The numeric package contains a set of helper functions designed for
// common numerical operations that arise in computational geometry and
// other domains where precision is important. This includes absolute
// value computation, floating-point comparisons with epsilon tolerance,
// square roots over a generic float constraint, and an approximate
// three-way comparison used to order events and active-set members in
// the sweep-line core.
//
// # Features
//
//   - Absolute Value Calculation: The Abs function computes the
//     absolute value of any signed number, supporting both integer and
//     floating-point types.
//
//   - Floating-Point Comparisons: Functions such as FloatEquals,
//     FloatGreaterThan, FloatLessThan, and their variants provide
//     robust comparisons between floating-point numbers using an epsilon
//     threshold to mitigate precision errors.
//
//   - Approximate Ordering: Compare produces a three-way ordering that
//     collapses differences smaller than epsilon to equality, which is
//     the comparison policy spec'd for the sweep-line's event queue and
//     active-list comparator.
//
//   - Precision Adjustment: The SnapToEpsilon function allows
//     floating-point numbers to be snapped to the nearest whole number if
//     they are within an acceptable tolerance, reducing small precision
//     artifacts.
//
// # Usage
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric
