// Package temporal provides the minute-resolution clock and calendar
// primitives the routing engine is built on: Instant (a point in time),
// Duration (signed minutes), TimeOfDay (a value in [0,1440)), Weekday,
// WorkingDaysMask, and the EdgeCost temporal model with its forward- and
// reverse-mode weight functions.
//
// Every exported arithmetic operation is pure and allocation-free; there
// is no global clock or time zone handling here — Instant is a flat
// minute counter the caller is responsible for anchoring to wall time.
package temporal
