// Package span selects the part of an index-labelled record that falls inside
// an inclusive value range, such as the flight segment between launch and
// landing times of a housekeeping record.
//
//	lo, hi, err := span.Select(times, launch, landing)
//	index, cols, err := span.Truncate(times, launch, landing, pressure, altitude)
//
// The index must be ascending. Pass math.Inf(-1) or math.Inf(1) for an open
// bound.
package span
