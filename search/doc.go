// Package search locates the reference element closest to a query value.
//
// Three boundary policies restrict which reference elements may be returned:
//
//   - [Closest]:         any element
//   - [ClosestNotAbove]: elements that do not exceed the query
//   - [ClosestNotBelow]: elements that are not smaller than the query
//
// Among equidistant candidates the lowest index wins. A query for which the
// policy leaves no candidate fails with [ErrNoEligibleCandidate]; NaN in the
// reference or the query fails with [ErrInvalidInput].
//
// # Usage
//
//	i, err := search.FindClosest(reference, 6, search.ClosestNotAbove)
//	idx, err := search.FindClosestAll(reference, queries, search.Closest)
//
// For repeated lookups in an ascending reference, validate it once and use the
// logarithmic-time [Sorted] searcher:
//
//	s, err := search.NewSorted(timestamps)
//	idx, err := s.FindClosestAll(queries, search.ClosestNotBelow)
//
// [Sorted] returns exactly the indices the linear functions return for finite
// queries, including the lowest-index rule for duplicate reference values.
package search
