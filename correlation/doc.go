// Package correlation analyses the linear relationship between two paired
// numeric sequences.
//
// A [Correlation] is built once from a primary and a correlant sequence and
// optionally an index sequence that labels the pairs (sample numbers, times).
// By default every pair in which either member is exactly zero is removed at
// construction, because archives commonly encode invalid samples as zero. The
// filtered data never changes afterwards.
//
// Statistics are computed on first request and memoised for the lifetime of
// the instance:
//
//	c, err := correlation.New(primary, correlant)
//	p, err := c.Pearson()            // coefficient and two-sided p-value
//	reg, err := c.LinearRegression() // OLS fit of correlant on primary
//	f, err := c.Predictor()          // x -> reg.Slope*x + reg.Intercept
//
// Memoised values, including failures such as [ErrInsufficientData], are
// returned unchanged by later calls, and concurrent first calls compute each
// statistic once.
//
// [Accumulator] produces the same statistics incrementally for data that
// arrives in blocks.
package correlation
