// Package lag aligns two sequences in time by cross-correlation.
//
// [Correlate] computes the full linear cross-correlation of two sequences,
// choosing direct evaluation for short inputs and an FFT for long ones:
//
//	corr, err := lag.Correlate(a, b)
//	peakIdx, peakVal := lag.FindPeak(corr)
//	shift := lag.LagFromIndex(peakIdx, len(b))
//
// Output index k corresponds to lag k - (len(b) - 1); at lag L the sum pairs
// a[i] with b[i-L], so a positive lag means a trails b.
//
// [BestLag] searches a bounded lag window for the displacement that maximises
// the normalised correlation of the mean-removed sequences, which is what two
// instruments sampling the same quantity with a clock offset need before their
// paired statistics are computed.
package lag
