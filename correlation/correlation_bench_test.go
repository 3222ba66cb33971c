package correlation

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-align/internal/testutil"
)

func BenchmarkNewAndRegress(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x, y := testutil.LinearPairs(1.25, 3, 1, n, 1)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))
			for range b.N {
				c, _ := New(x, y)
				_, _ = c.LinearRegression()
			}
		})
	}
}

func BenchmarkAccumulator(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x, y := testutil.LinearPairs(1.25, 3, 1, n, 1)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))
			acc := NewAccumulator()
			for range b.N {
				acc.Reset()
				_ = acc.Update(x, y)
				_, _ = acc.LinearRegression()
			}
		})
	}
}
