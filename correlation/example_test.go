package correlation_test

import (
	"fmt"

	"github.com/cwbudde/algo-align/correlation"
)

func ExampleNew() {
	c, _ := correlation.New(
		[]float64{0, 1, 2, 3, 0},
		[]float64{5, 1, 2, 3, 9},
	)
	p, _ := c.Pearson()
	fmt.Printf("pairs=%d r=%.1f\n", c.Len(), p.R)

	// Output:
	// pairs=3 r=1.0
}

func ExampleCorrelation_Predictor() {
	c, _ := correlation.New([]float64{1, 2, 3}, []float64{3, 5, 7})
	f, _ := c.Predictor()
	fmt.Printf("%.1f\n", f(10))

	// Output:
	// 21.0
}

func ExampleAccumulator() {
	acc := correlation.NewAccumulator()
	_ = acc.Update([]float64{1, 2}, []float64{2, 4})
	_ = acc.Update([]float64{3, 4}, []float64{6, 8})
	reg, _ := acc.LinearRegression()
	fmt.Printf("slope=%.1f intercept=%.1f\n", reg.Slope, reg.Intercept)

	// Output:
	// slope=2.0 intercept=0.0
}
