package lag_test

import (
	"fmt"

	"github.com/cwbudde/algo-align/lag"
)

func ExampleBestLag() {
	b := []float64{0, 1, 4, 1, 0, 0, 0, 0}
	a := []float64{0, 0, 0, 1, 4, 1, 0, 0}

	r, _ := lag.BestLag(a, b, 4)
	fmt.Println(r.Lag)

	// Output:
	// 2
}
