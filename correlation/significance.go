package correlation

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// correlationPValue returns the two-sided p-value of coefficient r under the
// null hypothesis of zero correlation, from Student's t with df degrees of
// freedom.
func correlationPValue(r float64, df int) float64 {
	if df < 1 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}

	nu := float64(df)
	t := r * math.Sqrt(nu/((1-r)*(1+r)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}

	p := 2 * dist.Survival(math.Abs(t))
	return math.Max(0, math.Min(1, p))
}
