package correlation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Pearson is a product-moment correlation coefficient with its two-sided
// p-value for the null hypothesis of no correlation.
type Pearson struct {
	R      float64
	PValue float64
}

// Regression is an ordinary least-squares fit y = Slope*x + Intercept.
//
// RValue is the Pearson coefficient of the fit, PValue the two-sided p-value
// for a zero slope, StdErr the standard error of the slope and
// InterceptStdErr the standard error of the intercept.
type Regression struct {
	Slope           float64
	Intercept       float64
	RValue          float64
	PValue          float64
	StdErr          float64
	InterceptStdErr float64
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// moments are the centred second-order sums of a paired sample. Each
// sequence is divided by a power-of-two scale before summing, so the sums
// neither overflow nor underflow for any finite input; the means and sums
// below are in those scaled units.
type moments struct {
	n      int
	scaleX float64
	scaleY float64
	meanX  float64
	meanY  float64
	sxx    float64 // sum (x - meanX)^2
	syy    float64 // sum (y - meanY)^2
	sxy    float64 // sum (x - meanX)(y - meanY)
	constX bool
	constY bool
}

// scaleFor returns the largest power of two not above maxAbs, or 1 for an
// all-zero sequence. It is finite for every finite maxAbs and dividing by it
// is exact, leaving magnitudes in [0, 2).
func scaleFor(maxAbs float64) float64 {
	if maxAbs == 0 {
		return 1
	}
	_, exp := math.Frexp(maxAbs)
	return math.Ldexp(1, exp-1)
}

// computeMoments evaluates the sums in two passes with the vector kernels.
func computeMoments(x, y []float64) moments {
	n := len(x)
	m := moments{n: n, scaleX: 1, scaleY: 1, constX: isConstant(x), constY: isConstant(y)}
	if n == 0 {
		return m
	}

	m.scaleX = scaleFor(vecmath.MaxAbs(x))
	m.scaleY = scaleFor(vecmath.MaxAbs(y))

	dx := make([]float64, n)
	dy := make([]float64, n)
	for i := range x {
		dx[i] = x[i] / m.scaleX
		dy[i] = y[i] / m.scaleY
	}

	nf := float64(n)
	m.meanX = vecmath.Sum(dx) / nf
	m.meanY = vecmath.Sum(dy) / nf

	for i := range dx {
		dx[i] -= m.meanX
		dy[i] -= m.meanY
	}

	m.sxx = vecmath.DotProduct(dx, dx)
	m.syy = vecmath.DotProduct(dy, dy)
	m.sxy = vecmath.DotProduct(dx, dy)

	return m
}

func isConstant(values []float64) bool {
	for _, v := range values[min(1, len(values)):] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func (m moments) sufficient() error {
	if m.n < 2 {
		return fmt.Errorf("%w: %d paired points, need at least 2", ErrInsufficientData, m.n)
	}
	if m.constX || m.sxx == 0 {
		return fmt.Errorf("%w: primary has zero variance", ErrInsufficientData)
	}
	if m.constY || m.syy == 0 {
		return fmt.Errorf("%w: correlant has zero variance", ErrInsufficientData)
	}
	return nil
}

// r returns the correlation coefficient clipped to [-1, 1]. It does not
// depend on the scales.
func (m moments) r() float64 {
	r := m.sxy / (math.Sqrt(m.sxx) * math.Sqrt(m.syy))
	return math.Max(-1, math.Min(1, r))
}

func (m moments) pearson() (Pearson, error) {
	if err := m.sufficient(); err != nil {
		return Pearson{}, err
	}

	r := m.r()
	if m.n == 2 {
		// Two points always lie on a line; the test has no degrees of freedom.
		return Pearson{R: r, PValue: 1}, nil
	}

	return Pearson{R: r, PValue: correlationPValue(r, m.n-2)}, nil
}

func (m moments) regression() (Regression, error) {
	if err := m.sufficient(); err != nil {
		return Regression{}, err
	}

	r := m.r()
	ratio := m.scaleY / m.scaleX
	slope := ratio * (m.sxy / m.sxx)
	reg := Regression{
		Slope:     slope,
		Intercept: m.meanY*m.scaleY - slope*(m.meanX*m.scaleX),
		RValue:    r,
	}

	if m.n == 2 {
		// Exact fit through two distinct points.
		return reg, nil
	}

	df := float64(m.n - 2)
	nf := float64(m.n)
	reg.PValue = correlationPValue(r, m.n-2)
	reg.StdErr = ratio * math.Sqrt(math.Max(0, (1-r*r)*m.syy/m.sxx/df))
	reg.InterceptStdErr = reg.StdErr * m.scaleX * math.Sqrt(m.sxx/nf+m.meanX*m.meanX)

	return reg, nil
}

func pearson(x, y []float64) (Pearson, error) {
	return computeMoments(x, y).pearson()
}

func linearRegression(x, y []float64) (Regression, error) {
	return computeMoments(x, y).regression()
}
