package correlation

import (
	"slices"

	"github.com/cwbudde/algo-vecmath"
)

// Correlation holds a filtered paired sample and memoised statistics on it.
// The filtered data is immutable; Correlation is safe for concurrent use.
type Correlation struct {
	primary   []float64
	correlant []float64
	index     []float64
	dropped   int

	// Statistic routines, replaceable in tests.
	pearsonFn    func(x, y []float64) (Pearson, error)
	regressionFn func(x, y []float64) (Regression, error)

	pearson    memo[Pearson]
	regression memo[Regression]
	predictor  memo[func(float64) float64]
}

// New validates and copies the paired sample, applies zero filtering unless
// disabled with WithZeroFilter(false), and returns the analysis object.
//
// primary and correlant must have equal length, as must the index when one
// is supplied with WithIndex; otherwise ErrShapeMismatch is returned. NaN and
// infinite values are rejected with ErrInvalidInput.
func New(primary, correlant []float64, opts ...Option) (*Correlation, error) {
	cfg := applyOptions(opts...)

	if err := validateShape(primary, correlant, cfg.index, cfg.hasIndex); err != nil {
		return nil, err
	}
	if err := validateFinite("primary", primary); err != nil {
		return nil, err
	}
	if err := validateFinite("correlant", correlant); err != nil {
		return nil, err
	}

	c := &Correlation{
		primary:      slices.Clone(primary),
		correlant:    slices.Clone(correlant),
		pearsonFn:    pearson,
		regressionFn: linearRegression,
	}
	if cfg.hasIndex {
		c.index = slices.Clone(cfg.index)
		if c.index == nil {
			c.index = []float64{}
		}
	}

	if cfg.zeroFilter {
		c.removeZeros()
	}

	return c, nil
}

// removeZeros drops pairs whose primary value is zero, then pairs whose
// correlant value is zero, keeping the index aligned.
func (c *Correlation) removeZeros() {
	n := len(c.primary)

	c.filter(func(i int) bool { return c.primary[i] != 0 })
	c.filter(func(i int) bool { return c.correlant[i] != 0 })

	c.dropped = n - len(c.primary)
}

func (c *Correlation) filter(keep func(i int) bool) {
	j := 0
	for i := range c.primary {
		if !keep(i) {
			continue
		}
		c.primary[j] = c.primary[i]
		c.correlant[j] = c.correlant[i]
		if c.index != nil {
			c.index[j] = c.index[i]
		}
		j++
	}

	c.primary = c.primary[:j]
	c.correlant = c.correlant[:j]
	if c.index != nil {
		c.index = c.index[:j]
	}
}

// Len returns the number of pairs left after filtering.
func (c *Correlation) Len() int {
	return len(c.primary)
}

// Dropped returns the number of pairs removed by zero filtering.
func (c *Correlation) Dropped() int {
	return c.dropped
}

// Primary returns a copy of the filtered primary sequence.
func (c *Correlation) Primary() []float64 {
	return slices.Clone(c.primary)
}

// Correlant returns a copy of the filtered correlant sequence.
func (c *Correlation) Correlant() []float64 {
	return slices.Clone(c.correlant)
}

// HasIndex reports whether an index sequence was supplied.
func (c *Correlation) HasIndex() bool {
	return c.index != nil
}

// Index returns a copy of the filtered index, or nil when none was supplied.
func (c *Correlation) Index() []float64 {
	return slices.Clone(c.index)
}

// Pearson returns the Pearson correlation of the filtered data. It fails with
// ErrInsufficientData for fewer than two pairs or a constant sequence.
func (c *Correlation) Pearson() (Pearson, error) {
	return c.pearson.get(func() (Pearson, error) {
		return c.pearsonFn(c.primary, c.correlant)
	})
}

// LinearRegression returns the least-squares fit of correlant on primary.
// It fails under the same conditions as Pearson.
func (c *Correlation) LinearRegression() (Regression, error) {
	return c.regression.get(func() (Regression, error) {
		return c.regressionFn(c.primary, c.correlant)
	})
}

// Predictor returns the fitted line as a function. The regression is computed
// first if needed; every call returns the same function.
func (c *Correlation) Predictor() (func(float64) float64, error) {
	return c.predictor.get(func() (func(float64) float64, error) {
		reg, err := c.LinearRegression()
		if err != nil {
			return nil, err
		}
		return reg.Predict, nil
	})
}

// Predict evaluates the fitted line at every x.
func (c *Correlation) Predict(xs []float64) ([]float64, error) {
	reg, err := c.LinearRegression()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	vecmath.ScaleBlock(out, xs, reg.Slope)
	for i := range out {
		out[i] += reg.Intercept
	}

	return out, nil
}

// RegressionLine returns the end points of the fitted line over the range of
// the filtered primary data, as drawn over a scatter plot of the pairs.
func (c *Correlation) RegressionLine() (x, y [2]float64, err error) {
	reg, err := c.LinearRegression()
	if err != nil {
		return x, y, err
	}

	x = [2]float64{slices.Min(c.primary), slices.Max(c.primary)}
	y = [2]float64{reg.Predict(x[0]), reg.Predict(x[1])}

	return x, y, nil
}
