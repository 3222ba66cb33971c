package correlation

import "math"

// Accumulator computes Pearson and regression statistics incrementally across
// blocks of paired samples using Welford's online update, so long records never
// have to be held in memory. Zero filtering follows WithZeroFilter and is on by
// default, as for New. An Accumulator is not safe for concurrent use.
//
// Means and sums are kept in units of a power-of-two scale per sequence that
// grows with the largest magnitude seen, so finite inputs of any size never
// overflow them.
type Accumulator struct {
	zeroFilter bool

	n       int
	dropped int
	scaleX  float64 // 0 until a non-zero x arrives
	scaleY  float64
	meanX   float64
	meanY   float64
	m2x     float64
	m2y     float64
	cxy     float64
	firstX  float64
	firstY  float64
	constX  bool
	constY  bool
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator(opts ...Option) *Accumulator {
	cfg := applyOptions(opts...)
	return &Accumulator{zeroFilter: cfg.zeroFilter, constX: true, constY: true}
}

// Add accumulates one pair. NaN and infinite values are rejected with
// ErrInvalidInput and leave the state unchanged.
func (a *Accumulator) Add(x, y float64) error {
	if err := validateFinite("pair", []float64{x, y}); err != nil {
		return err
	}
	a.add(x, y)
	return nil
}

// Update accumulates a block of pairs. The whole block is validated before any
// pair is added.
func (a *Accumulator) Update(xs, ys []float64) error {
	if err := validateShape(xs, ys, nil, false); err != nil {
		return err
	}
	if err := validateFinite("primary", xs); err != nil {
		return err
	}
	if err := validateFinite("correlant", ys); err != nil {
		return err
	}

	for i := range xs {
		a.add(xs[i], ys[i])
	}
	return nil
}

func (a *Accumulator) add(x, y float64) {
	if a.zeroFilter && (x == 0 || y == 0) {
		a.dropped++
		return
	}

	a.n++
	if a.n == 1 {
		a.firstX, a.firstY = x, y
	} else {
		a.constX = a.constX && x == a.firstX
		a.constY = a.constY && y == a.firstY
	}

	a.growScales(x, y)
	xs, ys := scaled(x, a.scaleX), scaled(y, a.scaleY)

	ni := float64(a.n)
	dx := xs - a.meanX
	dy := ys - a.meanY
	a.meanX += dx / ni
	a.meanY += dy / ni

	// The second factor uses the updated mean.
	a.m2x += dx * (xs - a.meanX)
	a.m2y += dy * (ys - a.meanY)
	a.cxy += dx * (ys - a.meanY)
}

// growScales raises the scales to cover x and y and converts the running sums
// to the new units. Power-of-two ratios keep the conversion exact.
func (a *Accumulator) growScales(x, y float64) {
	if x != 0 {
		if s := scaleFor(math.Abs(x)); s > a.scaleX {
			if a.scaleX > 0 {
				f := a.scaleX / s
				a.meanX *= f
				a.m2x *= f * f
				a.cxy *= f
			}
			a.scaleX = s
		}
	}
	if y != 0 {
		if s := scaleFor(math.Abs(y)); s > a.scaleY {
			if a.scaleY > 0 {
				f := a.scaleY / s
				a.meanY *= f
				a.m2y *= f * f
				a.cxy *= f
			}
			a.scaleY = s
		}
	}
}

// unitScale maps the unset scale of an all-zero sequence to 1.
func unitScale(scale float64) float64 {
	if scale == 0 {
		return 1
	}
	return scale
}

func scaled(v, scale float64) float64 {
	if scale == 0 {
		return 0
	}
	return v / scale
}

// Len returns the number of accumulated pairs.
func (a *Accumulator) Len() int {
	return a.n
}

// Dropped returns the number of pairs rejected by zero filtering.
func (a *Accumulator) Dropped() int {
	return a.dropped
}

func (a *Accumulator) moments() moments {
	return moments{
		n:      a.n,
		scaleX: unitScale(a.scaleX),
		scaleY: unitScale(a.scaleY),
		meanX:  a.meanX,
		meanY:  a.meanY,
		sxx:    a.m2x,
		syy:    a.m2y,
		sxy:    a.cxy,
		constX: a.constX,
		constY: a.constY,
	}
}

// Pearson returns the correlation of the pairs accumulated so far.
func (a *Accumulator) Pearson() (Pearson, error) {
	return a.moments().pearson()
}

// LinearRegression returns the least-squares fit of the pairs accumulated so
// far.
func (a *Accumulator) LinearRegression() (Regression, error) {
	return a.moments().regression()
}

// Reset clears all accumulated data and keeps the filter setting.
func (a *Accumulator) Reset() {
	*a = Accumulator{zeroFilter: a.zeroFilter, constX: true, constY: true}
}
