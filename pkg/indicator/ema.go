package indicator

import "fmt"

// DefaultEMAPeriod is the conventional smoothing period for an EMA.
const DefaultEMAPeriod = 9

// EMA calculates an Exponential Moving Average incrementally.
//
// EMA = (Price - Previous EMA) * Multiplier + Previous EMA
// Multiplier (alpha) = 2 / (Period + 1)
//
// The first observation seeds the average directly; every later call
// blends. EMA is the sole primitive the composite indicators in this
// package are built from, and its seed-on-first-value warm-up rule is the
// contract those composites rely on when chaining.
type EMA struct {
	period     int
	multiplier float64
	current    float64
	isNew      bool
}

// NewEMA creates an EMA with the given smoothing period.
func NewEMA(period int) (*EMA, error) {
	if period < 1 {
		return nil, fmt.Errorf("ema: period must be at least 1, got %d: %w", period, ErrInvalidParameter)
	}

	return &EMA{
		period:     period,
		multiplier: 2.0 / float64(period+1),
		isNew:      true,
	}, nil
}

// NewDefaultEMA creates an EMA with DefaultEMAPeriod.
func NewDefaultEMA() *EMA {
	ema, _ := NewEMA(DefaultEMAPeriod)
	return ema
}

// Next feeds one value and returns the updated average. The first call
// returns the input unchanged (seed). Non-finite inputs are not rejected;
// they propagate through the blend.
func (e *EMA) Next(v float64) float64 {
	if e.isNew {
		e.isNew = false
		e.current = v
		return e.current
	}

	e.current = e.multiplier*v + (1-e.multiplier)*e.current
	return e.current
}

// NextBar feeds the bar's close.
func (e *EMA) NextBar(bar HasClose) float64 {
	return e.Next(bar.Close())
}

// Period returns the configured smoothing period.
func (e *EMA) Period() int {
	return e.period
}

// Reset re-arms the warm-up; the next call seeds again.
func (e *EMA) Reset() {
	e.current = 0
	e.isNew = true
}

func (e *EMA) String() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

var _ ValueIndicator = (*EMA)(nil)
