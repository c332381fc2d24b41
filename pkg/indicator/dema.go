package indicator

import "fmt"

// DefaultDEMAPeriod is the conventional period for a DEMA.
const DefaultDEMAPeriod = 9

// DEMA calculates a Double Exponential Moving Average.
//
// DEMA = 2 * EMA(price) - EMA(EMA(price))
//
// Two EMAs of the same period are chained: the second only ever sees the
// output of the first, never the raw input. The subtraction cancels the
// first-order lag that double smoothing introduces. The composite keeps
// its own warm-up flag, independent of each leaf's: the very first call
// publishes the second smoother's output as-is instead of applying the
// combination formula.
type DEMA struct {
	period  int
	current float64
	isNew   bool
	ema     *EMA
	ema2    *EMA
}

// NewDEMA creates a DEMA with the given period.
func NewDEMA(period int) (*DEMA, error) {
	if period < 1 {
		return nil, fmt.Errorf("dema: period must be at least 1, got %d: %w", period, ErrInvalidParameter)
	}

	// The period is already validated, so the leaf constructors cannot fail.
	ema, _ := NewEMA(period)
	ema2, _ := NewEMA(period)

	return &DEMA{
		period: period,
		isNew:  true,
		ema:    ema,
		ema2:   ema2,
	}, nil
}

// NewDefaultDEMA creates a DEMA with DefaultDEMAPeriod.
func NewDefaultDEMA() *DEMA {
	dema, _ := NewDEMA(DefaultDEMAPeriod)
	return dema
}

// Next feeds one value through the smoother chain and returns the
// lag-corrected average.
func (d *DEMA) Next(v float64) float64 {
	emaValue := d.ema.Next(v)

	if d.isNew {
		d.isNew = false
		d.current = d.ema2.Next(emaValue)
	} else {
		d.current = 2*emaValue - d.ema2.Next(emaValue)
	}

	return d.current
}

// NextBar feeds the bar's close.
func (d *DEMA) NextBar(bar HasClose) float64 {
	return d.Next(bar.Close())
}

// Period returns the shared period of both smoothers.
func (d *DEMA) Period() int {
	return d.period
}

// Reset clears the composite state and forwards to the owned smoothers in
// construction order.
func (d *DEMA) Reset() {
	d.current = 0
	d.isNew = true
	d.ema.Reset()
	d.ema2.Reset()
}

func (d *DEMA) String() string {
	return fmt.Sprintf("DEMA(%d)", d.period)
}

var _ ValueIndicator = (*DEMA)(nil)
