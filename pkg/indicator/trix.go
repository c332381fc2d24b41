package indicator

import "fmt"

// DefaultTRIXPeriod is the conventional period for a TRIX.
const DefaultTRIXPeriod = 15

// TRIX calculates the triple exponential average: the one-step percentage
// rate of change of a triply-smoothed EMA chain.
//
// TRIX = (EMA3[t] - EMA3[t-1]) / EMA3[t-1] * 100
//
// Three EMAs of the same period are chained in strict order. The first
// call records the third stage as the baseline and returns 0 — a "no
// signal yet" sentinel, since there is no prior baseline to compare
// against. The baseline can legitimately reach exactly zero on inputs
// that cross zero; that division is deliberately not guarded, matching
// the reference formula.
type TRIX struct {
	period   int
	baseline float64
	isNew    bool
	ema      *EMA
	ema2     *EMA
	ema3     *EMA
}

// NewTRIX creates a TRIX with the given period.
func NewTRIX(period int) (*TRIX, error) {
	if period < 1 {
		return nil, fmt.Errorf("trix: period must be at least 1, got %d: %w", period, ErrInvalidParameter)
	}

	ema, _ := NewEMA(period)
	ema2, _ := NewEMA(period)
	ema3, _ := NewEMA(period)

	return &TRIX{
		period: period,
		isNew:  true,
		ema:    ema,
		ema2:   ema2,
		ema3:   ema3,
	}, nil
}

// NewDefaultTRIX creates a TRIX with DefaultTRIXPeriod.
func NewDefaultTRIX() *TRIX {
	trix, _ := NewTRIX(DefaultTRIXPeriod)
	return trix
}

// Next feeds one value through the three-stage chain and returns the
// percentage rate of change of the third stage.
func (t *TRIX) Next(v float64) float64 {
	emaValue := t.ema.Next(v)
	ema2Value := t.ema2.Next(emaValue)
	ema3Value := t.ema3.Next(ema2Value)

	if t.isNew {
		t.isNew = false
		t.baseline = ema3Value
		return 0
	}

	trix := (ema3Value - t.baseline) / t.baseline * 100
	t.baseline = ema3Value
	return trix
}

// NextBar feeds the bar's close.
func (t *TRIX) NextBar(bar HasClose) float64 {
	return t.Next(bar.Close())
}

// Period returns the shared period of the three smoothers.
func (t *TRIX) Period() int {
	return t.period
}

// Reset clears the baseline and forwards to the owned smoothers in
// construction order.
func (t *TRIX) Reset() {
	t.baseline = 0
	t.isNew = true
	t.ema.Reset()
	t.ema2.Reset()
	t.ema3.Reset()
}

func (t *TRIX) String() string {
	return fmt.Sprintf("TRIX(%d)", t.period)
}

var _ ValueIndicator = (*TRIX)(nil)
