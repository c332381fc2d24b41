package stream

import (
	"fmt"

	"github.com/SeanEClarke/ta-rs/pkg/indicator"
)

// Calculator is a named streaming computation over engine bars. Each
// symbol gets its own instances, so implementations need no internal
// locking.
type Calculator interface {
	// Name returns the unique name of this calculator (e.g. "dema_9").
	Name() string

	// Update processes a new bar and returns the new value.
	Update(bar *Bar) (float64, error)

	// Value returns the current value, or an error before the first bar.
	Value() (float64, error)

	// Reset clears all state.
	Reset()

	// IsReady reports whether at least one bar has been processed.
	IsReady() bool
}

// CalculatorFactory creates a fresh calculator instance. The engine calls
// it once per symbol.
type CalculatorFactory func() (Calculator, error)

// closeCalculator adapts a close-driven indicator to the Calculator
// interface.
type closeCalculator struct {
	name  string
	ind   indicator.ValueIndicator
	last  float64
	ready bool
}

// NewCloseCalculator wraps any close-driven indicator under the given
// name.
func NewCloseCalculator(name string, ind indicator.ValueIndicator) Calculator {
	return &closeCalculator{name: name, ind: ind}
}

func (c *closeCalculator) Name() string {
	return c.name
}

func (c *closeCalculator) Update(bar *Bar) (float64, error) {
	if bar == nil {
		return 0, fmt.Errorf("bar cannot be nil")
	}

	c.last = c.ind.NextBar(barView{bar})
	c.ready = true
	return c.last, nil
}

func (c *closeCalculator) Value() (float64, error) {
	if !c.ready {
		return 0, fmt.Errorf("%s not ready: no bars processed", c.name)
	}
	return c.last, nil
}

func (c *closeCalculator) Reset() {
	c.ind.Reset()
	c.last = 0
	c.ready = false
}

func (c *closeCalculator) IsReady() bool {
	return c.ready
}

// vwapCalculator adapts the cumulative VWAP accumulator, which consumes
// full bars rather than closes.
type vwapCalculator struct {
	vwap  *indicator.VWAP
	last  float64
	ready bool
}

// NewVWAPCalculator wraps a cumulative VWAP under the fixed name "vwap".
func NewVWAPCalculator() Calculator {
	return &vwapCalculator{vwap: indicator.NewVWAP()}
}

func (c *vwapCalculator) Name() string {
	return "vwap"
}

func (c *vwapCalculator) Update(bar *Bar) (float64, error) {
	if bar == nil {
		return 0, fmt.Errorf("bar cannot be nil")
	}

	c.last = c.vwap.Next(barView{bar})
	c.ready = true
	return c.last, nil
}

func (c *vwapCalculator) Value() (float64, error) {
	if !c.ready {
		return 0, fmt.Errorf("vwap not ready: no bars processed")
	}
	return c.last, nil
}

func (c *vwapCalculator) Reset() {
	c.vwap.Reset()
	c.last = 0
	c.ready = false
}

func (c *vwapCalculator) IsReady() bool {
	return c.ready
}

// CreateEMA returns a factory producing EMA calculators named
// "ema_<period>".
func CreateEMA(period int) CalculatorFactory {
	return func() (Calculator, error) {
		ema, err := indicator.NewEMA(period)
		if err != nil {
			return nil, err
		}
		return NewCloseCalculator(fmt.Sprintf("ema_%d", period), ema), nil
	}
}

// CreateDEMA returns a factory producing DEMA calculators named
// "dema_<period>".
func CreateDEMA(period int) CalculatorFactory {
	return func() (Calculator, error) {
		dema, err := indicator.NewDEMA(period)
		if err != nil {
			return nil, err
		}
		return NewCloseCalculator(fmt.Sprintf("dema_%d", period), dema), nil
	}
}

// CreateTRIX returns a factory producing TRIX calculators named
// "trix_<period>".
func CreateTRIX(period int) CalculatorFactory {
	return func() (Calculator, error) {
		trix, err := indicator.NewTRIX(period)
		if err != nil {
			return nil, err
		}
		return NewCloseCalculator(fmt.Sprintf("trix_%d", period), trix), nil
	}
}

// CreateVWAP returns a factory producing cumulative VWAP calculators.
func CreateVWAP() CalculatorFactory {
	return func() (Calculator, error) {
		return NewVWAPCalculator(), nil
	}
}
