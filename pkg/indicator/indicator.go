// Package indicator implements incremental technical-analysis indicators.
//
// Every indicator consumes one observation at a time and keeps only the
// state the formula needs — no history buffers. Observations are either a
// bare float64 price or any caller type exposing the capability accessors
// an indicator requires (see HasClose and friends).
package indicator

import "fmt"

// Capability accessors an observation type may expose. Each accessor must
// be a pure read; indicators depend only on the subset they need.

// HasOpen is satisfied by observations that expose an opening price.
type HasOpen interface {
	Open() float64
}

// HasHigh is satisfied by observations that expose a period high.
type HasHigh interface {
	High() float64
}

// HasLow is satisfied by observations that expose a period low.
type HasLow interface {
	Low() float64
}

// HasClose is satisfied by observations that expose a closing price.
type HasClose interface {
	Close() float64
}

// HasVolume is satisfied by observations that expose traded volume.
type HasVolume interface {
	Volume() float64
}

// HLCV is the capability set required by volume-weighted indicators.
type HLCV interface {
	HasHigh
	HasLow
	HasClose
	HasVolume
}

// OHLCV is the full capability set of a standard bar.
type OHLCV interface {
	HasOpen
	HLCV
}

// Value is a raw price. It satisfies HasClose so that scalars and
// structured bars share one code path through NextBar.
type Value float64

// Close returns the price itself.
func (v Value) Close() float64 {
	return float64(v)
}

// Indicator is the minimal contract shared by every indicator in this
// package: a human-readable label and a return to the initial state.
// Reset is idempotent and preserves configuration.
type Indicator interface {
	fmt.Stringer
	Reset()
}

// PeriodIndicator is an Indicator with a configured lookback horizon,
// fixed for the instance's lifetime.
type PeriodIndicator interface {
	Indicator
	Period() int
}

// ValueIndicator is a scalar-driven indicator. Next mutates state and
// returns the current value; it never fails — non-finite inputs propagate
// through the arithmetic. NextBar extracts the close and delegates.
type ValueIndicator interface {
	PeriodIndicator
	Next(v float64) float64
	NextBar(bar HasClose) float64
}
