// Package stream fans a sequence of market bars out to named indicator
// calculators, one instance set per symbol. It is an in-process layer
// only: no transport, no persistence. The heavy lifting is done by
// pkg/indicator; this package adds naming, per-symbol state, logging and
// metrics around it.
package stream

import (
	"errors"
	"time"
)

var (
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidBar       = errors.New("invalid bar (high < low)")
)

// Bar is one finalized observation for a symbol. Fields are exported for
// convenient construction; the engine never mutates a bar after receiving
// it.
type Bar struct {
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Validate validates a Bar before it enters the engine.
func (b *Bar) Validate() error {
	if b.Symbol == "" {
		return ErrInvalidSymbol
	}
	if b.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	if b.High < b.Low {
		return ErrInvalidBar
	}
	return nil
}

// barView exposes a Bar through the pkg/indicator capability interfaces,
// so calculators feed indicators the same way any caller-defined
// observation type would.
type barView struct {
	b *Bar
}

func (v barView) Open() float64   { return v.b.Open }
func (v barView) High() float64   { return v.b.High }
func (v barView) Low() float64    { return v.b.Low }
func (v barView) Close() float64  { return v.b.Close }
func (v barView) Volume() float64 { return v.b.Volume }
