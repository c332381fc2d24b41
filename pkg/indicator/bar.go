package indicator

// Bar is a ready-made observation carrying the full OHLCV capability set.
// Fields are unexported; once handed to an indicator a bar is treated as
// immutable. The With* setters chain, which keeps fixtures short:
//
//	bar := indicator.NewBar().WithClose(1.1).WithVolume(100)
type Bar struct {
	open   float64
	high   float64
	low    float64
	close  float64
	volume float64
}

// NewBar returns a zero-valued bar.
func NewBar() Bar {
	return Bar{}
}

// WithOpen returns a copy of the bar with the open price set.
func (b Bar) WithOpen(v float64) Bar {
	b.open = v
	return b
}

// WithHigh returns a copy of the bar with the high price set.
func (b Bar) WithHigh(v float64) Bar {
	b.high = v
	return b
}

// WithLow returns a copy of the bar with the low price set.
func (b Bar) WithLow(v float64) Bar {
	b.low = v
	return b
}

// WithClose returns a copy of the bar with the close price set.
func (b Bar) WithClose(v float64) Bar {
	b.close = v
	return b
}

// WithVolume returns a copy of the bar with the volume set.
func (b Bar) WithVolume(v float64) Bar {
	b.volume = v
	return b
}

// Open returns the opening price.
func (b Bar) Open() float64 { return b.open }

// High returns the period high.
func (b Bar) High() float64 { return b.high }

// Low returns the period low.
func (b Bar) Low() float64 { return b.low }

// Close returns the closing price.
func (b Bar) Close() float64 { return b.close }

// Volume returns the traded volume.
func (b Bar) Volume() float64 { return b.volume }

var _ OHLCV = Bar{}
