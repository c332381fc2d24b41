package stream

import (
	"fmt"
	"math"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// TechanCalculator exposes a techan indicator through the Calculator
// interface. It is the escape hatch for formulas this library does not
// implement natively: techan keeps the candle history it needs, while the
// adapter keeps the engine-facing contract identical to the native
// calculators.
type TechanCalculator struct {
	name      string
	series    *techan.TimeSeries
	build     func(series *techan.TimeSeries) techan.Indicator
	indicator techan.Indicator
	barPeriod time.Duration
	ready     bool
}

// NewTechanCalculator creates a calculator around a techan indicator.
// build is invoked with the calculator's own candle series, and again on
// every Reset; barPeriod is the duration one bar covers.
func NewTechanCalculator(
	name string,
	barPeriod time.Duration,
	build func(series *techan.TimeSeries) techan.Indicator,
) *TechanCalculator {
	series := techan.NewTimeSeries()

	return &TechanCalculator{
		name:      name,
		series:    series,
		build:     build,
		indicator: build(series),
		barPeriod: barPeriod,
	}
}

func (t *TechanCalculator) Name() string {
	return t.name
}

func (t *TechanCalculator) Update(bar *Bar) (float64, error) {
	if bar == nil {
		return 0, fmt.Errorf("bar cannot be nil")
	}

	period := techan.NewTimePeriod(bar.Timestamp, t.barPeriod)
	candle := techan.NewCandle(period)
	candle.OpenPrice = big.NewDecimal(bar.Open)
	candle.MaxPrice = big.NewDecimal(bar.High)
	candle.MinPrice = big.NewDecimal(bar.Low)
	candle.ClosePrice = big.NewDecimal(bar.Close)
	candle.Volume = big.NewDecimal(bar.Volume)

	t.series.AddCandle(candle)

	lastIndex := t.series.LastIndex()
	if lastIndex < 0 {
		return 0, nil
	}

	value := t.indicator.Calculate(lastIndex).Float()
	if !math.IsNaN(value) {
		t.ready = true
	}
	return value, nil
}

func (t *TechanCalculator) Value() (float64, error) {
	if !t.ready {
		return 0, fmt.Errorf("%s not ready: no bars processed", t.name)
	}
	return t.indicator.Calculate(t.series.LastIndex()).Float(), nil
}

func (t *TechanCalculator) Reset() {
	t.series = techan.NewTimeSeries()
	t.indicator = t.build(t.series)
	t.ready = false
}

func (t *TechanCalculator) IsReady() bool {
	return t.ready
}

// CreateTechanSMA returns a factory producing techan-backed SMA
// calculators named "sma_<period>".
func CreateTechanSMA(period int, barPeriod time.Duration) CalculatorFactory {
	return func() (Calculator, error) {
		if period < 1 {
			return nil, fmt.Errorf("sma: period must be at least 1, got %d", period)
		}
		return NewTechanCalculator(
			fmt.Sprintf("sma_%d", period),
			barPeriod,
			func(series *techan.TimeSeries) techan.Indicator {
				return techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), period)
			},
		), nil
	}
}

// CreateTechanRSI returns a factory producing techan-backed RSI
// calculators named "rsi_<period>".
func CreateTechanRSI(period int, barPeriod time.Duration) CalculatorFactory {
	return func() (Calculator, error) {
		if period < 1 {
			return nil, fmt.Errorf("rsi: period must be at least 1, got %d", period)
		}
		return NewTechanCalculator(
			fmt.Sprintf("rsi_%d", period),
			barPeriod,
			func(series *techan.TimeSeries) techan.Indicator {
				return techan.NewRelativeStrengthIndexIndicator(techan.NewClosePriceIndicator(series), period)
			},
		), nil
	}
}

var _ Calculator = (*TechanCalculator)(nil)
