package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeanEClarke/ta-rs/pkg/indicator"
)

func closeBar(symbol string, ts time.Time, close float64) *Bar {
	return &Bar{
		Symbol:    symbol,
		Timestamp: ts,
		Open:      close,
		High:      close,
		Low:       close,
		Close:     close,
		Volume:    1000,
	}
}

func TestCloseCalculator_Update(t *testing.T) {
	dema, err := indicator.NewDEMA(3)
	require.NoError(t, err)
	calc := NewCloseCalculator("dema_3", dema)

	assert.Equal(t, "dema_3", calc.Name())
	assert.False(t, calc.IsReady())

	_, err = calc.Value()
	assert.Error(t, err)

	now := time.Now()
	inputs := []float64{2.0, 5.0, 1.0, 6.25}
	expected := []float64{2.0, 4.25, 2.0, 5.125}

	for i, in := range inputs {
		val, err := calc.Update(closeBar("AAPL", now.Add(time.Duration(i)*time.Minute), in))
		require.NoError(t, err)
		assert.Equal(t, expected[i], val, "step %d", i)
	}

	assert.True(t, calc.IsReady())
	val, err := calc.Value()
	require.NoError(t, err)
	assert.Equal(t, 5.125, val)
}

func TestCloseCalculator_NilBar(t *testing.T) {
	calc := NewCloseCalculator("ema_9", indicator.NewDefaultEMA())

	_, err := calc.Update(nil)
	assert.Error(t, err)
}

func TestCloseCalculator_Reset(t *testing.T) {
	trix, err := indicator.NewTRIX(3)
	require.NoError(t, err)
	calc := NewCloseCalculator("trix_3", trix)

	now := time.Now()
	for i, in := range []float64{16.0, 17.0, 17.0} {
		_, err := calc.Update(closeBar("AAPL", now.Add(time.Duration(i)*time.Minute), in))
		require.NoError(t, err)
	}

	calc.Reset()
	assert.False(t, calc.IsReady())

	// After reset the wrapped indicator warms up again.
	val, err := calc.Update(closeBar("AAPL", now, 42.0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, val)
}

func TestVWAPCalculator_Update(t *testing.T) {
	calc := NewVWAPCalculator()
	assert.Equal(t, "vwap", calc.Name())

	now := time.Now()
	bars := []*Bar{
		{Symbol: "AAPL", Timestamp: now, High: 1.3, Low: 0.8, Close: 1.1, Volume: 100},
		{Symbol: "AAPL", Timestamp: now.Add(time.Minute), High: 1.4, Low: 1.0, Close: 1.3, Volume: 250},
		{Symbol: "AAPL", Timestamp: now.Add(2 * time.Minute), High: 1.6, Low: 1.3, Close: 1.5, Volume: 150},
	}

	var val float64
	for _, bar := range bars {
		var err error
		val, err = calc.Update(bar)
		require.NoError(t, err)
	}

	assert.InDelta(t, 1.27, val, 1e-4)
}

func TestCalculatorFactories(t *testing.T) {
	cases := []struct {
		factory CalculatorFactory
		name    string
	}{
		{CreateEMA(9), "ema_9"},
		{CreateDEMA(9), "dema_9"},
		{CreateTRIX(15), "trix_15"},
		{CreateVWAP(), "vwap"},
	}

	for _, tc := range cases {
		calc, err := tc.factory()
		require.NoError(t, err)
		assert.Equal(t, tc.name, calc.Name())
	}
}

func TestCalculatorFactories_InvalidPeriod(t *testing.T) {
	for _, factory := range []CalculatorFactory{CreateEMA(0), CreateDEMA(0), CreateTRIX(0)} {
		_, err := factory()
		require.Error(t, err)
		assert.ErrorIs(t, err, indicator.ErrInvalidParameter)
	}
}
