package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechanSMA(t *testing.T) {
	calc, err := CreateTechanSMA(2, time.Minute)()
	require.NoError(t, err)
	assert.Equal(t, "sma_2", calc.Name())

	now := time.Now()
	_, err = calc.Update(closeBar("AAPL", now, 1.0))
	require.NoError(t, err)
	val, err := calc.Update(closeBar("AAPL", now.Add(time.Minute), 3.0))
	require.NoError(t, err)

	assert.InDelta(t, 2.0, val, 1e-9)
	assert.True(t, calc.IsReady())
}

func TestTechanRSI(t *testing.T) {
	calc, err := CreateTechanRSI(3, time.Minute)()
	require.NoError(t, err)
	assert.Equal(t, "rsi_3", calc.Name())

	now := time.Now()
	closes := []float64{10.0, 11.0, 10.5, 12.0, 11.5, 13.0}
	var val float64
	for i, c := range closes {
		val, err = calc.Update(closeBar("AAPL", now.Add(time.Duration(i)*time.Minute), c))
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, val, 0.0)
	assert.LessOrEqual(t, val, 100.0)
}

func TestTechanCalculator_Reset(t *testing.T) {
	calc, err := CreateTechanSMA(2, time.Minute)()
	require.NoError(t, err)

	now := time.Now()
	_, err = calc.Update(closeBar("AAPL", now, 1.0))
	require.NoError(t, err)

	calc.Reset()
	assert.False(t, calc.IsReady())

	// A fresh series behaves like a brand-new calculator.
	_, err = calc.Update(closeBar("AAPL", now, 5.0))
	require.NoError(t, err)
	val, err := calc.Update(closeBar("AAPL", now.Add(time.Minute), 7.0))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, val, 1e-9)
}

func TestTechanCalculator_NilBar(t *testing.T) {
	calc, err := CreateTechanSMA(2, time.Minute)()
	require.NoError(t, err)

	_, err = calc.Update(nil)
	assert.Error(t, err)
}

func TestTechanFactories_InvalidPeriod(t *testing.T) {
	_, err := CreateTechanSMA(0, time.Minute)()
	assert.Error(t, err)

	_, err = CreateTechanRSI(0, time.Minute)()
	assert.Error(t, err)
}
