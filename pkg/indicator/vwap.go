package indicator

import "math"

// vwapVolumeTolerance guards the ratio against a near-zero accumulated
// volume. Below it the raw price-volume sum is returned instead of the
// ratio; the guarded behavior is part of the observable contract.
const vwapVolumeTolerance = 1e-4

// VWAP calculates the cumulative Volume Weighted Average Price.
//
// VWAP = Sum(TypicalPrice * Volume) / Sum(Volume), TypicalPrice = (H+L+C)/3
//
// Unlike the smoothers, VWAP is a pure accumulator: two running sums since
// start (or the last Reset), no period, no warm-up flag. Requires the
// high, low, close and volume capabilities.
type VWAP struct {
	accumulatedPriceVolume float64
	accumulatedVolume      float64
}

// NewVWAP creates a VWAP. It takes no parameters and cannot fail.
func NewVWAP() *VWAP {
	return &VWAP{}
}

// Next adds one bar to the running sums and returns the volume-weighted
// average so far. While the accumulated volume is within
// vwapVolumeTolerance of zero, the raw price-volume sum is returned.
func (v *VWAP) Next(bar HLCV) float64 {
	pv := (bar.High() + bar.Low() + bar.Close()) / 3.0 * bar.Volume()

	v.accumulatedPriceVolume += pv
	v.accumulatedVolume += bar.Volume()

	if math.Abs(v.accumulatedVolume) < vwapVolumeTolerance {
		return v.accumulatedPriceVolume
	}

	return v.accumulatedPriceVolume / v.accumulatedVolume
}

// Reset zeroes both accumulators.
func (v *VWAP) Reset() {
	v.accumulatedPriceVolume = 0
	v.accumulatedVolume = 0
}

func (v *VWAP) String() string {
	return "VWAP"
}

var _ Indicator = (*VWAP)(nil)
