package indicator

import (
	"math"
	"testing"
)

func TestVWAP_Next(t *testing.T) {
	vwap := NewVWAP()

	bar := NewBar().WithHigh(1.3).WithLow(0.8).WithClose(1.1).WithVolume(100)
	if got := vwap.Next(bar); got != (1.3+0.8+1.1)/3.0 {
		t.Errorf("Expected typical price of the first bar, got %f", got)
	}
}

func TestVWAP_Accumulation(t *testing.T) {
	vwap := NewVWAP()

	vwap.Next(NewBar().WithHigh(1.3).WithLow(0.8).WithClose(1.1).WithVolume(100))
	vwap.Next(NewBar().WithHigh(1.4).WithLow(1.0).WithClose(1.3).WithVolume(250))
	got := vwap.Next(NewBar().WithHigh(1.6).WithLow(1.3).WithClose(1.5).WithVolume(150))

	if math.Abs(got-1.27) > 1e-4 {
		t.Errorf("Expected VWAP within 1e-4 of 1.27, got %f", got)
	}

	// For nonzero accumulated volume the output is exactly the ratio of
	// the two running sums.
	want := ((1.3+0.8+1.1)/3.0*100 + (1.4+1.0+1.3)/3.0*250 + (1.6+1.3+1.5)/3.0*150) / 500
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestVWAP_ZeroVolumeGuard(t *testing.T) {
	vwap := NewVWAP()

	// All-zero-volume run: the accumulated volume stays below the
	// tolerance, so the raw price-volume sum comes back instead of the
	// ratio.
	bar := NewBar().WithHigh(2.0).WithLow(1.0).WithClose(1.5).WithVolume(0)
	if got := vwap.Next(bar); got != 0.0 {
		t.Errorf("Expected raw sum 0.0 on zero-volume bar, got %f", got)
	}

	// Offsetting volumes drive the accumulated volume back to zero while
	// the price-volume sum stays nonzero; the guard must return the sum.
	vwap.Reset()
	vwap.Next(NewBar().WithHigh(1.0).WithLow(1.0).WithClose(1.0).WithVolume(100))
	got := vwap.Next(NewBar().WithHigh(2.0).WithLow(2.0).WithClose(2.0).WithVolume(-100))
	if got != -100.0 {
		t.Errorf("Expected raw accumulated sum -100.0, got %f", got)
	}
}

func TestVWAP_Reset(t *testing.T) {
	vwap := NewVWAP()

	bar := NewBar().WithHigh(1.3).WithLow(0.8).WithClose(1.1).WithVolume(100)
	if got := vwap.Next(bar); got != (1.3+0.8+1.1)/3.0 {
		t.Fatalf("Unexpected first value %f", got)
	}

	vwap.Reset()

	if got := vwap.Next(bar); got != (1.3+0.8+1.1)/3.0 {
		t.Errorf("Expected the same value after reset, got %f", got)
	}
}

func TestVWAP_String(t *testing.T) {
	vwap := NewVWAP()
	if vwap.String() != "VWAP" {
		t.Errorf("Expected 'VWAP', got '%s'", vwap.String())
	}
}
