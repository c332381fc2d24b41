package stream

import (
	"sync"
	"time"
)

// SymbolState holds the calculator instances for a single symbol. The
// indicators themselves keep no history, so neither does the state: just
// the calculators and the time of the last bar.
type SymbolState struct {
	symbol      string
	mu          sync.RWMutex
	calculators map[string]Calculator
	lastUpdate  time.Time
}

// NewSymbolState creates an empty state for a symbol.
func NewSymbolState(symbol string) *SymbolState {
	return &SymbolState{
		symbol:      symbol,
		calculators: make(map[string]Calculator),
	}
}

// Symbol returns the symbol this state belongs to.
func (s *SymbolState) Symbol() string {
	return s.symbol
}

// AddCalculator adds a calculator to this symbol's state.
func (s *SymbolState) AddCalculator(calc Calculator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calculators[calc.Name()] = calc
}

// RemoveCalculator removes a calculator from this symbol's state.
func (s *SymbolState) RemoveCalculator(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.calculators, name)
}

// Update feeds one bar to every calculator. Bars for other symbols are
// ignored.
func (s *SymbolState) Update(bar *Bar) error {
	if bar == nil {
		return nil
	}
	if bar.Symbol != s.symbol {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, calc := range s.calculators {
		_, _ = calc.Update(bar)
	}

	s.lastUpdate = bar.Timestamp
	return nil
}

// GetValue retrieves the current value of one calculator. A missing or
// not-yet-ready calculator yields 0.
func (s *SymbolState) GetValue(name string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	calc, exists := s.calculators[name]
	if !exists {
		return 0, nil
	}

	return calc.Value()
}

// GetAllValues returns the current value of every ready calculator.
func (s *SymbolState) GetAllValues() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]float64)
	for name, calc := range s.calculators {
		if calc.IsReady() {
			if val, err := calc.Value(); err == nil {
				values[name] = val
			}
		}
	}

	return values
}

// GetLastUpdate returns the timestamp of the last processed bar.
func (s *SymbolState) GetLastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastUpdate
}

// Reset returns every calculator to its initial state.
func (s *SymbolState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, calc := range s.calculators {
		calc.Reset()
	}
	s.lastUpdate = time.Time{}
}

// Replay resets the state and re-feeds the given bars in order. Because
// every calculator is a deterministic function of its input sequence,
// replaying the same bars reproduces the same values.
func (s *SymbolState) Replay(bars []*Bar) error {
	s.Reset()

	for _, bar := range bars {
		if err := s.Update(bar); err != nil {
			return err
		}
	}

	return nil
}
