package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SeanEClarke/ta-rs/pkg/logger"
)

// OnValuesUpdated is called after a bar has been fanned out, with the
// current values of every ready calculator for that symbol.
type OnValuesUpdated func(symbol string, values map[string]float64)

// Engine fans bars out to per-symbol calculator sets. Calculator
// instances are created lazily, from the registry, the first time a
// symbol is seen.
type Engine struct {
	registry        *Registry
	required        map[string]bool // empty = all registered calculators
	symbolStates    map[string]*SymbolState
	onValuesUpdated OnValuesUpdated
	mu              sync.RWMutex
	ctx             context.Context
	cancel          context.CancelFunc
}

// NewEngine creates an engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		registry:     registry,
		required:     make(map[string]bool),
		symbolStates: make(map[string]*SymbolState),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// SetRequired restricts which registered calculators are instantiated
// per symbol. An empty map means all of them.
func (e *Engine) SetRequired(required map[string]bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.required = required
}

// SetOnValuesUpdated sets the callback invoked after each processed bar.
func (e *Engine) SetOnValuesUpdated(callback OnValuesUpdated) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onValuesUpdated = callback
}

// ProcessBar validates one bar and feeds it to the symbol's calculators.
func (e *Engine) ProcessBar(bar *Bar) error {
	if bar == nil {
		return fmt.Errorf("bar cannot be nil")
	}

	if err := bar.Validate(); err != nil {
		barsRejected.WithLabelValues(err.Error()).Inc()
		return fmt.Errorf("invalid bar: %w", err)
	}

	start := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	state, exists := e.symbolStates[bar.Symbol]
	if !exists {
		state = e.newSymbolState(bar.Symbol)
		e.symbolStates[bar.Symbol] = state
		trackedSymbols.Set(float64(len(e.symbolStates)))
	}

	if err := state.Update(bar); err != nil {
		return err
	}

	barsProcessed.WithLabelValues(bar.Symbol).Inc()
	barProcessDuration.Observe(time.Since(start).Seconds())

	if e.onValuesUpdated != nil {
		values := state.GetAllValues()
		if len(values) > 0 {
			e.onValuesUpdated(bar.Symbol, values)
		}
	}

	return nil
}

// newSymbolState instantiates the required calculators for a new symbol.
// Callers must hold e.mu.
func (e *Engine) newSymbolState(symbol string) *SymbolState {
	state := NewSymbolState(symbol)

	all := len(e.required) == 0
	for _, name := range e.registry.ListAvailable() {
		if !all && !e.required[name] {
			continue
		}

		factory, exists := e.registry.GetFactory(name)
		if !exists {
			continue
		}

		calc, err := factory()
		if err != nil {
			logger.Warn("Failed to create calculator",
				logger.String("name", name),
				logger.String("symbol", symbol),
				logger.ErrorField(err),
			)
			continue
		}

		state.AddCalculator(calc)
		calculatorsCreated.WithLabelValues(name).Inc()
	}

	logger.Debug("Created symbol state",
		logger.String("symbol", symbol),
	)

	return state
}

// GetValues returns all current calculator values for a symbol.
func (e *Engine) GetValues(symbol string) (map[string]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, exists := e.symbolStates[symbol]
	if !exists {
		return nil, fmt.Errorf("symbol %s not found", symbol)
	}

	return state.GetAllValues(), nil
}

// ResetSymbol returns every calculator of a symbol to its initial state.
func (e *Engine) ResetSymbol(symbol string) error {
	e.mu.RLock()
	state, exists := e.symbolStates[symbol]
	e.mu.RUnlock()

	if !exists {
		return fmt.Errorf("symbol %s not found", symbol)
	}

	state.Reset()
	return nil
}

// Symbols returns all symbols the engine tracks.
func (e *Engine) Symbols() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	symbols := make([]string, 0, len(e.symbolStates))
	for symbol := range e.symbolStates {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// SymbolCount returns the number of tracked symbols.
func (e *Engine) SymbolCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.symbolStates)
}

// Stop cancels the engine's context.
func (e *Engine) Stop() {
	e.cancel()
}

// Context returns the engine's context.
func (e *Engine) Context() context.Context {
	return e.ctx
}
