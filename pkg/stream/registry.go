package stream

import (
	"fmt"
	"sync"
)

// Registry manages the calculator factories available to an engine.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]CalculatorFactory
	metadata  map[string]Metadata
}

// Metadata describes a registered calculator.
type Metadata struct {
	Name        string
	Description string
	Category    string // "trend", "momentum", "volume"
	Parameters  map[string]interface{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]CalculatorFactory),
		metadata:  make(map[string]Metadata),
	}
}

// Register registers a factory under a unique name.
func (r *Registry) Register(name string, factory CalculatorFactory, metadata Metadata) error {
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	if name == "" {
		return fmt.Errorf("calculator name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("calculator %q already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = metadata
	return nil
}

// GetFactory returns the factory registered under name.
func (r *Registry) GetFactory(name string) (CalculatorFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, exists := r.factories[name]
	return factory, exists
}

// GetMetadata returns the metadata registered under name.
func (r *Registry) GetMetadata(name string) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	metadata, exists := r.metadata[name]
	return metadata, exists
}

// ListAvailable returns the names of all registered calculators.
func (r *Registry) ListAvailable() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Unregister removes a calculator from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return fmt.Errorf("calculator %q not found", name)
	}

	delete(r.factories, name)
	delete(r.metadata, name)
	return nil
}

// RegisterDefaults registers the stock indicators at their conventional
// periods, as configured.
func RegisterDefaults(registry *Registry, cfg IndicatorConfig) error {
	if err := registry.Register(
		fmt.Sprintf("ema_%d", cfg.EMAPeriod),
		CreateEMA(cfg.EMAPeriod),
		Metadata{
			Name:        fmt.Sprintf("ema_%d", cfg.EMAPeriod),
			Description: fmt.Sprintf("Exponential Moving Average (%d period)", cfg.EMAPeriod),
			Category:    "trend",
			Parameters:  map[string]interface{}{"period": cfg.EMAPeriod},
		},
	); err != nil {
		return err
	}

	if err := registry.Register(
		fmt.Sprintf("dema_%d", cfg.DEMAPeriod),
		CreateDEMA(cfg.DEMAPeriod),
		Metadata{
			Name:        fmt.Sprintf("dema_%d", cfg.DEMAPeriod),
			Description: fmt.Sprintf("Double Exponential Moving Average (%d period)", cfg.DEMAPeriod),
			Category:    "trend",
			Parameters:  map[string]interface{}{"period": cfg.DEMAPeriod},
		},
	); err != nil {
		return err
	}

	if err := registry.Register(
		fmt.Sprintf("trix_%d", cfg.TRIXPeriod),
		CreateTRIX(cfg.TRIXPeriod),
		Metadata{
			Name:        fmt.Sprintf("trix_%d", cfg.TRIXPeriod),
			Description: fmt.Sprintf("Triple Exponential Average rate of change (%d period)", cfg.TRIXPeriod),
			Category:    "momentum",
			Parameters:  map[string]interface{}{"period": cfg.TRIXPeriod},
		},
	); err != nil {
		return err
	}

	return registry.Register(
		"vwap",
		CreateVWAP(),
		Metadata{
			Name:        "vwap",
			Description: "Cumulative Volume Weighted Average Price",
			Category:    "volume",
		},
	)
}
