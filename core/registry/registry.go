package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Spec pairs a discriminator key with the raw attributes its factory
// decodes.
type Spec struct {
	Kind  string         `json:"kind"`
	Attrs map[string]any `json:"attrs"`
}

// Factory constructs an implementation of T from raw attributes. Attribute
// validation is the factory's responsibility; the registry passes attrs
// through untouched.
type Factory[T any] func(attrs map[string]any) (T, error)

// Observer is notified of registry activity. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveCreate(key string, outcome string, d time.Duration)
	ObserveRegistration(key string, replaced bool)
}

// Registry stores factories keyed by discriminator.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
	obs       Observer
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// SetObserver attaches an observer for create and registration activity.
// Passing nil detaches the current one.
func (r *Registry[T]) SetObserver(obs Observer) {
	r.mu.Lock()
	r.obs = obs
	r.mu.Unlock()
}

// Register adds a factory for the given key. Registering an existing key
// fails with a DuplicateKeyError and leaves the original mapping in place;
// use Replace to overwrite explicitly.
func (r *Registry[T]) Register(key string, f Factory[T]) error {
	if key == "" {
		return fmt.Errorf("empty registry key")
	}
	if f == nil {
		return fmt.Errorf("nil factory for %s", key)
	}
	r.mu.Lock()
	if _, ok := r.factories[key]; ok {
		r.mu.Unlock()
		return &DuplicateKeyError{Key: key}
	}
	r.factories[key] = f
	obs := r.obs
	r.mu.Unlock()
	if obs != nil {
		obs.ObserveRegistration(key, false)
	}
	return nil
}

// Replace installs a factory for the given key, overwriting any existing
// mapping. Overwriting is deliberate here, never a side effect of Register.
func (r *Registry[T]) Replace(key string, f Factory[T]) error {
	if key == "" {
		return fmt.Errorf("empty registry key")
	}
	if f == nil {
		return fmt.Errorf("nil factory for %s", key)
	}
	r.mu.Lock()
	_, replaced := r.factories[key]
	r.factories[key] = f
	obs := r.obs
	r.mu.Unlock()
	if obs != nil {
		obs.ObserveRegistration(key, replaced)
	}
	return nil
}

// Create looks up the factory for key and invokes it with attrs. An
// unregistered key fails with an UnknownKeyError; a factory failure comes
// back as a FactoryError wrapping the original cause.
func (r *Registry[T]) Create(key string, attrs map[string]any) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[key]
	obs := r.obs
	r.mu.RUnlock()
	if !ok {
		if obs != nil {
			obs.ObserveCreate(key, OutcomeUnknown, 0)
		}
		var zero T
		return zero, &UnknownKeyError{Key: key}
	}
	start := time.Now()
	v, err := f(attrs)
	if err != nil {
		if obs != nil {
			obs.ObserveCreate(key, OutcomeError, time.Since(start))
		}
		var zero T
		return zero, &FactoryError{Key: key, Err: err}
	}
	if obs != nil {
		obs.ObserveCreate(key, OutcomeOK, time.Since(start))
	}
	return v, nil
}

// Has reports whether a factory is registered for key.
func (r *Registry[T]) Has(key string) bool {
	r.mu.RLock()
	_, ok := r.factories[key]
	r.mu.RUnlock()
	return ok
}

// Keys returns a sorted snapshot of the registered keys.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Create outcomes reported to observers.
const (
	OutcomeOK      = "ok"
	OutcomeUnknown = "unknown_key"
	OutcomeError   = "factory_error"
)

// Decode fills out the provided struct from raw attributes using json tags.
func Decode(attrs map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(attrs)
}
