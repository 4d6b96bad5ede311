// Package product defines the capability interface shared by all catalog
// variants and the default registry used to construct them by kind.
package product

import (
	"github.com/jmorel/catalog/core/registry"
)

// Product is the minimal capability a catalog consumer requires of a variant.
// Concrete kinds carry their own attributes behind this interface and must
// implement both operations in full.
type Product interface {
	Name() string
	Price() float64
}

// Spec is the config-facing description of one catalog item.
type Spec = registry.Spec

var defaultRegistry = registry.New[Product]()

// Register adds a product factory identified by kind.
func Register(kind string, f registry.Factory[Product]) error {
	return defaultRegistry.Register(kind, f)
}

// Replace installs a product factory, overwriting any existing one for kind.
func Replace(kind string, f registry.Factory[Product]) error {
	return defaultRegistry.Replace(kind, f)
}

// New constructs a Product from its spec using the default registry.
func New(spec Spec) (Product, error) {
	return defaultRegistry.Create(spec.Kind, spec.Attrs)
}

// Has reports whether a factory is registered for kind.
func Has(kind string) bool {
	return defaultRegistry.Has(kind)
}

// Kinds returns the sorted registered kinds.
func Kinds() []string {
	return defaultRegistry.Keys()
}

// SetObserver attaches an observer to the default registry.
func SetObserver(obs registry.Observer) {
	defaultRegistry.SetObserver(obs)
}
