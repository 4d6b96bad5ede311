package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorel/catalog/core/registry"
)

type fixed struct {
	name  string
	price float64
}

func (f fixed) Name() string   { return f.name }
func (f fixed) Price() float64 { return f.price }

func TestDefaultRegistry(t *testing.T) {
	require.NoError(t, Register("test-widget", func(map[string]any) (Product, error) {
		return fixed{name: "widget", price: 1}, nil
	}))
	assert.True(t, Has("test-widget"))
	assert.Contains(t, Kinds(), "test-widget")

	p, err := New(Spec{Kind: "test-widget"})
	require.NoError(t, err)
	assert.Equal(t, "widget", p.Name())

	err = Register("test-widget", func(map[string]any) (Product, error) {
		return fixed{name: "other", price: 2}, nil
	})
	var dup *registry.DuplicateKeyError
	require.ErrorAs(t, err, &dup)

	require.NoError(t, Replace("test-widget", func(map[string]any) (Product, error) {
		return fixed{name: "other", price: 2}, nil
	}))
	p, err = New(Spec{Kind: "test-widget"})
	require.NoError(t, err)
	assert.Equal(t, "other", p.Name())
}
