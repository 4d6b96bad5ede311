package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ A int }

type sampleConf struct {
	A int `json:"a"`
}

// Test registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := New[*sample]()
	if err := reg.Register("s", func(attrs map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(attrs, &c); err != nil {
			return nil, err
		}
		return &sample{A: c.A}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create("s", map[string]any{"a": 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.A != 3 {
		t.Fatalf("expected 3 got %d", inst.A)
	}
}

func TestRegistry_HasAfterRegister(t *testing.T) {
	reg := New[int]()
	assert.False(t, reg.Has("x"))
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.True(t, reg.Has("x"))
}

func TestRegistry_UnknownKey(t *testing.T) {
	reg := New[int]()
	_, err := reg.Create("movie", nil)
	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "movie", unknown.Key)
	assert.Contains(t, err.Error(), "movie")
}

func TestRegistry_DuplicateKeepsOriginal(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))

	err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil })
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "x", dup.Key)

	v, err := reg.Create("x", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "original factory must remain after a rejected re-registration")
}

func TestRegistry_Replace(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	require.NoError(t, reg.Replace("x", func(map[string]any) (int, error) { return 2, nil }))
	v, err := reg.Create("x", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	// Replace on a fresh key behaves like Register.
	require.NoError(t, reg.Replace("y", func(map[string]any) (int, error) { return 3, nil }))
	assert.True(t, reg.Has("y"))
}

func TestRegistry_NilFactoryAndEmptyKey(t *testing.T) {
	reg := New[int]()
	assert.Error(t, reg.Register("x", nil))
	assert.Error(t, reg.Register("", func(map[string]any) (int, error) { return 0, nil }))
	assert.Error(t, reg.Replace("x", nil))
	assert.False(t, reg.Has("x"))
}

func TestRegistry_FactoryErrorWrapsCause(t *testing.T) {
	reg := New[int]()
	cause := errors.New("price must be positive")
	require.NoError(t, reg.Register("bad", func(map[string]any) (int, error) { return 0, cause }))

	_, err := reg.Create("bad", nil)
	var ferr *FactoryError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "bad", ferr.Key)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad")
}

func TestRegistry_Keys(t *testing.T) {
	reg := New[int]()
	for _, k := range []string{"movie", "album", "book"} {
		require.NoError(t, reg.Register(k, func(map[string]any) (int, error) { return 0, nil }))
	}
	assert.Equal(t, []string{"album", "book", "movie"}, reg.Keys())
}

// Concurrent creates and registrations must not race; readers may never see a
// partially inserted entry.
func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("seed", func(map[string]any) (int, error) { return 0, nil }))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("k%d", i), func(map[string]any) (int, error) { return i, nil })
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := reg.Create("seed", nil); err != nil {
					t.Errorf("create seed: %v", err)
					return
				}
				reg.Has("k3")
			}
		}()
	}
	wg.Wait()
	assert.Len(t, reg.Keys(), 9)
}

func TestDecode_BadInput(t *testing.T) {
	var c sampleConf
	assert.Error(t, Decode(map[string]any{"a": "not a number"}, &c))
}
