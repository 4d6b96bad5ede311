// Package registry provides a small generic strategy registry mapping a
// discriminator key to a factory producing implementations of a shared
// interface. Factories receive a map of raw attributes and decode them into
// typed structs before constructing the concrete variant.
//
// Example usage:
//
//	reg := registry.New[io.Reader]()
//	reg.Register("file", func(attrs map[string]any) (io.Reader, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := registry.Decode(attrs, &c); err != nil {
//	        return nil, err
//	    }
//	    return os.Open(c.Path)
//	})
//	r, err := reg.Create("file", map[string]any{"path": "foo"})
//
// Reads (Create, Has, Keys) may run concurrently; Register and Replace are
// serialized against readers so a partially inserted entry is never observed.
package registry
