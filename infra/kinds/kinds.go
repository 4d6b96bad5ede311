// Package kinds provides the built-in catalog variants. Importing it
// registers their factories on the product default registry.
package kinds

import (
	"fmt"

	"github.com/jmorel/catalog/core/product"
	"github.com/jmorel/catalog/core/registry"
)

// init registers the built-in product kinds.
func init() {
	_ = product.Register("book", newBook)
	_ = product.Register("movie", newMovie)
	_ = product.Register("album", newAlbum)
}

// Builtin lists the kinds registered by this package.
func Builtin() []string {
	return []string{"album", "book", "movie"}
}

func validateCommon(name string, price float64) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative: %v", price)
	}
	return nil
}

func newBook(attrs map[string]any) (product.Product, error) {
	var c struct {
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Author string  `json:"author"`
		Pages  int     `json:"pages"`
	}
	if err := registry.Decode(attrs, &c); err != nil {
		return nil, err
	}
	if err := validateCommon(c.Name, c.Price); err != nil {
		return nil, err
	}
	if c.Author == "" {
		return nil, fmt.Errorf("author is required")
	}
	if c.Pages < 0 {
		return nil, fmt.Errorf("pages must not be negative: %d", c.Pages)
	}
	return &Book{name: c.Name, price: c.Price, author: c.Author, pages: c.Pages}, nil
}

func newMovie(attrs map[string]any) (product.Product, error) {
	var c struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Director string  `json:"director"`
		Minutes  int     `json:"minutes"`
	}
	if err := registry.Decode(attrs, &c); err != nil {
		return nil, err
	}
	if err := validateCommon(c.Name, c.Price); err != nil {
		return nil, err
	}
	if c.Director == "" {
		return nil, fmt.Errorf("director is required")
	}
	if c.Minutes < 0 {
		return nil, fmt.Errorf("minutes must not be negative: %d", c.Minutes)
	}
	return &Movie{name: c.Name, price: c.Price, director: c.Director, minutes: c.Minutes}, nil
}

func newAlbum(attrs map[string]any) (product.Product, error) {
	var c struct {
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Artist string  `json:"artist"`
		Tracks int     `json:"tracks"`
	}
	if err := registry.Decode(attrs, &c); err != nil {
		return nil, err
	}
	if err := validateCommon(c.Name, c.Price); err != nil {
		return nil, err
	}
	if c.Artist == "" {
		return nil, fmt.Errorf("artist is required")
	}
	if c.Tracks < 0 {
		return nil, fmt.Errorf("tracks must not be negative: %d", c.Tracks)
	}
	return &Album{name: c.Name, price: c.Price, artist: c.Artist, tracks: c.Tracks}, nil
}
