package kinds

import "encoding/json"

// Book is an immutable book variant.
type Book struct {
	name   string
	price  float64
	author string
	pages  int
}

func (b *Book) Name() string   { return b.name }
func (b *Book) Price() float64 { return b.price }

// Author returns the book author.
func (b *Book) Author() string { return b.author }

// Pages returns the page count, zero when unknown.
func (b *Book) Pages() int { return b.pages }

// MarshalJSON renders the book with its kind tag.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string  `json:"kind"`
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Author string  `json:"author"`
		Pages  int     `json:"pages,omitempty"`
	}{"book", b.name, b.price, b.author, b.pages})
}

// Movie is an immutable movie variant.
type Movie struct {
	name     string
	price    float64
	director string
	minutes  int
}

func (m *Movie) Name() string   { return m.name }
func (m *Movie) Price() float64 { return m.price }

// Director returns the movie director.
func (m *Movie) Director() string { return m.director }

// Minutes returns the running time, zero when unknown.
func (m *Movie) Minutes() int { return m.minutes }

// MarshalJSON renders the movie with its kind tag.
func (m *Movie) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string  `json:"kind"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Director string  `json:"director"`
		Minutes  int     `json:"minutes,omitempty"`
	}{"movie", m.name, m.price, m.director, m.minutes})
}

// Album is an immutable music album variant.
type Album struct {
	name   string
	price  float64
	artist string
	tracks int
}

func (a *Album) Name() string   { return a.name }
func (a *Album) Price() float64 { return a.price }

// Artist returns the recording artist.
func (a *Album) Artist() string { return a.artist }

// Tracks returns the track count, zero when unknown.
func (a *Album) Tracks() int { return a.tracks }

// MarshalJSON renders the album with its kind tag.
func (a *Album) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string  `json:"kind"`
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Artist string  `json:"artist"`
		Tracks int     `json:"tracks,omitempty"`
	}{"album", a.name, a.price, a.artist, a.tracks})
}
