// Package location keeps the presentation's location hash, the persisted
// reference ("#3" or "#intro") to the shown slide.
package location

import (
	"strconv"
	"strings"

	"github.com/agbru/deckshow/internal/events"
)

// Store holds the current hash. The zero value is an empty location.
type Store struct {
	hash string
}

// New creates a store holding hash, normalised to start with "#".
func New(hash string) *Store {
	s := &Store{}
	s.Replace(hash)
	return s
}

// Hash returns the hash including its leading "#", or "" when unset.
func (s *Store) Hash() string { return s.hash }

// Ref returns the hash without its leading "#".
func (s *Store) Ref() string { return strings.TrimPrefix(s.hash, "#") }

// Replace overwrites the hash without notifying anyone.
func (s *Store) Replace(hash string) {
	hash = strings.TrimSpace(hash)
	if hash != "" && !strings.HasPrefix(hash, "#") {
		hash = "#" + hash
	}
	s.hash = hash
}

// Navigate sets the hash and raises hashchange when it changed.
func (s *Store) Navigate(hash string, forward func(name events.Name, args ...any) error) error {
	before := s.hash
	s.Replace(hash)
	if s.hash == before {
		return nil
	}
	return forward(events.HashChange)
}

// Namer returns the hash reference for slide i.
type Namer func(i int) string

// NumberNamer references slides by their 1-based number.
func NumberNamer(i int) string { return strconv.Itoa(i + 1) }

// Track keeps store in sync with the shown slide.
func Track(bus events.Subscriber, store *Store, namer Namer) {
	if namer == nil {
		namer = NumberNamer
	}
	bus.On(events.AfterShowSlide, func(ev events.Event) error {
		if i, ok := ev.Int(0); ok {
			store.Replace(namer(i))
		}
		return nil
	})
}
