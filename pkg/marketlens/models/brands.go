package models

import (
	"encoding/json"
	"strings"
)

// BrandSet is an insertion-ordered set of distinct brand names.
type BrandSet struct {
	names []string
	seen  map[string]struct{}
}

// NewBrandSet returns an empty set.
func NewBrandSet() *BrandSet {
	return &BrandSet{seen: make(map[string]struct{})}
}

// Add inserts the trimmed name. Blank names and duplicates are ignored.
// It reports whether the name was new.
func (b *BrandSet) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := b.seen[name]; ok {
		return false
	}
	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}
	b.seen[name] = struct{}{}
	b.names = append(b.names, name)
	return true
}

// Contains reports whether name (trimmed) is in the set.
func (b *BrandSet) Contains(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.seen[strings.TrimSpace(name)]
	return ok
}

// Len returns the number of brands.
func (b *BrandSet) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Values returns a copy of the brands in insertion order, or nil for a nil set.
func (b *BrandSet) Values() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// MarshalJSON encodes the set as a JSON array.
func (b *BrandSet) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b.Values())
}
