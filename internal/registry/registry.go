// Package registry provides a global registry of board variants.
// Variants register themselves in init(), allowing the CLI, menu and SSH
// server to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes one playable board shape. Its ID doubles as the score
// key in storage.
type Variant struct {
	ID           string
	Title        string
	GridSize     int
	AlphabetSize int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// DefaultVariant is the variant played when none is named.
const DefaultVariant = "classic"

func init() {
	Register(Variant{ID: "classic", Title: "Classic 6×6", GridSize: 6, AlphabetSize: 6})
	Register(Variant{ID: "mini", Title: "Mini 5×5", GridSize: 5, AlphabetSize: 5})
	Register(Variant{ID: "grand", Title: "Grand 8×8", GridSize: 8, AlphabetSize: 7})
}

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants, sorted by grid size then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].GridSize != result[j].GridSize {
			return result[i].GridSize < result[j].GridSize
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a variant by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
