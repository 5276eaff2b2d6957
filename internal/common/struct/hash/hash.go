// Released under an MIT license. See LICENSE.

// Package hash provides blisp's name to value mapping type.
// Names are case-insensitive.
package hash

import (
	"sort"
	"strings"

	"github.com/michaelmacinnis/blisp/internal/common/interface/cell"
)

// T (hash) maps names to values.
type T struct {
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Get retrieves the value associated with the name k in the hash h.
// It returns nil if there is no such value.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	return h.m[key(k)]
}

// Keys returns the (lower case) names in the hash h in sorted order.
func (h *hash) Keys() []string {
	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.m[key(k)] = v
}

func key(k string) string {
	return strings.ToLower(k)
}
