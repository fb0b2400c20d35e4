// Package lookup holds the static, read-only tables that map a domain key
// (isotope name, shielding material, age group, unit name) to its constants.
package lookup

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a key is not present in a table.
var ErrUnknownKey = errors.New("unknown key")

// Entry is one row of a table.
type Entry[V any] struct {
	Key   string
	Value V
}

// Table is an ordered, immutable mapping from key to value.
// Tables are built once at package initialization and never mutated.
type Table[V any] struct {
	kind   string
	keys   []string
	values map[string]V
}

// New builds a table of the given kind ("isotope", "material", ...).
// It panics on a duplicate key since tables are program data.
func New[V any](kind string, entries ...Entry[V]) *Table[V] {
	t := &Table[V]{
		kind:   kind,
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.values[e.Key]; ok {
			panic(fmt.Sprintf("lookup: duplicate %s %q", kind, e.Key))
		}
		t.keys = append(t.keys, e.Key)
		t.values[e.Key] = e.Value
	}
	return t
}

// Kind names what the table's keys refer to.
func (t *Table[V]) Kind() string {
	return t.kind
}

// Resolve returns the value stored under key.
// A missing key is always an error; there is no default value.
func (t *Table[V]) Resolve(key string) (V, error) {
	v, ok := t.values[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownKey, t.kind, key)
	}
	return v, nil
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	return len(t.keys)
}

// Each calls fn for every entry in insertion order.
func (t *Table[V]) Each(fn func(key string, v V)) {
	for _, k := range t.keys {
		fn(k, t.values[k])
	}
}
