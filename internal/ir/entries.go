package ir

import (
	"fmt"
	"iter"
)

// Key is implemented by Name and Path. Keys compare by their canonical string.
type Key interface {
	String() string
}

// Entry is one key/value pair of an Entries collection.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// DuplicateKeyError is returned when a collection is built with a key
// that appears twice.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// Entries is an insertion-ordered mapping with unique keys and O(1) lookup.
// The zero value is an empty collection. Entries is immutable once built.
type Entries[K Key, V any] struct {
	items []Entry[K, V]
	index map[string]int
}

// NewEntries builds a collection, rejecting duplicate keys.
// An empty input yields the zero value, so built and zero collections
// compare equal.
func NewEntries[K Key, V any](items ...Entry[K, V]) (Entries[K, V], error) {
	if len(items) == 0 {
		return Entries[K, V]{}, nil
	}
	e := Entries[K, V]{
		items: make([]Entry[K, V], len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		k := item.Key.String()
		if _, dup := e.index[k]; dup {
			return Entries[K, V]{}, &DuplicateKeyError{Key: k}
		}
		e.index[k] = i
		e.items[i] = item
	}
	return e, nil
}

// MustEntries is like NewEntries but panics on duplicate keys.
func MustEntries[K Key, V any](items ...Entry[K, V]) Entries[K, V] {
	e, err := NewEntries(items...)
	if err != nil {
		panic(err)
	}
	return e
}

// E is a shorthand for Entry construction.
func E[K Key, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Value: v}
}

// Len returns the number of entries.
func (e Entries[K, V]) Len() int {
	return len(e.items)
}

// Get looks up a value by key.
func (e Entries[K, V]) Get(k K) (V, bool) {
	return e.Lookup(k.String())
}

// Lookup looks up a value by canonical key string.
func (e Entries[K, V]) Lookup(canonical string) (V, bool) {
	i, ok := e.index[canonical]
	if !ok {
		var zero V
		return zero, false
	}
	return e.items[i].Value, true
}

// Has reports whether k is present.
func (e Entries[K, V]) Has(k K) bool {
	_, ok := e.index[k.String()]
	return ok
}

// All iterates entries in insertion order.
func (e Entries[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, item := range e.items {
			if !yield(item.Key, item.Value) {
				return
			}
		}
	}
}

// Items returns a copy of the entries in insertion order.
func (e Entries[K, V]) Items() []Entry[K, V] {
	return append([]Entry[K, V](nil), e.items...)
}

// Keys returns the keys in insertion order.
func (e Entries[K, V]) Keys() []K {
	keys := make([]K, len(e.items))
	for i, item := range e.items {
		keys[i] = item.Key
	}
	return keys
}
