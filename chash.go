package chash

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned by New when the requested bucket count is not a
// positive integer.
var ErrCapacity = errors.New("capacity must be positive")

// entry is a single key/value association. Entries whose keys hash to the
// same bucket are chained through next.
type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Table is a fixed-capacity hash table mapping string keys to values of
// type V, resolving collisions by chaining. The bucket count is set at
// construction and never changes; load beyond it only lengthens chains,
// it never drops or rehashes entries.
//
// The table stores values as-is and never examines them. Use a pointer
// type for V to share values with the caller; the table never frees or
// mutates what a stored pointer refers to.
//
// A Table is not safe for concurrent use. Callers that share a table
// across goroutines must serialize access themselves.
type Table[V any] struct {
	buckets []*entry[V]
	size    int
	hash    Hasher
}

// Option configures a Table at construction.
type Option[V any] func(*Table[V])

// WithHasher replaces the default DJB2 hash function. The hasher must stay
// fixed for the table's lifetime.
func WithHasher[V any](h Hasher) Option[V] {
	return func(t *Table[V]) {
		t.hash = h
	}
}

// New creates a Table with the given number of buckets. Capacity must be
// positive; New fails with ErrCapacity otherwise.
func New[V any](capacity int, opts ...Option[V]) (*Table[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("chash: %w (got %d)", ErrCapacity, capacity)
	}

	t := &Table[V]{
		buckets: make([]*entry[V], capacity),
		hash:    DJB2,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// bucketIndex reduces the key's hash into [0, capacity).
func (t *Table[V]) bucketIndex(key string) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// Put inserts a key/value pair, or replaces the value in place if the key
// is already present. On replacement the entry keeps its chain position and
// the entry count is unchanged; a new key becomes the head of its bucket's
// chain.
func (t *Table[V]) Put(key string, value V) {
	idx := t.bucketIndex(key)

	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}

	t.buckets[idx] = &entry[V]{
		key:   key,
		value: value,
		next:  t.buckets[idx],
	}
	t.size++
}

// Get returns the value stored under key, and whether the key is present.
// On a miss it returns the zero value of V and false.
func (t *Table[V]) Get(key string) (V, bool) {
	idx := t.bucketIndex(key)

	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

// Delete removes the entry stored under key and reports whether it was
// present. The table is unchanged when the key is absent.
func (t *Table[V]) Delete(key string) bool {
	idx := t.bucketIndex(key)

	var prev *entry[V]
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				t.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			t.size--
			return true
		}
		prev = e
	}
	return false
}

// Clear removes every entry, leaving an empty table with the same capacity
// and hasher. Calling Clear on a nil table is a no-op. Stored values are
// not touched; once unlinked, entries are left to the garbage collector.
func (t *Table[V]) Clear() {
	if t == nil {
		return
	}
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0
}

// Len returns the number of entries currently stored.
func (t *Table[V]) Len() int {
	return t.size
}

// Capacity returns the bucket count chosen at construction.
func (t *Table[V]) Capacity() int {
	return len(t.buckets)
}

// Keys returns every stored key, in bucket order and then chain order
// within each bucket. The order is stable between mutations but carries no
// further guarantee.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Range calls fn for each entry in bucket-then-chain order, stopping early
// if fn returns false. The table must not be mutated during the walk.
func (t *Table[V]) Range(fn func(key string, value V) bool) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}
