package chash

import (
	"fmt"
	"strings"
)

// BucketState reports the occupancy of one bucket for diagnostics.
type BucketState struct {
	Index int      // position of the bucket in the table
	Keys  []string // keys in chain order, most recently inserted first
}

// Describe returns the occupied buckets in index order, each with its keys
// in chain order. Empty buckets are omitted. It is intended for debugging
// and tests; the result is a snapshot and does not track later mutation.
func (t *Table[V]) Describe() []BucketState {
	var states []BucketState
	for i, head := range t.buckets {
		if head == nil {
			continue
		}
		var keys []string
		for e := head; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
		states = append(states, BucketState{Index: i, Keys: keys})
	}
	return states
}

// String renders the table's occupancy: a summary line followed by one line
// per occupied bucket.
func (t *Table[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "chash.Table (size: %d, capacity: %d)\n", t.size, len(t.buckets))
	for _, st := range t.Describe() {
		fmt.Fprintf(&b, "  bucket %d: %s\n", st.Index, strings.Join(st.Keys, " -> "))
	}
	return b.String()
}
