/*
Package chash provides a fixed-capacity hash table with string keys,
generic values, and chained collision resolution.

Table is designed for workloads where a bounded, predictable structure
matters more than automatic growth: the bucket count is chosen once at
construction and never changes, and collisions are absorbed by per-bucket
linked chains rather than rehashing.

Basic usage:

	import "github.com/theflywheel/chash"

	// Create a table with 10 buckets holding int values
	table, err := chash.New[int](10)
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	table.Put("alpha", 100)
	table.Put("beta", 200)

	// Retrieve data
	if v, ok := table.Get("alpha"); ok {
		fmt.Println("Value:", v)
	}

	// Remove data
	table.Delete("beta")

Features:

  - String keys with byte-for-byte equality
  - Generic value type; values are stored as-is and never inspected
  - Separate chaining: unlimited entries per bucket, no entry is ever dropped
  - Fixed bucket count for predictable memory layout, no resizing
  - Deterministic djb2 hashing by default, pluggable via WithHasher
  - Describe and String diagnostics exposing per-bucket occupancy

Implementation Details:

Each bucket holds the head of a singly linked chain of entries. Lookups
hash the key, reduce modulo the capacity, and scan that one chain; a new
key is linked at the head of its chain, so the most recently inserted key
in a bucket is found first. Updating an existing key replaces its value in
place without moving the entry or changing the entry count.

The default hash is djb2 (seed 5381, multiplier 33) over the key's bytes,
with no per-process seeding, so bucket placement is identical across runs.

A Table performs no internal locking. Callers sharing a table between
goroutines must provide their own synchronization and must not assume
compound operations are atomic.
*/
package chash
