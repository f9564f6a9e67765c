package chash

import (
	"github.com/cespare/xxhash/v2"
)

// A Hasher maps a key to an unsigned hash value. The table reduces the
// result modulo its capacity to pick a bucket, so any 64-bit hash works.
//
// A Hasher must be deterministic for the lifetime of a table: feeding the
// same key must always produce the same value, or previously stored entries
// become unreachable.
type Hasher func(key string) uint64

const (
	djb2Seed       = 5381
	djb2Multiplier = 33
)

// DJB2 is the default Hasher: Bernstein's djb2 over the raw bytes of key,
// seeded with 5381 and folding each byte in as hash*33 + c, wrapping at 64
// bits. It is unseeded and stable across processes and releases, so bucket
// placement is reproducible run to run. DJB2("") is 5381.
func DJB2(key string) uint64 {
	hash := uint64(djb2Seed)
	for i := 0; i < len(key); i++ {
		// hash*33 + c, written as shift-and-add
		hash = ((hash << 5) + hash) + uint64(key[i])
	}
	return hash
}

// XXHash is an alternative Hasher backed by xxHash64. It distributes better
// than DJB2 on adversarial or highly similar keys at a small cost per call.
// Like DJB2 it is unseeded, so placement stays reproducible.
var XXHash Hasher = xxhash.Sum64String
