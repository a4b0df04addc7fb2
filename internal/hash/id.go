package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 identity of a fully-qualified table name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
