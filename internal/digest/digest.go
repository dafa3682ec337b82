// Package digest reduces station names to fixed-width keys.
package digest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bytedance/gopkg/util/xxhash3"
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// ErrUnknown is returned by Lookup for an unregistered digest name.
var ErrUnknown = errors.New("unknown digest")

// Func maps raw key bytes to a digest. It must not retain key.
type Func func(key []byte) uint64

const foldPrime = 0x5bd1e995

// Fold is the default digest: each byte is xored in, multiplied and
// mixed with its own high bits. Distinct keys may collide.
func Fold(key []byte) uint64 {
	var h uint64
	for _, c := range key {
		h ^= uint64(c)
		h *= foldPrime
		h ^= h >> 24
	}
	return h
}

func XXHash(key []byte) uint64 { return xxhash.Sum64(key) }

func XXH3(key []byte) uint64 { return xxh3.Hash(key) }

func GopkgXXH3(key []byte) uint64 { return xxhash3.Hash(key) }

var registry = map[string]Func{
	"fold":       Fold,
	"xxhash":     XXHash,
	"xxh3":       XXH3,
	"gopkg-xxh3": GopkgXXH3,
}

// Lookup returns the digest registered under name.
func Lookup(name string) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknown, name, Names())
	}
	return f, nil
}

// Names lists the registered digests in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
