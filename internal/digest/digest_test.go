package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	assert.Equal(t, uint64(0), Fold(nil))
	assert.Equal(t, Fold([]byte("Hamburg")), Fold([]byte("Hamburg")))
	assert.NotEqual(t, Fold([]byte("ab")), Fold([]byte("ba")))

	// one round by hand: 'A' = 65
	h := uint64(65) * foldPrime
	h ^= h >> 24
	assert.Equal(t, h, Fold([]byte("A")))
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			f, err := Lookup(name)
			require.NoError(t, err)

			key := []byte("Bulawayo")
			assert.Equal(t, f(key), f([]byte("Bulawayo")))
			assert.NotEqual(t, f(key), f([]byte("Bulawayp")))
		})
	}

	_, err := Lookup("md5")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"fold", "gopkg-xxh3", "xxh3", "xxhash"}, Names())
}
