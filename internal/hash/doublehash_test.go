//go:build unit

package hash

import (
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPositionalHash(t *testing.T) {
	t.Run("computes the positional polynomial hash", func(t *testing.T) {
		// Prepare
		// "ab" = 373^1 * 97 + 373^0 * 98 = 36279 -> 36279 % 53 = 27
		expected := int64((373*97 + 98) % 53)

		// Execute
		h := PositionalHash("ab", conf.HashPrimeA, 53)

		// Check
		assert.Equal(t, expected, h, "correct hash value")
		assert.Equal(t, int64(27), h, "correct hash value")
	})

	t.Run("empty key hashes to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), PositionalHash("", conf.HashPrimeA, 53), "empty key")
	})

	t.Run("long keys stay within range", func(t *testing.T) {
		// Prepare
		key := make([]byte, 10000)
		for i := range key {
			key[i] = byte(i%94 + 33)
		}

		// Execute
		h := PositionalHash(string(key), conf.HashPrimeB, 1000003)

		// Check
		assert.GreaterOrEqual(t, h, int64(0), "not negative")
		assert.Less(t, h, int64(1000003), "less than modulus")
	})
}

func TestDoubleHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size to nearest prime", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(53)
		assert.Equal(t, int64(53), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(106)

		// Check
		assert.Equal(t, int64(107), h.GetTableSize(), "correct tableSize value")
	})
}

func TestDoubleHashAlgorithm_HashFunc2(t *testing.T) {
	t.Run("step is never zero nor a multiple of the table size", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(53)

		// Execute and Check
		for c := 0; c < 256; c++ {
			key := string([]byte{byte(c), 'k', byte(255 - c)})
			step := h.HashFunc2(key)
			assert.GreaterOrEqualf(t, step, int64(1), "step at least one for key #%d", c)
			assert.Lessf(t, step, int64(53), "step less than table size for key #%d", c)
		}
	})
}

func TestDoubleHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(53)
		tableSize := h.GetTableSize()

		for _, key := range []string{"a", "b", "cat", "dog", "the quick brown fox"} {
			hf1 := h.HashFunc1(key)
			hf2 := h.HashFunc2(key)

			visit := make([]int, tableSize)

			// Execute
			for i := int64(0); i < tableSize; i++ {
				probe := h.ProbeIteration(hf1, hf2, i)
				assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
				assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
				visit[probe]++
			}

			// Check
			for i := int64(0); i < tableSize; i++ {
				assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d for key %q", i, key)
			}
		}
	})

	t.Run("colliding keys both visit every slot", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(53)
		tableSize := h.GetTableSize()

		// Find two keys sharing the same home slot
		var keyA, keyB string
		seen := make(map[int64]string)
		for c := 0; c < 10000 && keyB == ""; c++ {
			key := string([]byte{byte('a' + c%26), byte('a' + (c/26)%26), byte('a' + (c/676)%26)})
			home := h.HashFunc1(key)
			if other, ok := seen[home]; ok {
				keyA, keyB = other, key
			} else {
				seen[home] = key
			}
		}
		assert.NotEmpty(t, keyB, "found colliding keys")
		assert.Equal(t, h.HashFunc1(keyA), h.HashFunc1(keyB), "keys collide at attempt 0")

		// Execute and Check
		for _, key := range []string{keyA, keyB} {
			hf1 := h.HashFunc1(key)
			hf2 := h.HashFunc2(key)
			visited := make(map[int64]bool)
			for i := int64(0); i < tableSize; i++ {
				visited[h.ProbeIteration(hf1, hf2, i)] = true
			}
			assert.Lenf(t, visited, int(tableSize), "distinct slots visited for key %q", key)
		}
	})
}
