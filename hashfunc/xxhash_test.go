//go:build unit

package hashfunc

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestXXHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("rounds table size up to a prime", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(100)
		assert.Equal(t, int64(101), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(200)

		// Check
		assert.Equal(t, int64(211), h.GetTableSize(), "correct tableSize value")
	})
}

func TestXXHashAlgorithm_HashFuncs(t *testing.T) {
	t.Run("hash values stay within range", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(53)
		keys := []string{"", "a", "b", "alpha", "beta", "a much longer key than the others"}

		// Execute and Check
		for _, key := range keys {
			hf1 := h.HashFunc1(key)
			hf2 := h.HashFunc2(key)
			assert.GreaterOrEqualf(t, hf1, int64(0), "home slot not negative for %q", key)
			assert.Lessf(t, hf1, int64(53), "home slot less than table size for %q", key)
			assert.GreaterOrEqualf(t, hf2, int64(1), "step at least one for %q", key)
			assert.Lessf(t, hf2, int64(53), "step less than table size for %q", key)
			assert.Equalf(t, hf1, h.HashFunc1(key), "home slot is deterministic for %q", key)
		}
	})
}

func TestXXHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(53)
		tableSize := h.GetTableSize()

		hf1 := h.HashFunc1("probe me")
		hf2 := h.HashFunc2("probe me")

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
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})
}
