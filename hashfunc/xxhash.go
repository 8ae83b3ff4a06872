package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashtable/internal/utils"
)

// XXHashAlgorithm - A double hashing algorithm deriving both the home slot and the probing step from a single
// 64-bit xxhash digest of the key. The low and high halves of the digest are used as the two independent values.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance.
// The table size will be overwritten by the Table it is handed to.
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size to the nearest prime equal to or higher than tableSize
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates the home slot between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key string) int64 {
	h := xxhash.Sum64String(key) & 0xffffffff
	return int64(h % uint64(X.tableSize))
}

// HashFunc2 - Given key it generates a probing step between 1 and table size - 1
func (X *XXHashAlgorithm) HashFunc2(key string) int64 {
	if X.tableSize < 3 {
		return 1
	}
	h := xxhash.Sum64String(key) >> 32
	return 1 + int64(h%uint64(X.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

// ProbeIteration - Returns the slot to inspect in a given iteration
func (X *XXHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % X.tableSize
}
