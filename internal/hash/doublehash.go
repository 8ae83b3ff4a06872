package hash

import (
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// DoubleHashAlgorithm - The internally used slot selection algorithm. It computes two positional polynomial hashes
// over the key using two distinct primes (conf.HashPrimeA and conf.HashPrimeB) and uses the first as the home slot
// and the second as the probing step.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number, which allows the algorithm to
// iterate over the entirety of the tables slots once and only once.
//   - tableSize is the number of slots the table will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key string) int64 {
	return PositionalHash(key, conf.HashPrimeA, D.tableSize)
}

// HashFunc2 - Given key it generates a probing step between 1 and table size - 1.
// The secondary hash is reduced modulo table size - 1 before adding one, so the step can never be a multiple of
// the (prime) table size.
func (D *DoubleHashAlgorithm) HashFunc2(key string) int64 {
	if D.tableSize < 3 {
		return 1
	}

	return PositionalHash(key, conf.HashPrimeB, D.tableSize-1) + 1
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}

// PositionalHash - Returns sum(multiplier^(len-1-i) * key[i]) modulo modulus.
// The sum is evaluated with Horner's rule and reduced after every term so long keys never overflow.
func PositionalHash(key string, multiplier, modulus int64) int64 {
	var h int64
	for i := 0; i < len(key); i++ {
		h = (h*multiplier + int64(key[i])) % modulus
	}

	return h
}
