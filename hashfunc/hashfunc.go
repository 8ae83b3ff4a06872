package hashfunc

// HashAlgorithm - Interface that permits a user of the Table to supply a custom double hashing algorithm
// suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the table is created and every time it is resized. Implementations must round the
	// size to a value where ProbeIteration visits every slot exactly once (a prime for double hashing) and
	// report the actual size through GetTableSize. A size that is not a prime or is smaller than asked for is
	// rejected with crt.InvalidTableSize.
	//   - tableSize is the minimum number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates the home slot between 0 and table size - 1
	HashFunc1(key string) int64

	// HashFunc2 - Given key it generates the probing step that will be used together with the value from
	// HashFunc1 in a call to ProbeIteration. The step must be between 1 and table size - 1.
	HashFunc2(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns the slot to inspect in a given iteration given values from HashFunc1 and HashFunc2.
	// Since the values from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function
	// takes those values rather than the actual key as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
