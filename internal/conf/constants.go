package conf

// HashPrimeA - Multiplier for the primary positional hash, must be a prime larger than the ASCII alphabet (128)
const HashPrimeA int64 = 373

// HashPrimeB - Multiplier for the secondary (step) positional hash, must be a prime larger than the ASCII alphabet (128)
const HashPrimeB int64 = 613

// MinimumCapacity - Initial capacity of a new table and the floor below which a table never shrinks
const MinimumCapacity int64 = 53

// GrowLoadPercent - Load factor (in percent) above which an insert first grows the table
const GrowLoadPercent int64 = 70

// ShrinkLoadPercent - Load factor (in percent) below which a delete first shrinks the table
const ShrinkLoadPercent int64 = 10

// GrowFactor - Multiplier applied to capacity when growing
const GrowFactor int64 = 2

// ShrinkDivisor - Divisor applied to capacity when shrinking
const ShrinkDivisor int64 = 2
