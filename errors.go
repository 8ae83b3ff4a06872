package hashtable

import "github.com/gostonefire/hashtable/crt"

// NoRecordFound - Returned by Search and Delete when the key doesn't exist
type NoRecordFound = crt.NoRecordFound

// ProbingExhausted - Returned by Insert when no slot could be found after a full probe cycle
type ProbingExhausted = crt.ProbingExhausted

// TableReleased - Returned by any operation on a destroyed table
type TableReleased = crt.TableReleased

// InvalidTableSize - Returned when a custom hash algorithm reports a table size that is not a prime or is too small
type InvalidTableSize = crt.InvalidTableSize
