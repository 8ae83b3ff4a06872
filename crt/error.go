package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// ProbingExhausted - Custom error to inform that a full probe cycle passed without finding a free slot.
// It signals a broken load factor invariant rather than a condition a caller can recover from.
type ProbingExhausted struct {
	msg string
}

// Error - Used to notify that the probe sequence is exhausted
func (P ProbingExhausted) Error() string {
	if P.msg == "" {
		return "probing sequence exhausted"
	}
	return P.msg
}

// TableReleased - Custom error to inform that the table has been destroyed
type TableReleased struct {
	msg string
}

// Error - Used to notify that the table has been destroyed
func (T TableReleased) Error() string {
	if T.msg == "" {
		return "table has been released"
	}
	return T.msg
}

// InvalidTableSize - Custom error to inform that a hash algorithm reported a table size that is not a prime
// or is smaller than the size asked for
type InvalidTableSize struct {
	msg string
}

// Error - Used to notify that the table size is invalid
func (I InvalidTableSize) Error() string {
	if I.msg == "" {
		return "invalid table size"
	}
	return I.msg
}
