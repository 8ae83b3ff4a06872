package model

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted (a tombstone)
const RecordDeleted uint8 = 2

// Record - Represents one slot in the table
type Record struct {
	State uint8
	Slot  int64
	Key   string
	Value string
}

// StorageParameters - Represents parameters and utilization of a slot array
type StorageParameters struct {
	NumberOfSlots   int64
	OccupiedRecords int64
	DeletedRecords  int64
	EmptyRecords    int64
	InternalHashing bool
}
