package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/utils"
)

// Slots - Represents a fixed capacity slot array using the Double Hashing Collision Resolution Technique.
// In case of a collision, it probes through the slot array using the hash algorithm's probe sequence, looking for
// an empty slot, and assigns the free slot to the record. Deleted records are left as tombstones so that probe
// chains passing through them stay intact.
type Slots struct {
	records           []model.Record
	numberOfSlots     int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nEmpty            int64
	nOccupied         int64
	nDeleted          int64
}

// NewSlots - Returns a pointer to a new slot array with room for at least numberOfSlotsNeeded records.
// The actual number of slots is decided by the hash algorithm (the nearest prime for the internal one).
//   - numberOfSlotsNeeded is the minimum number of slots to allocate
//   - hashAlgorithm is an optional custom hash algorithm, if nil the internal double hash algorithm is used
//
// It returns:
//   - slots which is a pointer to the created instance
//   - err is of type crt.InvalidTableSize if the hash algorithm settled on a size that is not a prime or is
//     smaller than numberOfSlotsNeeded
func NewSlots(numberOfSlotsNeeded int64, hashAlgorithm hashfunc.HashAlgorithm) (slots *Slots, err error) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewDoubleHashAlgorithm(numberOfSlotsNeeded)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(numberOfSlotsNeeded)
	}

	numberOfSlots := hashAlgorithm.GetTableSize()
	if numberOfSlots < numberOfSlotsNeeded || !utils.IsPrime(numberOfSlots) {
		err = crt.InvalidTableSize{}
		return
	}

	slots = &Slots{
		records:           make([]model.Record, numberOfSlots),
		numberOfSlots:     numberOfSlots,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
		nEmpty:            numberOfSlots,
		nOccupied:         0,
		nDeleted:          0,
	}

	return
}

// Release - Drops the slot array, after which the instance holds no records
func (Q *Slots) Release() {
	Q.records = nil
	Q.numberOfSlots = 0
	Q.nEmpty = 0
	Q.nOccupied = 0
	Q.nDeleted = 0
}

// HashAlgorithm - Returns the hash algorithm in use, nil if it is the internal one
func (Q *Slots) HashAlgorithm() hashfunc.HashAlgorithm {
	if Q.internalAlgorithm {
		return nil
	}
	return Q.hashAlgorithm
}

// GetStorageParameters - Returns a struct with storage parameters and utilization
func (Q *Slots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfSlots:   Q.numberOfSlots,
		OccupiedRecords: Q.nOccupied,
		DeletedRecords:  Q.nDeleted,
		EmptyRecords:    Q.nEmpty,
		InternalHashing: Q.internalAlgorithm,
	}

	return
}

// NumberOfSlots - Returns the capacity of the slot array
func (Q *Slots) NumberOfSlots() int64 {
	return Q.numberOfSlots
}

// Occupied - Returns the number of live records
func (Q *Slots) Occupied() int64 {
	return Q.nOccupied
}

// GetSlot - Returns the record held in a given slot, whatever its state
//   - slotNo is the index of the slot, between 0 and number of slots - 1
func (Q *Slots) GetSlot(slotNo int64) (record model.Record, err error) {
	if slotNo < 0 || slotNo >= Q.numberOfSlots {
		err = fmt.Errorf("slot number %d out of range, should be between 0 and %d", slotNo, Q.numberOfSlots-1)
		return
	}

	record = Q.records[slotNo]
	record.Slot = slotNo

	return
}

// Get - Gets the record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or crt.ProbingExhausted
func (Q *Slots) Get(key string) (record model.Record, err error) {
	record, err = Q.probingForGet(key)

	return
}

// Set - Updates an existing record with new value or adds it if no existing is found with same key.
//   - key is the identifier of the record
//   - value is the value to store with the key
//
// It returns:
//   - added is true if a new record was added, false if an existing one was updated
//   - err is of type crt.ProbingExhausted if no slot could be found
func (Q *Slots) Set(key, value string) (added bool, err error) {
	selectedRecord, err := Q.probingForSet(key)
	if err != nil {
		return
	}

	fromState := selectedRecord.State
	selectedRecord.State = model.RecordOccupied
	selectedRecord.Key = key
	selectedRecord.Value = value

	Q.setSlotRecord(selectedRecord)
	Q.updateUtilizationInfo(fromState, selectedRecord.State)

	added = fromState != model.RecordOccupied

	return
}

// Delete - Deletes the record with the given key by turning its slot into a tombstone.
//   - key is the identifier of the record
//
// It returns:
//   - err is of type crt.NoRecordFound if the key doesn't exist
func (Q *Slots) Delete(key string) (err error) {
	record, err := Q.probingForGet(key)
	if err != nil {
		return
	}

	fromState := record.State
	record.State = model.RecordDeleted
	record.Key = ""
	record.Value = ""

	Q.setSlotRecord(record)
	Q.updateUtilizationInfo(fromState, record.State)

	return
}
