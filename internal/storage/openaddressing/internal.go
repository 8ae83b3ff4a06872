package openaddressing

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
)

// setSlotRecord - Writes a record into the slot given by record.Slot
func (Q *Slots) setSlotRecord(record model.Record) {
	Q.records[record.Slot] = record
}

// updateUtilizationInfo - Moves one slot between the empty, occupied and deleted counters
func (Q *Slots) updateUtilizationInfo(fromState, toState uint8) {
	if fromState != toState {
		switch fromState {
		case model.RecordEmpty:
			Q.nEmpty--
		case model.RecordOccupied:
			Q.nOccupied--
		case model.RecordDeleted:
			Q.nDeleted--
		}

		switch toState {
		case model.RecordEmpty:
			Q.nEmpty++
		case model.RecordOccupied:
			Q.nOccupied++
		case model.RecordDeleted:
			Q.nDeleted++
		}
	}
}

// probingForGet - Is the Double Hashing Collision Resolution Technique algorithm for getting a record.
// Tombstones are stepped over, an empty slot ends the search.
func (Q *Slots) probingForGet(key string) (record model.Record, err error) {
	if Q.records == nil {
		err = crt.TableReleased{}
		return
	}

	var probe, n int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	hf2Value := Q.hashAlgorithm.HashFunc2(key)

	iMax := Q.numberOfSlots * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < Q.numberOfSlots && probe >= 0 {
			switch Q.records[probe].State {
			case model.RecordEmpty:
				record = model.Record{}
				err = crt.NoRecordFound{}
				return

			case model.RecordOccupied:
				if Q.records[probe].Key == key {
					record = Q.records[probe]
					record.Slot = probe
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= Q.numberOfSlots {
				record = model.Record{}
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	record = model.Record{}
	err = crt.ProbingExhausted{}
	return
}

// probingForSet - Is the Double Hashing Collision Resolution Technique algorithm for finding the slot to set a record in.
// It returns the slot holding the key if there is one, otherwise the first tombstone passed on the way, otherwise the
// empty slot that ended the probe sequence.
func (Q *Slots) probingForSet(key string) (record model.Record, err error) {
	if Q.records == nil {
		err = crt.TableReleased{}
		return
	}

	var deletedRecord model.Record
	var hasCached bool
	var probe, n int64

	hf1Value := Q.hashAlgorithm.HashFunc1(key)
	hf2Value := Q.hashAlgorithm.HashFunc2(key)

	iMax := Q.numberOfSlots * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < Q.numberOfSlots && probe >= 0 {
			switch Q.records[probe].State {
			case model.RecordEmpty:
				if hasCached {
					record = deletedRecord
				} else {
					record = Q.records[probe]
					record.Slot = probe
				}
				return

			case model.RecordOccupied:
				if Q.records[probe].Key == key {
					record = Q.records[probe]
					record.Slot = probe
					return
				}

			case model.RecordDeleted:
				if !hasCached {
					deletedRecord = Q.records[probe]
					deletedRecord.Slot = probe
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= Q.numberOfSlots {
				if hasCached {
					record = deletedRecord
					return
				}
				err = crt.ProbingExhausted{}
				return
			}
		}
	}

	if hasCached {
		record = deletedRecord
		return
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingExhausted{}
	return
}
