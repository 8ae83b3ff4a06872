package hashtable

import (
	"github.com/gostonefire/hashtable/internal/conf"
)

// Insert - Adds a record, or updates the value of an existing record with the same key.
// If the load factor is above conf.GrowLoadPercent the table is first grown to the nearest prime of twice its
// capacity, so the new record is placed against the new capacity.
//   - key is the identifier of the record
//   - value is the value to store with the key
//
// It returns:
//   - err is nil on success, crt.ProbingExhausted if no slot could be found (a broken invariant, not something
//     to retry) or crt.TableReleased if the table has been destroyed
func (T *Table) Insert(key, value string) (err error) {
	if err = T.checkReleased(); err != nil {
		return
	}

	if T.loadPercent() > conf.GrowLoadPercent {
		err = T.resize(T.slots.NumberOfSlots() * conf.GrowFactor)
		if err != nil {
			return
		}
	}

	_, err = T.slots.Set(key, value)

	return
}

// Search - Gets the value that corresponds to the given key.
//   - key is the identifier of the record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound, crt.TableReleased or nil
func (T *Table) Search(key string) (value string, err error) {
	if err = T.checkReleased(); err != nil {
		return
	}

	record, err := T.slots.Get(key)
	if err != nil {
		return
	}

	value = record.Value

	return
}

// Delete - Removes the record with the given key, leaving a tombstone in its slot.
// If the load factor is below conf.ShrinkLoadPercent the table is first shrunk to the nearest prime of half its
// capacity, never going below conf.MinimumCapacity.
//   - key is the identifier of the record
//
// It returns:
//   - err is of type crt.NoRecordFound if the key doesn't exist, in which case the record count is left untouched,
//     crt.TableReleased if the table has been destroyed, otherwise nil
func (T *Table) Delete(key string) (err error) {
	if err = T.checkReleased(); err != nil {
		return
	}

	if T.loadPercent() < conf.ShrinkLoadPercent {
		err = T.resize(T.slots.NumberOfSlots() / conf.ShrinkDivisor)
		if err != nil {
			return
		}
	}

	err = T.slots.Delete(key)

	return
}
