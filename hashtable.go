package hashtable

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
)

// TableStat - Statistics on the overall usage of the table
//   - Capacity is the number of slots in the slot array, always a prime
//   - Records is the number of live records stored
//   - Tombstones is the number of slots holding a deleted marker
//   - EmptySlots is the number of slots that have not been used since the last resize
//   - LoadFactor is Records divided by Capacity
type TableStat struct {
	Capacity   int64
	Records    int64
	Tombstones int64
	EmptySlots int64
	LoadFactor float64
}

// Table - The main implementation struct, an open addressing hash table over string keys and values.
// A Table is owned by a single goroutine, wrap it in a sync.Mutex if it has to be shared.
// Create it with New or NewWithHashAlgorithm, a zero value Table behaves as a released one.
type Table struct {
	slots         *openaddressing.Slots
	hashAlgorithm hashfunc.HashAlgorithm
	released      bool
}

// New - Returns a new empty table using the internal double hash algorithm at minimum capacity
func New() *Table {
	// The internal algorithm always settles on a prime at least as large as asked for
	slots, _ := openaddressing.NewSlots(conf.MinimumCapacity, nil)
	return &Table{slots: slots}
}

// NewWithHashAlgorithm - Returns a new empty table at minimum capacity.
//   - hashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal one.
//
// The table calls SetTableSize on the given algorithm every time it resizes, so the same instance must not be
// shared between tables.
//
// It returns:
//   - table is a pointer to the new Table
//   - err is of type crt.InvalidTableSize if the algorithm doesn't settle on a prime of at least the minimum capacity
func NewWithHashAlgorithm(hashAlgorithm hashfunc.HashAlgorithm) (table *Table, err error) {
	slots, err := openaddressing.NewSlots(conf.MinimumCapacity, hashAlgorithm)
	if err != nil {
		return
	}

	table = &Table{
		slots:         slots,
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// Destroy - Releases all records and the slot array. Any later operation returns crt.TableReleased.
func (T *Table) Destroy() {
	if T.released || T.slots == nil {
		T.released = true
		return
	}
	T.slots.Release()
	T.released = true
}

// Len - Returns the number of live records
func (T *Table) Len() int64 {
	if T.slots == nil {
		return 0
	}
	return T.slots.Occupied()
}

// Capacity - Returns the number of slots in the slot array
func (T *Table) Capacity() int64 {
	if T.slots == nil {
		return 0
	}
	return T.slots.NumberOfSlots()
}

// Stat - Returns statistics on the usage of the table
func (T *Table) Stat() (stat TableStat) {
	if T.slots == nil {
		return
	}
	sp := T.slots.GetStorageParameters()

	stat = TableStat{
		Capacity:   sp.NumberOfSlots,
		Records:    sp.OccupiedRecords,
		Tombstones: sp.DeletedRecords,
		EmptySlots: sp.EmptyRecords,
	}
	if sp.NumberOfSlots > 0 {
		stat.LoadFactor = float64(sp.OccupiedRecords) / float64(sp.NumberOfSlots)
	}

	return
}

// loadPercent - Returns the load factor as an integer percentage, rounded down
func (T *Table) loadPercent() int64 {
	return T.slots.Occupied() * 100 / T.slots.NumberOfSlots()
}

// resize - Rehashes all live records into a new slot array of the nearest prime equal to or higher than
// numberOfSlotsNeeded and replaces the current one. Tombstones are not carried over.
// Sizes below conf.MinimumCapacity are ignored. If rehashing fails the current slot array is kept untouched.
func (T *Table) resize(numberOfSlotsNeeded int64) (err error) {
	if numberOfSlotsNeeded < conf.MinimumCapacity {
		return
	}

	oldSlots := T.slots
	newSlots, err := openaddressing.NewSlots(numberOfSlotsNeeded, T.hashAlgorithm)
	if err != nil {
		T.restoreTableSize(oldSlots.NumberOfSlots())
		return
	}

	var record model.Record
	for i := int64(0); i < oldSlots.NumberOfSlots(); i++ {
		record, err = oldSlots.GetSlot(i)
		if err == nil && record.State == model.RecordOccupied {
			_, err = newSlots.Set(record.Key, record.Value)
		}
		if err != nil {
			T.restoreTableSize(oldSlots.NumberOfSlots())
			newSlots.Release()
			return
		}
	}

	T.slots = newSlots
	oldSlots.Release()

	return
}

// restoreTableSize - A custom algorithm is shared between the old and the new slot array, give it back its old size
func (T *Table) restoreTableSize(numberOfSlots int64) {
	if T.hashAlgorithm != nil {
		T.hashAlgorithm.SetTableSize(numberOfSlots)
	}
}

// checkReleased - Returns crt.TableReleased if the table has been destroyed or was never created through New
func (T *Table) checkReleased() (err error) {
	if T.released || T.slots == nil {
		err = crt.TableReleased{}
	}
	return
}
