package hashtable

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

type slot[K Key, V any] struct {
	state slotState
	key   K
	value V
}

// ProbingTable resolves collisions with linear probing over a fixed
// slot array: colliding keys scan forward from their home index,
// wrapping around, until a free slot turns up. Capacity is hard; once
// every slot holds a live key, Set returns ErrTableFull.
//
// By default Delete clears the slot back to empty. That matches the
// classic formulation but can sever the probe sequence of keys stored
// past the cleared slot, making them look absent afterwards. The
// variant built by NewProbingTableTombstone leaves a deleted marker
// instead, which is the correct general solution.
type ProbingTable[K Key, V any] struct {
	slots      []slot[K, V]
	size       int
	count      int
	tombstones bool
}

// NewProbingTable returns a linear-probing table with the given number
// of slots. Removal clears slots outright; see NewProbingTableTombstone
// for the probe-safe variant.
func NewProbingTable[K Key, V any](size int) (*ProbingTable[K, V], error) {
	return newProbingTable[K, V](size, false)
}

// NewProbingTableTombstone returns a linear-probing table whose
// removals leave deleted markers, preserving probe-sequence continuity
// for keys stored past a removed slot. Markers are reused by later
// inserts.
func NewProbingTableTombstone[K Key, V any](size int) (*ProbingTable[K, V], error) {
	return newProbingTable[K, V](size, true)
}

func newProbingTable[K Key, V any](size int, tombstones bool) (*ProbingTable[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &ProbingTable[K, V]{
		slots:      make([]slot[K, V], size),
		size:       size,
		tombstones: tombstones,
	}, nil
}

// findSlot probes from the key's home index for the slot Set should
// write into: the key's own slot, the first reusable deleted marker, or
// the first empty slot. A full circle back to the home index with no
// candidate means the table is full. The scan keeps walking past
// deleted markers so an existing key is always found before its marker
// is reused.
func (t *ProbingTable[K, V]) findSlot(key K) (int, error) {
	index := bucketIndex(key, t.size)
	home := index
	reuse := -1
	for {
		switch t.slots[index].state {
		case slotEmpty:
			if reuse >= 0 {
				return reuse, nil
			}
			return index, nil
		case slotDeleted:
			if reuse < 0 {
				reuse = index
			}
		case slotOccupied:
			if t.slots[index].key == key {
				return index, nil
			}
		}
		index = (index + 1) % t.size
		if index == home {
			if reuse >= 0 {
				return reuse, nil
			}
			return 0, ErrTableFull
		}
	}
}

// Set writes the key/value pair into the key's probe slot. A full
// table is a routine outcome for open addressing and is reported as
// ErrTableFull, even when the key is already present: the occupancy
// check runs before any probing.
func (t *ProbingTable[K, V]) Set(key K, value V) error {
	if t.count >= t.size {
		return ErrTableFull
	}
	index, err := t.findSlot(key)
	if err != nil {
		return err
	}
	if t.slots[index].state != slotOccupied {
		t.count++
	}
	t.slots[index] = slot[K, V]{state: slotOccupied, key: key, value: value}
	return nil
}

// Get scans forward from the key's home index while slots are in use,
// stopping at the first empty slot or after a full circle.
func (t *ProbingTable[K, V]) Get(key K) (V, bool) {
	index := bucketIndex(key, t.size)
	home := index
	for t.slots[index].state != slotEmpty {
		if t.slots[index].state == slotOccupied && t.slots[index].key == key {
			return t.slots[index].value, true
		}
		index = (index + 1) % t.size
		if index == home {
			break
		}
	}
	var zero V
	return zero, false
}

// Delete releases the key's slot: back to empty by default, or to a
// deleted marker in the tombstone variant. Absent keys are a no-op.
func (t *ProbingTable[K, V]) Delete(key K) bool {
	index := bucketIndex(key, t.size)
	home := index
	for t.slots[index].state != slotEmpty {
		if t.slots[index].state == slotOccupied && t.slots[index].key == key {
			t.slots[index] = slot[K, V]{}
			if t.tombstones {
				t.slots[index].state = slotDeleted
			}
			t.count--
			return true
		}
		index = (index + 1) % t.size
		if index == home {
			break
		}
	}
	return false
}

// Len returns the number of live keys in the table.
func (t *ProbingTable[K, V]) Len() int {
	return t.count
}
