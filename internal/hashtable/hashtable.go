package hashtable

import "errors"

var (
	// ErrInvalidSize is returned by the constructors when asked for a
	// table with a non-positive number of slots.
	ErrInvalidSize = errors.New("hashtable: size must be positive")

	// ErrTableFull is returned by ProbingTable.Set when every slot
	// holds a live key. Chaining tables never return it.
	ErrTableFull = errors.New("hashtable: table is full")
)

// Key is the set of key types the tables accept. Keys must not be
// mutated after insertion.
type Key interface {
	string | int
}

// Table is the contract shared by both collision-resolution strategies.
// Set inserts a key/value pair, replacing the value when the key is
// already present. Get reports the stored value, or false when the key
// is absent. Delete removes the key's entry and is a silent no-op when
// the key is absent; the return value reports whether anything was
// removed. Len reports the number of live entries.
type Table[K Key, V any] interface {
	Set(key K, value V) error
	Get(key K) (V, bool)
	Delete(key K) bool
	Len() int
}

// bucketIndex maps a key to its home index in [0, size). String keys
// hash to the sum of their code points mod size, integer keys to the
// value mod size, normalized so negative keys still land in range.
// Both strategies share this policy so they are directly comparable.
func bucketIndex[K Key](key K, size int) int {
	switch k := any(key).(type) {
	case string:
		sum := 0
		for _, r := range k {
			sum += int(r)
		}
		return sum % size
	case int:
		index := k % size
		if index < 0 {
			index += size
		}
		return index
	}
	return 0
}
