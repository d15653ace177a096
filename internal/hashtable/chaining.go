package hashtable

// chainNode is a single key/value entry in a bucket's overflow chain.
type chainNode[K Key, V any] struct {
	key   K
	value V
	next  *chainNode[K, V]
}

// ChainingTable resolves collisions by keeping a linked overflow chain
// per bucket. Chains grow without bound, so Set never fails; heavy load
// degrades lookups to a linear walk of the colliding keys instead.
type ChainingTable[K Key, V any] struct {
	buckets []*chainNode[K, V]
	size    int
	keys    int
}

// NewChainingTable returns a chaining table with the given number of
// buckets.
func NewChainingTable[K Key, V any](size int) (*ChainingTable[K, V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &ChainingTable[K, V]{
		buckets: make([]*chainNode[K, V], size),
		size:    size,
	}, nil
}

// Set inserts the key/value pair into the key's bucket. An existing
// entry is updated in place; new entries append at the tail so chain
// order stays insertion order.
func (t *ChainingTable[K, V]) Set(key K, value V) error {
	index := bucketIndex(key, t.size)
	if t.buckets[index] == nil {
		t.buckets[index] = &chainNode[K, V]{key: key, value: value}
		t.keys++
		return nil
	}
	current := t.buckets[index]
	for {
		if current.key == key {
			current.value = value
			return nil
		}
		if current.next == nil {
			break
		}
		current = current.next
	}
	current.next = &chainNode[K, V]{key: key, value: value}
	t.keys++
	return nil
}

// Get walks the key's chain and returns the first matching value.
func (t *ChainingTable[K, V]) Get(key K) (V, bool) {
	current := t.buckets[bucketIndex(key, t.size)]
	for current != nil {
		if current.key == key {
			return current.value, true
		}
		current = current.next
	}
	var zero V
	return zero, false
}

// Delete unlinks the key's entry from its chain, rebinding the bucket
// head when the entry is first in the chain.
func (t *ChainingTable[K, V]) Delete(key K) bool {
	index := bucketIndex(key, t.size)
	current := t.buckets[index]
	var prev *chainNode[K, V]
	for current != nil {
		if current.key == key {
			if prev == nil {
				t.buckets[index] = current.next
			} else {
				prev.next = current.next
			}
			t.keys--
			return true
		}
		prev = current
		current = current.next
	}
	return false
}

// Len returns the number of entries in the table.
func (t *ChainingTable[K, V]) Len() int {
	return t.keys
}

// Keys returns every key, bucket by bucket in chain order.
func (t *ChainingTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.keys)
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			keys = append(keys, n.key)
		}
	}
	return keys
}

// Values returns every value, bucket by bucket in chain order.
func (t *ChainingTable[K, V]) Values() []V {
	values := make([]V, 0, t.keys)
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			values = append(values, n.value)
		}
	}
	return values
}

// chainLen reports the length of the chain at the given bucket index.
func (t *ChainingTable[K, V]) chainLen(index int) int {
	length := 0
	for n := t.buckets[index]; n != nil; n = n.next {
		length++
	}
	return length
}
