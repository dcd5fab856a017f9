package hashmap

// Iterator walks every entry of a Map, bucket by bucket. The order is
// unspecified. The map must not be changed while iterating, except through
// Entry.SetValue.
type Iterator[K comparable, V any] struct {
	m      *Map[K, V]
	entry  *Entry[K, V]
	bucket int
	pos    int
}

func (iter *Iterator[K, V]) Next() bool {
	for iter.bucket < len(iter.m.table) {
		bucket := iter.m.table[iter.bucket]

		if iter.pos < len(bucket) {
			iter.entry = bucket[iter.pos]
			iter.pos++
			return true
		}

		iter.bucket++
		iter.pos = 0
	}

	iter.entry = nil
	return false
}

func (iter *Iterator[K, V]) Key() K {
	return iter.entry.key
}

func (iter *Iterator[K, V]) Val() V {
	return iter.entry.val
}

func (iter *Iterator[K, V]) Entry() *Entry[K, V] {
	return iter.entry
}
