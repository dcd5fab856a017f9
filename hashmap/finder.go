package hashmap

// finder holds the outcome of scanning a key's bucket: the bucket index and
// the position of the matching entry within it, or -1.
type finder[K comparable, V any] struct {
	m      *Map[K, V]
	hash   uint64
	bucket int
	pos    int
}

func (m *Map[K, V]) find(key K) finder[K, V] {
	hash := m.hash(key)
	f := finder[K, V]{
		m:      m,
		hash:   hash,
		bucket: bucketOf(hash, len(m.table)),
		pos:    -1,
	}

	for i, e := range m.table[f.bucket] {
		if e.hash == hash && e.key == key {
			f.pos = i
			break
		}
	}

	return f
}

func (f finder[K, V]) found() bool {
	return f.pos >= 0
}

func (f finder[K, V]) entry() *Entry[K, V] {
	if f.pos < 0 {
		return nil
	}

	return f.m.table[f.bucket][f.pos]
}

// unlink drops the found entry from its bucket. Buckets are unordered, so
// the last entry takes its place.
func (f finder[K, V]) unlink() {
	bucket := f.m.table[f.bucket]
	last := len(bucket) - 1
	bucket[f.pos] = bucket[last]
	bucket[last] = nil
	f.m.table[f.bucket] = bucket[:last]
}
