package hashmap

// Entry is a key-value pair owned by a Map. The key is fixed once stored;
// the value can be changed in place. An entry keeps its identity across
// resizes, so a pointer obtained from GetEntry stays attached to the map
// until the key is removed.
type Entry[K comparable, V any] struct {
	hash uint64
	key  K
	val  V
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.val
}

func (e *Entry[K, V]) SetValue(val V) {
	e.val = val
}
