package hashmap

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/webbmaffian/go-collections/internal/equal"
)

const (
	DefaultBuckets   = 10
	DefaultThreshold = 0.75
)

// Map is a hash map resolving collisions by chaining. Whenever a Put makes
// the load factor (entries per bucket) strictly larger than the threshold,
// the bucket table is doubled and every entry redistributed.
//
// Nil keys are rejected with ErrNullKey; nil values are allowed.
//
// The zero Map is not usable; create maps with New, NewDefault or
// NewWithHasher.
//
// A Map is not safe for concurrent use. Callers must synchronize access.
type Map[K comparable, V any] struct {
	table     table[K, V]
	threshold float64
	size      int
	hash      HashFunc[K]
	nilable   bool
	log       zerolog.Logger
}

// New creates a map with initCap buckets that resizes once the load factor
// exceeds threshold. Keys are hashed with DefaultHash.
func New[K comparable, V any](initCap int, threshold float64) (*Map[K, V], error) {
	return NewWithHasher[K, V](initCap, threshold, DefaultHash[K])
}

// NewDefault creates a map with 10 buckets and a threshold of 0.75.
func NewDefault[K comparable, V any]() *Map[K, V] {
	m, _ := New[K, V](DefaultBuckets, DefaultThreshold)
	return m
}

// NewWithHasher is like New, but hashes keys with the given function.
func NewWithHasher[K comparable, V any](initCap int, threshold float64, hash HashFunc[K]) (m *Map[K, V], err error) {
	if initCap <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "initial capacity must be positive, got %d", initCap)
	}

	if !(threshold > 0) || math.IsInf(threshold, 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "threshold must be a positive number, got %v", threshold)
	}

	if hash == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "hash function must not be nil")
	}

	m = &Map[K, V]{
		table:     newTable[K, V](initCap),
		threshold: threshold,
		hash:      hash,
		nilable:   nilable[K](),
		log:       zerolog.Nop(),
	}

	return
}

// SetLogger sets the logger resizes are reported to at debug level.
func (m *Map[K, V]) SetLogger(log zerolog.Logger) {
	m.log = log.With().Str("component", "hashmap").Logger()
}

func (m *Map[K, V]) checkKey(key K) error {
	if m.nilable && isNil(key) {
		return ErrNullKey
	}

	return nil
}

// Get returns the value stored for key, or the zero value if there is none.
// Use Lookup or ContainsKey to tell a stored zero value from a missing key.
func (m *Map[K, V]) Get(key K) (val V, err error) {
	val, _, err = m.Lookup(key)
	return
}

// Lookup returns the value stored for key and whether the key is present.
func (m *Map[K, V]) Lookup(key K) (val V, ok bool, err error) {
	e, err := m.GetEntry(key)

	if err != nil || e == nil {
		return
	}

	return e.val, true, nil
}

// GetEntry returns the entry holding key, or nil if the key is not present.
func (m *Map[K, V]) GetEntry(key K) (*Entry[K, V], error) {
	if err := m.checkKey(key); err != nil {
		return nil, err
	}

	return m.find(key).entry(), nil
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) (bool, error) {
	if err := m.checkKey(key); err != nil {
		return false, err
	}

	return m.find(key).found(), nil
}

// ContainsValue reports whether any entry holds a value structurally equal
// to val. A nil val only matches nil values. Runs in O(n).
func (m *Map[K, V]) ContainsValue(val V) bool {
	for _, bucket := range m.table {
		for _, e := range bucket {
			if equal.Values(e.val, val) {
				return true
			}
		}
	}

	return false
}

// Put associates val with key. If the key was present, its value is replaced
// in place and the previous value is returned with replaced set.
func (m *Map[K, V]) Put(key K, val V) (old V, replaced bool, err error) {
	if err = m.checkKey(key); err != nil {
		return
	}

	f := m.find(key)

	if e := f.entry(); e != nil {
		old, replaced = e.val, true
		e.val = val
		return
	}

	m.table[f.bucket] = append(m.table[f.bucket], &Entry[K, V]{
		hash: f.hash,
		key:  key,
		val:  val,
	})
	m.size++

	if m.LoadFactor() > m.threshold {
		m.resize()
	}

	return
}

func (m *Map[K, V]) resize() {
	from := len(m.table)
	to := grown(from, m.size, m.threshold)
	m.table = m.table.rehash(to)

	m.log.Debug().
		Int("from", from).
		Int("to", to).
		Int("size", m.size).
		Msg("resized bucket table")
}

// Remove deletes key and returns the value it held. The table never shrinks.
func (m *Map[K, V]) Remove(key K) (old V, removed bool, err error) {
	if err = m.checkKey(key); err != nil {
		return
	}

	f := m.find(key)

	if !f.found() {
		return
	}

	old, removed = f.entry().val, true
	f.unlink()
	m.size--
	return
}

// Clear removes every entry, keeping the current bucket count.
func (m *Map[K, V]) Clear() {
	m.table = newTable[K, V](len(m.table))
	m.size = 0
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Buckets returns the number of buckets in the table.
func (m *Map[K, V]) Buckets() int {
	return len(m.table)
}

func (m *Map[K, V]) Threshold() float64 {
	return m.threshold
}

func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.table))
}

func (m *Map[K, V]) Iterate() Iterator[K, V] {
	return Iterator[K, V]{
		m: m,
	}
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	iter := m.Iterate()

	for iter.Next() {
		keys = append(keys, iter.Key())
	}

	return keys
}

func (m *Map[K, V]) Values() []V {
	vals := make([]V, 0, m.size)
	iter := m.Iterate()

	for iter.Next() {
		vals = append(vals, iter.Val())
	}

	return vals
}
