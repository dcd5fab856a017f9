package hashmap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashFunc returns the identity hash of a key. Keys that compare equal must
// produce the same hash.
type HashFunc[K any] func(key K) uint64

// Hasher is implemented by keys that provide their own identity hash.
// DefaultHash prefers it over any built-in rule.
type Hasher interface {
	Hash() uint64
}

// DefaultHash is the HashFunc used by New. Integers hash to their own value,
// floats to their IEEE 754 bits, strings through xxhash. Any other key is
// hashed from its %#v rendering. Pointers and channels hash by address, also
// when held in an interface key.
// Struct keys with float fields should implement Hasher, as -0 and +0
// render differently but compare equal.
func DefaultHash[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case Hasher:
		return k.Hash()
	case string:
		return xxhash.Sum64String(k)
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	case float32:
		return floatHash(float64(k))
	case float64:
		return floatHash(k)
	case bool:
		if k {
			return 1
		}
		return 0
	}

	// %#v renders a top-level pointer by its pointee
	switch v := reflect.ValueOf(any(key)); v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return uint64(v.Pointer())
	}

	return xxhash.Sum64String(fmt.Sprintf("%#v", key))
}

func floatHash(f float64) uint64 {
	// -0 == +0
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}

// nilable reports whether values of K can be nil at all, so that
// lookups of non-nilable keys skip reflection.
func nilable[K comparable]() bool {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return true
	}

	return false
}

func isNil[K comparable](key K) bool {
	v := reflect.ValueOf(any(key))

	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer,
		reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}

	return false
}
