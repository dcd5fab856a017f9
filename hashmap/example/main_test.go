package main

import (
	"testing"

	"github.com/webbmaffian/go-collections/hashmap"
)

type val [256]byte

func BenchmarkPut(b *testing.B) {
	m := hashmap.NewDefault[uint64, val]()

	var v val

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Put(uint64(i), v)
	}
}

func BenchmarkPutPresized(b *testing.B) {
	m, err := hashmap.New[uint64, val](b.N/2+1, 2)

	if err != nil {
		b.Fatal(err)
	}

	var v val

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.Put(uint64(i), v)
	}
}

func BenchmarkGet(b *testing.B) {
	m := hashmap.NewDefault[uint64, val]()

	var v val

	for i := 0; i < b.N; i++ {
		m.Put(uint64(i), v)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = m.Get(uint64(i))
	}
}

func BenchmarkGetString(b *testing.B) {
	m := hashmap.NewDefault[string, int]()
	keys := make([]string, b.N)

	for i := range keys {
		keys[i] = string(rune('a'+i%26)) + string(rune('A'+i%17)) + string(rune('0'+i%10))
		m.Put(keys[i], i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i])
	}
}

func BenchmarkRemove(b *testing.B) {
	m := hashmap.NewDefault[uint64, val]()

	var v val

	for i := 0; i < b.N; i++ {
		m.Put(uint64(i), v)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = m.Remove(uint64(i))
	}
}
