package hashmap

import "math"

// hashMult is the fractional part of the golden ratio, (√5-1)/2.
var hashMult = (math.Sqrt(5) - 1) / 2

type table[K comparable, V any] [][]*Entry[K, V]

func newTable[K comparable, V any](buckets int) table[K, V] {
	return make(table[K, V], buckets)
}

// bucketOf spreads a hash over n buckets with Fibonacci hashing:
// floor(n * frac(h * φ)), where h is the hash folded to 32 unsigned bits.
// n does not have to be prime nor a power of two.
func bucketOf(hash uint64, n int) int {
	x := float64(uint32(hash^(hash>>32))) * hashMult
	idx := int(float64(n) * (x - math.Floor(x)))

	// frac(x) < 1, but n*frac(x) may still round up to n
	if idx >= n {
		idx = n - 1
	}

	return idx
}

// grown returns the bucket count a table of n buckets doubles to so that
// size entries stay within threshold.
func grown(n, size int, threshold float64) int {
	n *= 2

	for float64(size)/float64(n) > threshold {
		n *= 2
	}

	return n
}

// rehash moves every entry of t into a fresh table of n buckets. Entries are
// moved by pointer, never copied.
func (t table[K, V]) rehash(n int) table[K, V] {
	dst := newTable[K, V](n)

	for _, bucket := range t {
		for _, e := range bucket {
			idx := bucketOf(e.hash, n)
			dst[idx] = append(dst[idx], e)
		}
	}

	return dst
}
