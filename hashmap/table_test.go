package hashmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBucketOf_KnownValues(t *testing.T) {
	// frac(1*φ) = 0.618..., frac(2*φ) = 0.236...
	require.Equal(t, 6, bucketOf(1, 10))
	require.Equal(t, 2, bucketOf(2, 10))
	require.Equal(t, 0, bucketOf(0, 10))
}

func TestBucketOf_FoldsHighBits(t *testing.T) {
	require.Equal(t, bucketOf(1, 64), bucketOf(1<<32|0, 64))
	require.Equal(t, bucketOf(0xdeadbeef, 64), bucketOf(0xdeadbeef, 64))
}

func TestBucketOf_InRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hash := rapid.Uint64().Draw(t, "hash")
		n := rapid.IntRange(1, 1<<20).Draw(t, "buckets")

		idx := bucketOf(hash, n)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
	})

	require.Equal(t, 0, bucketOf(math.MaxUint32, 1))
}

// TestBucketOf_SpreadsSequentialKeys checks that small sequential integer
// hashes do not cluster.
func TestBucketOf_SpreadsSequentialKeys(t *testing.T) {
	for _, n := range []int{7, 10, 16, 100, 1024} {
		counts := make([]int, n)

		for h := 0; h < n*10; h++ {
			counts[bucketOf(uint64(h), n)]++
		}

		for idx, count := range counts {
			require.Greater(t, count, 0, "bucket %d of %d is empty", idx, n)
			require.LessOrEqual(t, count, 20, "bucket %d of %d holds %d keys", idx, n, count)
		}
	}
}

func TestGrown(t *testing.T) {
	require.Equal(t, 8, grown(4, 4, 0.75))
	require.Equal(t, 16, grown(1, 1, 0.1))
	require.Equal(t, 20, grown(10, 8, 0.75))
}

func TestTable_RehashMovesEntries(t *testing.T) {
	src := newTable[int, string](3)
	var entries []*Entry[int, string]

	for i := 0; i < 12; i++ {
		e := &Entry[int, string]{hash: DefaultHash(i), key: i}
		idx := bucketOf(e.hash, 3)
		src[idx] = append(src[idx], e)
		entries = append(entries, e)
	}

	dst := src.rehash(6)
	require.Len(t, dst, 6)

	moved := 0
	for idx, bucket := range dst {
		for _, e := range bucket {
			require.Equal(t, bucketOf(e.hash, 6), idx)
			require.Contains(t, entries, e)
			moved++
		}
	}
	require.Equal(t, len(entries), moved)
}
