package hashmap

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Verify checks the structural invariants of the map and returns every
// violation found, or nil: each entry sits in the bucket its hash maps to,
// keys are unique, the size matches the entry count and the load factor is
// within the threshold.
func (m *Map[K, V]) Verify() error {
	var result *multierror.Error

	if len(m.table) == 0 {
		return errors.New("bucket table is empty")
	}

	seen := make(map[K]int, m.size)
	count := 0

	for idx, bucket := range m.table {
		for _, e := range bucket {
			count++

			if e == nil {
				result = multierror.Append(result, errors.Errorf("nil entry in bucket %d", idx))
				continue
			}

			if hash := m.hash(e.key); hash != e.hash {
				result = multierror.Append(result, errors.Errorf("key %v has stale hash %d, expected %d", e.key, e.hash, hash))
			}

			if want := bucketOf(e.hash, len(m.table)); want != idx {
				result = multierror.Append(result, errors.Errorf("key %v stored in bucket %d, expected %d", e.key, idx, want))
			}

			if prev, ok := seen[e.key]; ok {
				result = multierror.Append(result, errors.Errorf("key %v stored in both bucket %d and %d", e.key, prev, idx))
			}

			seen[e.key] = idx
		}
	}

	if count != m.size {
		result = multierror.Append(result, errors.Errorf("size is %d, but table holds %d entries", m.size, count))
	}

	if m.LoadFactor() > m.threshold {
		result = multierror.Append(result, errors.Errorf("load factor %.3f exceeds threshold %.3f", m.LoadFactor(), m.threshold))
	}

	return result.ErrorOrNil()
}
