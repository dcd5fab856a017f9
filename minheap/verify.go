package minheap

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Verify returns every position whose parent compares greater than the
// element at it, or nil if the heap order holds.
func (h *MinHeap[T]) Verify() error {
	if len(h.items) < 2 {
		return nil
	}

	if !h.order.Defined() {
		return h.mismatch()
	}

	var result *multierror.Error

	for k := 1; k < len(h.items); k++ {
		if parent := (k - 1) / 2; h.compare(parent, k) > 0 {
			result = multierror.Append(result, errors.Errorf("element at %d is greater than its child at %d", parent, k))
		}
	}

	return result.ErrorOrNil()
}
