package list

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Verify walks the ring and returns every broken invariant it finds, or nil:
// each node's neighbours point back at it, only the first node is a
// sentinel, and the ring closes after exactly Len() nodes.
func (l *List[T]) Verify() error {
	var result *multierror.Error

	if l.sentinel == nil || !l.sentinel.sentinel {
		return errors.New("list has no sentinel")
	}

	n := l.sentinel
	count := 0

	for {
		if n.detached() {
			result = multierror.Append(result, errors.Errorf("node %d is detached", count))
			break
		}

		if n.next.prev != n {
			result = multierror.Append(result, errors.Errorf("node %d: next.prev does not point back", count))
		}

		if n.prev.next != n {
			result = multierror.Append(result, errors.Errorf("node %d: prev.next does not point back", count))
		}

		n = n.next

		if n == l.sentinel {
			break
		}

		count++

		if n.sentinel {
			result = multierror.Append(result, errors.Errorf("node %d is a foreign sentinel", count))
		}

		// a ring that does not return to the sentinel
		if count > l.size {
			result = multierror.Append(result, errors.Errorf("ring does not close after %d nodes", l.size))
			break
		}
	}

	if count < l.size {
		result = multierror.Append(result, errors.Errorf("length is %d, but ring holds %d nodes", l.size, count))
	}

	return result.ErrorOrNil()
}
