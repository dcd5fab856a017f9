package minheap

type heapError string

var _ error = heapError("")

func (err heapError) Error() string {
	return string(err)
}

const (
	ErrEmptyCollection = heapError("heap is empty")
	ErrTypeMismatch    = heapError("elements cannot be ordered")
)
