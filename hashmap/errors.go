package hashmap

type mapError string

var _ error = mapError("")

func (err mapError) Error() string {
	return string(err)
}

const (
	ErrNullKey         = mapError("key must not be nil")
	ErrInvalidArgument = mapError("invalid argument")
)
