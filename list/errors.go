package list

type listError string

var _ error = listError("")

func (err listError) Error() string {
	return string(err)
}

const (
	ErrEmptyCollection = listError("list is empty")
	ErrIndexOutOfRange = listError("index out of range")
	ErrInvalidArgument = listError("invalid argument")
)
