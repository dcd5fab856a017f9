// Package equal provides the structural equality shared by the containers.
package equal

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Container values may be of any type, unexported fields included.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Values reports whether a and b are structurally equal. A type with an
// Equal(T) bool method is compared through it. Nil only equals nil.
func Values[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}
