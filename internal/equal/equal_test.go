package equal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
	tags []string
}

func TestValues(t *testing.T) {
	require.True(t, Values(1, 1))
	require.False(t, Values("a", "b"))

	// unexported fields are compared
	require.True(t, Values(point{1, 2, []string{"a"}}, point{1, 2, []string{"a"}}))
	require.False(t, Values(point{1, 2, nil}, point{1, 3, nil}))

	// pointers compare by what they point to
	require.True(t, Values(&point{x: 1}, &point{x: 1}))
}

func TestValues_Nil(t *testing.T) {
	var p *point

	require.True(t, Values(p, nil))
	require.False(t, Values(p, &point{}))
	require.True(t, Values[any](nil, nil))
	require.False(t, Values[any](nil, 0))
}

func TestValues_EqualMethod(t *testing.T) {
	// time.Time is compared through its Equal method, ignoring location
	utc := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.True(t, Values(utc, utc.In(time.FixedZone("X", 3600))))
}
