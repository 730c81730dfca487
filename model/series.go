package model

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Column is a generic slice of ordered values, used for the columns of a Dataframe.
type Column[T constraints.Ordered] []T

// Values returns all values of the column
func (c Column[T]) Values() []T {
	return c
}

// Last returns the value at the given position counting backwards from the end.
// Last(0) is the newest value.
func (c Column[T]) Last(position int) T {
	return c[len(c)-1-position]
}

// LastValues returns the newest `size` values, or the whole column when it is shorter.
func (c Column[T]) LastValues(size int) []T {
	if l := len(c); l > size {
		return c[l-size:]
	}
	return c
}

// NumDecPlaces returns the number of decimal places of a float64 value
func NumDecPlaces(v float64) int64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return int64(len(s) - i - 1)
	}
	return 0
}
