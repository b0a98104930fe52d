package sequence

import "github.com/pkg/errors"

// Map returns a new Sequence holding f applied to each value of s, in order.
// The returned sequence has the same length as s. f receives a copy of each
// value and cannot modify s.
func Map[T, U any](s *Sequence[T], f func(T) U) *Sequence[U] {
	x := Sequence[U]{data: make([]U, s.Len())}
	for i := 0; i < len(x.data); i++ {
		x.data[i] = f(s.data[i])
	}
	return &x
}

// MapErr is like Map for transforms that can fail. It stops at the first
// error returned by f and returns it annotated with the index of the value.
func MapErr[T, U any](s *Sequence[T], f func(T) (U, error)) (*Sequence[U], error) {
	x := Sequence[U]{data: make([]U, s.Len())}
	for i := 0; i < len(x.data); i++ {
		v, err := f(s.data[i])
		if err != nil {
			return nil, errors.Wrapf(err, "value at index %d", i)
		}
		x.data[i] = v
	}
	return &x, nil
}
