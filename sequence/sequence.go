package sequence

import "github.com/mohae/deepcopy"

// A Sequence represents an ordered, growable series of values of type T.
// Values are kept in insertion order and indexed from 0 to Len()-1. The zero
// value is an empty sequence ready to use.
type Sequence[T any] struct {
	data []T
}

// New creates and initializes a new empty Sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// NewFromValues creates a new Sequence using a copy of values as its initial
// content.
func NewFromValues[T any](values ...T) *Sequence[T] {
	s := Sequence[T]{}
	if len(values) > 0 {
		s.data = make([]T, len(values))
		copy(s.data, values)
	}
	return &s
}

// Push appends x to the end of the sequence.
func (s *Sequence[T]) Push(x T) {
	s.data = append(s.data, x)
}

// Pop removes and returns the last value of the sequence. The second return
// value is false if the sequence is empty.
func (s *Sequence[T]) Pop() (T, bool) {
	var zero T
	n := s.Len()
	if n == 0 {
		return zero, false
	}
	x := s.data[n-1]
	s.data[n-1] = zero
	s.data = s.data[:n-1]
	return x, true
}

// Len returns the number of values in the sequence.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// IsEmpty reports whether the sequence holds no values.
func (s *Sequence[T]) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the value at index i. The second return value is false if i is
// outside the sequence.
func (s *Sequence[T]) At(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

// Set replaces the value at index i with x. It returns false, leaving the
// sequence unchanged, if i is outside the sequence.
func (s *Sequence[T]) Set(i int, x T) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	s.data[i] = x
	return true
}

// First returns the first value of the sequence.
func (s *Sequence[T]) First() (T, bool) {
	return s.At(0)
}

// Last returns the last value of the sequence.
func (s *Sequence[T]) Last() (T, bool) {
	return s.At(s.Len() - 1)
}

// Clear removes all values from the sequence.
func (s *Sequence[T]) Clear() {
	if s == nil {
		return
	}
	var zero T
	for i := range s.data {
		s.data[i] = zero
	}
	s.data = s.data[:0]
}

// Slice returns a new Sequence holding a copy of the values in the half-open
// range [start, end). It returns an error wrapping ErrOutOfRange if start is
// negative, if start is greater than end or if end is greater than the length
// of the sequence. Slice(i, i) returns an empty sequence for any valid i.
func (s *Sequence[T]) Slice(start, end int) (*Sequence[T], error) {
	r := interval{start: start, end: end}
	if err := r.within(s.Len()); err != nil {
		return nil, err
	}
	x := Sequence[T]{data: make([]T, r.len())}
	copy(x.data, s.values()[r.start:r.end])
	return &x, nil
}

// Values returns a copy of the values stored in the sequence.
func (s *Sequence[T]) Values() []T {
	data := make([]T, s.Len())
	if len(data) > 0 {
		copy(data, s.data)
	}
	return data
}

// values returns the backing slice of s, or nil if s is nil.
func (s *Sequence[T]) values() []T {
	if s == nil {
		return nil
	}
	return s.data
}

// Filter returns a new Sequence holding, in order, the values for which f
// returns true.
func (s *Sequence[T]) Filter(f func(T) bool) *Sequence[T] {
	x := Sequence[T]{}
	for _, v := range s.values() {
		if f(v) {
			x.data = append(x.data, v)
		}
	}
	return &x
}

// Reverse returns a new Sequence holding the values of s in reverse order.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	n := s.Len()
	x := Sequence[T]{data: make([]T, n)}
	for i, v := range s.values() {
		x.data[n-1-i] = v
	}
	return &x
}

// Append appends a copy of the values of other to the end of the sequence.
func (s *Sequence[T]) Append(other *Sequence[T]) {
	if other.Len() == 0 {
		return
	}
	s.data = append(s.data, other.data...)
}

// Clone returns a copy of s. Values are copied by assignment, so values
// holding pointers, slices or maps still refer to the same underlying data.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return NewFromValues(s.values()...)
}

// DeepCopy returns a copy of s in which every value is recursively duplicated,
// including the data referenced by pointers, slices and maps. Unexported struct
// fields are not copied. Values that cannot be duplicated are copied by
// assignment.
func (s *Sequence[T]) DeepCopy() *Sequence[T] {
	x := Sequence[T]{data: make([]T, s.Len())}
	for i, v := range s.values() {
		x.data[i] = v
		if c, ok := deepcopy.Copy(v).(T); ok {
			x.data[i] = c
		}
	}
	return &x
}
