package sequence

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types supporting variations and arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Diff returns the differences between consecutive values of s, that is
// s[i] - s[i-1] for i >= 1. The result is empty if s holds fewer than two
// values.
func Diff[T Number](s *Sequence[T]) *Sequence[T] {
	return DiffN(s, 1)
}

// DiffN returns the differences over n periods, s[i] - s[i-n] for i >= n.
// The result is empty if s holds n values or fewer. Differences of unsigned
// values wrap around following Go arithmetic. DiffN panics if n < 1.
func DiffN[T Number](s *Sequence[T], n int) *Sequence[T] {
	x := Sequence[T]{data: make([]T, lagged(s.Len(), n))}
	for i := range x.data {
		x.data[i] = s.data[i+n] - s.data[i]
	}
	return &x
}

// PctChange returns the relative changes between consecutive values of s,
// (s[i] - s[i-1]) / s[i-1] for i >= 1. The result is empty if s holds fewer
// than two values. It returns an error wrapping ErrDivisionByZero if a prior
// value is zero.
func PctChange[T Number](s *Sequence[T]) (*Sequence[float64], error) {
	return PctChangeN(s, 1)
}

// PctChangeN returns the relative changes over n periods,
// (s[i] - s[i-n]) / s[i-n] for i >= n. It returns an error wrapping
// ErrDivisionByZero if a prior value is zero. PctChangeN panics if n < 1.
func PctChangeN[T Number](s *Sequence[T], n int) (*Sequence[float64], error) {
	x := Sequence[float64]{data: make([]float64, lagged(s.Len(), n))}
	for i := range x.data {
		prev := s.data[i]
		if prev == 0 {
			return nil, errors.Wrapf(ErrDivisionByZero, "prior value at index %d", i)
		}
		x.data[i] = (float64(s.data[i+n]) - float64(prev)) / float64(prev)
	}
	return &x, nil
}

// Add returns the element-wise sum of a and b. The result has the length of
// the shorter sequence.
func Add[T Number](a, b *Sequence[T]) *Sequence[T] {
	return combine(a, b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference of a and b. The result has the
// length of the shorter sequence.
func Sub[T Number](a, b *Sequence[T]) *Sequence[T] {
	return combine(a, b, func(x, y T) T { return x - y })
}

// Mul returns the element-wise product of a and b. The result has the length
// of the shorter sequence.
func Mul[T Number](a, b *Sequence[T]) *Sequence[T] {
	return combine(a, b, func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient of a and b. The result has the length
// of the shorter sequence. It returns an error wrapping ErrDivisionByZero if
// a value of b used as divisor is zero.
func Div[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if b.data[i] == 0 {
			return nil, errors.Wrapf(ErrDivisionByZero, "divisor at index %d", i)
		}
	}
	return combine(a, b, func(x, y T) T { return x / y }), nil
}

// combine applies f to the pairs of values sharing the same index in a and b.
func combine[T any](a, b *Sequence[T], f func(x, y T) T) *Sequence[T] {
	x := Sequence[T]{data: make([]T, min(a.Len(), b.Len()))}
	for i := range x.data {
		x.data[i] = f(a.data[i], b.data[i])
	}
	return &x
}

// lagged returns the number of values produced by comparing each value of a
// sequence of length length with the value n periods before it.
func lagged(length, n int) int {
	if n < 1 {
		panic("sequence: non-positive period")
	}
	if length <= n {
		return 0
	}
	return length - n
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
