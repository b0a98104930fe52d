package sequence

import "github.com/pkg/errors"

// interval represents a half-open interval of indices [start, end).
type interval struct {
	start int
	end   int
}

// within returns an error wrapping ErrOutOfRange if the interval is reversed
// or does not fit in a sequence of length n. An empty interval located
// inside the sequence, including at index n, is valid.
func (x interval) within(n int) error {
	if x.start < 0 || x.start > x.end || x.end > n {
		return errors.Wrapf(ErrOutOfRange, "interval [%d, %d) with length %d", x.start, x.end, n)
	}
	return nil
}

// len returns the number of indices in the interval.
func (x interval) len() int {
	return x.end - x.start
}
