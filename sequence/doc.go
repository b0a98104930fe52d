/*
Package sequence implements an ordered, growable container for time-series data points.
It defines the generic type Sequence, with methods for appending, removing and reading
values, and a set of functions for projecting a sequence onto another element type and
for computing variations between consecutive values.

A Sequence follows an append-only pattern at its tail: values are added with Push and
removed with Pop, and indices always run from 0 to Len()-1 in insertion order. Reading
past either end is not an error; methods such as Pop, First and At report absence with
a boolean instead.

Sub-ranges extracted with Slice, and results of Map, Filter or Reverse, never share
storage with their source.

Variations are defined for numeric element types:

	s := sequence.NewFromValues(1, 2, 4)
	d := sequence.Diff(s)           // [1, 2]
	p, err := sequence.PctChange(s) // [1, 1]

PctChange, PctChangeN and Div return ErrDivisionByZero when a divisor is zero rather than
producing infinite or NaN values.

A Sequence is not safe for concurrent use.
*/
package sequence
