package sequence

import (
	"fmt"
	"reflect"
	"strconv"
)

const (
	formatBasePrefix = '['
	formatSeparator  = ", "
	formatBaseSuffix = ']'
)

// String returns a textual representation of the sequence, listing its values
// in order, e.g. [2, 4, 6]. Values of a string kind are quoted unless they
// implement fmt.Stringer.
func (s *Sequence[T]) String() string {
	if s.Len() == 0 {
		return "[]"
	}
	buf := make([]byte, 0, 2+s.Len()*4)
	buf = append(buf, formatBasePrefix)
	for i, v := range s.data {
		if i > 0 {
			buf = append(buf, formatSeparator...)
		}
		buf = appendValue(buf, v)
	}
	buf = append(buf, formatBaseSuffix)
	return string(buf)
}

// appendValue appends the textual representation of v to buf.
func appendValue(buf []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return strconv.AppendQuote(buf, x)
	case int:
		return strconv.AppendInt(buf, int64(x), 10)
	case int64:
		return strconv.AppendInt(buf, x, 10)
	case uint64:
		return strconv.AppendUint(buf, x, 10)
	case float64:
		return strconv.AppendFloat(buf, x, 'g', -1, 64)
	case float32:
		return strconv.AppendFloat(buf, float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return fmt.Append(buf, x)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return strconv.AppendQuote(buf, rv.String())
	}
	return fmt.Append(buf, v)
}
