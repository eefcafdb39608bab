package jsonval

import (
	"fmt"
	"math"
	"strconv"
)

// serializer walks a Value tree depth-first and appends UTF-8 text.
type serializer struct {
	buf    []byte
	pretty bool
	depth  int
}

func (s *serializer) serialize(v Value) error {
	switch v.kind {
	case KindNull:
		s.buf = append(s.buf, "null"...)
	case KindBool:
		if v.b {
			s.buf = append(s.buf, "true"...)
		} else {
			s.buf = append(s.buf, "false"...)
		}
	case KindNumber:
		return s.appendNumber(v)
	case KindString:
		s.appendString(v.s)
	case KindObject:
		return s.appendObject(v.obj)
	case KindArray:
		return s.appendArray(v.arr)
	}
	return nil
}

func (s *serializer) indent() {
	for i := 0; i < s.depth; i++ {
		s.buf = append(s.buf, ' ', ' ')
	}
}

func (s *serializer) appendObject(obj map[string]Value) error {
	s.buf = append(s.buf, '{')
	if s.pretty {
		s.buf = append(s.buf, '\n')
		s.depth++
	}
	first := true
	for k, v := range obj {
		if !first {
			s.buf = append(s.buf, ',')
			if s.pretty {
				s.buf = append(s.buf, '\n')
			}
		}
		first = false
		if s.pretty {
			s.indent()
		}
		s.appendString(k)
		s.buf = append(s.buf, ':')
		if s.pretty {
			s.buf = append(s.buf, ' ')
		}
		if err := s.serialize(v); err != nil {
			return err
		}
	}
	if s.pretty {
		s.depth--
		s.buf = append(s.buf, '\n')
		s.indent()
	}
	s.buf = append(s.buf, '}')
	return nil
}

func (s *serializer) appendArray(arr []Value) error {
	s.buf = append(s.buf, '[')
	if s.pretty {
		s.buf = append(s.buf, '\n')
		s.depth++
	}
	for i, v := range arr {
		if i > 0 {
			s.buf = append(s.buf, ',')
			if s.pretty {
				s.buf = append(s.buf, '\n')
			}
		}
		if s.pretty {
			s.indent()
		}
		if err := s.serialize(v); err != nil {
			return err
		}
	}
	if s.pretty {
		s.depth--
		s.buf = append(s.buf, '\n')
		s.indent()
	}
	s.buf = append(s.buf, ']')
	return nil
}

const hexDigits = "0123456789abcdef"

// appendString emits a quoted string mirroring the decoder's escape table.
// Control characters without a short escape become \u00xx; the forward
// slash is left unescaped; non-ASCII text passes through as UTF-8.
func (s *serializer) appendString(str string) {
	s.buf = append(s.buf, '"')
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case c == '"':
			s.buf = append(s.buf, '\\', '"')
		case c == '\\':
			s.buf = append(s.buf, '\\', '\\')
		case c == '\b':
			s.buf = append(s.buf, '\\', 'b')
		case c == '\f':
			s.buf = append(s.buf, '\\', 'f')
		case c == '\n':
			s.buf = append(s.buf, '\\', 'n')
		case c == '\r':
			s.buf = append(s.buf, '\\', 'r')
		case c == '\t':
			s.buf = append(s.buf, '\\', 't')
		case c < 0x20:
			s.buf = append(s.buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		default:
			s.buf = append(s.buf, c)
		}
	}
	s.buf = append(s.buf, '"')
}

// maxExactInt is 2^63 as a float64; floats in (-2^63, 2^63) convert to
// int64 without overflow.
const maxExactInt = float64(1 << 63)

// appendNumber renders a number with locale-independent formatting:
// integer payloads and integral floats print with no decimal point, other
// floats with up to 15 significant digits and trailing zeros stripped.
func (s *serializer) appendNumber(v Value) error {
	if !v.finite() {
		return fmt.Errorf("%w: %v", ErrNonFiniteNumber, v.f)
	}
	if v.isInt {
		s.buf = strconv.AppendInt(s.buf, v.i, 10)
		return nil
	}
	f := v.f
	if f == math.Trunc(f) && f >= -maxExactInt && f < maxExactInt {
		s.buf = strconv.AppendInt(s.buf, int64(f), 10)
		return nil
	}
	s.buf = strconv.AppendFloat(s.buf, f, 'g', 15, 64)
	return nil
}
