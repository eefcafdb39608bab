package jsonval

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which JSON variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "<invalid>"
	}
}

// Value is a JSON value: exactly one of null, bool, number, string, object
// or array. The zero Value is null. A constructed Value is immutable;
// structural changes are made by building a new tree.
//
// A number holds either an int64 or a float64 payload. The decoder prefers
// the integer form whenever a literal is exactly representable as one.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	isInt bool
	s     string
	arr   []Value
	obj   map[string]Value
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a number Value holding an exact 64-bit integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, i: i, isInt: true}
}

// Float returns a number Value holding a float64.
func Float(f float64) Value {
	return Value{kind: KindNumber, f: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array returns an array Value. The items are copied, so the new Value is
// the sole owner of its children.
func Array(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// Object returns an object Value. The fields map is copied, so the new
// Value is the sole owner of its children.
func Object(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. The second result is false when v is
// not a bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int64 returns the integer payload. The second result is false when v is
// not a number or the number was not stored in integer form.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber || !v.isInt {
		return 0, false
	}
	return v.i, true
}

// Float64 returns the numeric payload as a float64. It succeeds for both
// number forms; the second result is false when v is not a number.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.isInt {
		return float64(v.i), true
	}
	return v.f, true
}

// Str returns the string payload. The second result is false when v is not
// a string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Items returns the array elements. The second result is false when v is
// not an array. The returned slice is shared with v and must not be
// modified.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Fields returns the object members. The second result is false when v is
// not an object. The returned map is shared with v and must not be
// modified; iteration order is unspecified.
func (v Value) Fields() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Get returns the member value for key. The second result is false when v
// is not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	child, ok := v.obj[key]
	return child, ok
}

// Index returns the i'th array element. The second result is false when v
// is not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Len returns the number of elements for arrays, members for objects, and
// 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Equal reports deep structural equality. Two numbers are equal iff their
// magnitudes are equal, independent of integer-vs-float form, so
// Int(2).Equal(Float(2.0)) is true. Array order is significant; object
// member order is not.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		if v.isInt && other.isInt {
			return v.i == other.i
		}
		a, _ := v.Float64()
		b, _ := other.Float64()
		return a == b
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, a := range v.obj {
			b, ok := other.obj[k]
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// finite reports whether a number payload may be serialized.
func (v Value) finite() bool {
	if v.kind != KindNumber || v.isInt {
		return true
	}
	return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
}

// String renders a compact debug form of v. It is meant for logs and test
// failure messages, not for output; use Encode for that.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		if v.isInt {
			return strconv.FormatInt(v.i, 10)
		}
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindObject:
		var sb strings.Builder
		sb.WriteByte('{')
		first := true
		for k, item := range v.obj {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			sb.WriteString(item.String())
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return "<invalid>"
	}
}
