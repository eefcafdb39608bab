package jsonval

import (
	"fmt"
	"math"

	json "github.com/eznix86/jsonval/jsoncompat"
)

// FromGo builds a Value tree from a Go value. Natives (nil, bool, numbers,
// string, []any, map[string]any and their Value-typed forms) convert
// directly; anything else is lowered through the jsoncompat marshaller and
// re-decoded, so struct tags apply.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []Value:
		return Array(x...), nil
	case map[string]Value:
		return Object(x), nil
	case []any:
		arr := make([]Value, 0, len(x))
		for i, item := range x {
			child, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			arr = append(arr, child)
		}
		return Value{kind: KindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(x))
		for k, item := range x {
			child, err := FromGo(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			obj[k] = child
		}
		return Value{kind: KindObject, obj: obj}, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return Value{}, fmt.Errorf("convert %T: %w", v, err)
		}
		return Decode(data, &DecodeOptions{AllowFragments: true})
	}
}

func fromUint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Float(float64(u))
}

// Interface projects the tree back to Go natives: nil, bool, int64,
// float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if v.isInt {
			return v.i
		}
		return v.f
	case KindString:
		return v.s
	case KindArray:
		arr := make([]any, len(v.arr))
		for i, item := range v.arr {
			arr[i] = item.Interface()
		}
		return arr
	case KindObject:
		obj := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			obj[k] = item.Interface()
		}
		return obj
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler, so a Value embeds directly in
// structs handled by encoding/json or the jsoncompat implementation.
func (v Value) MarshalJSON() ([]byte, error) {
	return Encode(v, nil)
}

// UnmarshalJSON implements json.Unmarshaler. Fragments are permitted since
// the enclosing decoder hands over any value position.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Decode(data, &DecodeOptions{AllowFragments: true})
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
