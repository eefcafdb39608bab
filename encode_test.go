package jsonval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prettyPrinted = &EncodeOptions{PrettyPrinted: true}

func TestEncode_Compact(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "null", v: Null(), want: "null"},
		{name: "true", v: Bool(true), want: "true"},
		{name: "false", v: Bool(false), want: "false"},
		{name: "empty object", v: Object(nil), want: "{}"},
		{name: "empty array", v: Array(), want: "[]"},
		{name: "single member", v: Object(map[string]Value{"0.1": Float(0.1)}), want: `{"0.1":0.1}`},
		{name: "array", v: Array(Int(1), String("a"), Null()), want: `[1,"a",null]`},
		{name: "nested", v: Array(Array(Int(1)), Object(map[string]Value{"b": Bool(true)})), want: `[[1],{"b":true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.v, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEncode_Numbers(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "int", v: Int(1), want: "1"},
		{name: "negative int", v: Int(-1), want: "-1"},
		{name: "zero", v: Int(0), want: "0"},
		{name: "float", v: Float(1.3), want: "1.3"},
		{name: "negative float", v: Float(-1.3), want: "-1.3"},
		{name: "no trailing zero padding", v: Float(0.1), want: "0.1"},
		{name: "integral float drops the point", v: Float(1000), want: "1000"},
		{name: "small fraction", v: Float(0.001), want: "0.001"},
		{name: "large integral float", v: Float(1e16), want: "10000000000000000"},
		{name: "beyond int64 range", v: Float(1e20), want: "1e+20"},
		{name: "max int64", v: Int(math.MaxInt64), want: "9223372036854775807"},
		{name: "min int64", v: Int(math.MinInt64), want: "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.v, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEncode_NumericLiteralNormalization(t *testing.T) {
	// 1e3 and 1E-3 decode to the same Number values as 1000 and 0.001, so
	// re-encoding the decoded literal yields the canonical forms.
	v, err := Decode([]byte(`[1, -1, 1.3, -1.3, 1e3, 1E-3]`), nil)
	require.NoError(t, err)

	out, err := Encode(v, nil)
	require.NoError(t, err)
	assert.Equal(t, `[1,-1,1.3,-1.3,1000,0.001]`, string(out))

	direct, err := Encode(Array(Int(1), Int(-1), Float(1.3), Float(-1.3), Float(1000), Float(0.001)), nil)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(direct))
}

func TestEncode_Strings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "abc", want: `"abc"`},
		{name: "quote", in: `a"b`, want: `"a\"b"`},
		{name: "backslash", in: `a\b`, want: `"a\\b"`},
		{name: "short escapes", in: "\b\f\n\r\t", want: `"\b\f\n\r\t"`},
		{name: "control characters", in: "\x01\x1f", want: `"\u0001\u001f"`},
		{name: "forward slash unescaped", in: "a/b", want: `"a/b"`},
		{name: "non-ascii passthrough", in: "héllo 世界 𝄞", want: `"héllo 世界 𝄞"`},
		{name: "empty", in: "", want: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(String(tt.in), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEncode_Pretty(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{
			name: "object",
			v:    Object(map[string]Value{"a": Int(1)}),
			want: "{\n  \"a\": 1\n}",
		},
		{
			name: "array",
			v:    Array(Int(1), Int(2)),
			want: "[\n  1,\n  2\n]",
		},
		{
			name: "nested",
			v:    Array(Array(Int(1))),
			want: "[\n  [\n    1\n  ]\n]",
		},
		{
			name: "object in array",
			v:    Array(Object(map[string]Value{"a": Bool(true)})),
			want: "[\n  {\n    \"a\": true\n  }\n]",
		},
		{
			name: "empty object",
			v:    Object(nil),
			want: "{\n\n}",
		},
		{
			name: "empty array",
			v:    Array(),
			want: "[\n\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.v, prettyPrinted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEncode_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{name: "nan", v: Float(math.NaN())},
		{name: "positive infinity", v: Float(math.Inf(1))},
		{name: "negative infinity", v: Float(math.Inf(-1))},
		{name: "nested in array", v: Array(Int(1), Float(math.NaN()))},
		{name: "nested in object", v: Object(map[string]Value{"a": Float(math.Inf(1))})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.v, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNonFiniteNumber)
			assert.Nil(t, out)
		})
	}
}
