package jsonval

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valueCmp lets go-cmp diff Value trees using structural equality.
var valueCmp = cmp.Comparer(func(a, b Value) bool { return a.Equal(b) })

func sampleTree() Value {
	return Object(map[string]Value{
		"null":   Null(),
		"bool":   Bool(true),
		"int":    Int(-42),
		"float":  Float(1.25),
		"string": String("héllo \"world\"\n𝄞"),
		"array":  Array(Int(1), String("two"), Null(), Array(Bool(false))),
		"object": Object(map[string]Value{
			"nested": Array(Float(0.001), Int(1000)),
		}),
	})
}

func TestRoundTrip(t *testing.T) {
	tree := sampleTree()

	t.Run("compact", func(t *testing.T) {
		out, err := Encode(tree, nil)
		require.NoError(t, err)

		back, err := Decode(out, nil)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(tree, back, valueCmp))
	})

	t.Run("pretty", func(t *testing.T) {
		out, err := Encode(tree, prettyPrinted)
		require.NoError(t, err)

		back, err := Decode(out, nil)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(tree, back, valueCmp))
	})
}

func TestFormatIndependence(t *testing.T) {
	// pretty and compact renderings decode to structurally identical trees
	tree := sampleTree()

	compact, err := Encode(tree, nil)
	require.NoError(t, err)
	pretty, err := Encode(tree, prettyPrinted)
	require.NoError(t, err)

	fromCompact, err := Decode(compact, nil)
	require.NoError(t, err)
	fromPretty, err := Decode(pretty, nil)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(fromCompact, fromPretty, valueCmp))
}

func TestDecode_WideEncodings(t *testing.T) {
	const doc = `{ "hello": "world", "swift": "rocks", "note": "héllo 𝄞" }`

	want, err := Decode([]byte(doc), nil)
	require.NoError(t, err)

	for _, enc := range []Encoding{UTF8, UTF16BE, UTF16LE, UTF32BE, UTF32LE} {
		for _, withBOM := range []bool{false, true} {
			name := enc.String()
			if withBOM {
				name += " with bom"
			}
			t.Run(name, func(t *testing.T) {
				data := encodeText(t, doc, enc, withBOM)
				got, err := Decode(data, nil)
				require.NoError(t, err)
				assert.Empty(t, cmp.Diff(want, got, valueCmp))
			})
		}
	}
}

func TestDecode_UTF16BEWithoutBOM(t *testing.T) {
	// the heuristic alone must identify 00 7B 00 7D as UTF-16BE "{}"
	v, err := Decode([]byte{0x00, 0x7B, 0x00, 0x7D}, nil)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	assert.Zero(t, v.Len())
}

func TestDecode_SurrogatePairEscape(t *testing.T) {
	doc := `"\uD834\uDD1E"`
	for _, enc := range []Encoding{UTF8, UTF16BE, UTF32LE} {
		t.Run(enc.String(), func(t *testing.T) {
			v, err := Decode(encodeText(t, doc, enc, false), fragments)
			require.NoError(t, err)
			s, ok := v.Str()
			require.True(t, ok)
			assert.Equal(t, "\U0001D11E", s)
		})
	}
}

// testLogger records log calls for assertions.
type testLogger struct {
	debugs []string
	errors []string
}

func (l *testLogger) Debug(msg string, args ...any) { l.debugs = append(l.debugs, msg) }
func (l *testLogger) Info(msg string, args ...any)  {}
func (l *testLogger) Warn(msg string, args ...any)  {}
func (l *testLogger) Error(msg string, args ...any) { l.errors = append(l.errors, msg) }

func TestCodecLogging(t *testing.T) {
	t.Run("decode success logs debug", func(t *testing.T) {
		logger := &testLogger{}
		c := &Codec{Logger: logger}

		_, err := c.Decode([]byte(`{"a":1}`), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, logger.debugs)
		assert.Empty(t, logger.errors)
	})

	t.Run("decode failure logs error", func(t *testing.T) {
		logger := &testLogger{}
		c := &Codec{Logger: logger}

		_, err := c.Decode([]byte(`{"a":}`), nil)
		require.Error(t, err)
		assert.NotEmpty(t, logger.errors)
	})

	t.Run("encode failure logs error", func(t *testing.T) {
		logger := &testLogger{}
		c := &Codec{Logger: logger}

		_, err := c.Encode(Array(Float(math.Inf(1))), nil)
		require.Error(t, err)
		assert.NotEmpty(t, logger.errors)
	})

	t.Run("nil logger is fine", func(t *testing.T) {
		c := &Codec{}
		_, err := c.Decode([]byte(`[]`), nil)
		require.NoError(t, err)
	})
}
