package jsonval

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDecodeFrom(t *testing.T) {
	t.Run("reads until exhausted", func(t *testing.T) {
		v, err := DecodeFrom(strings.NewReader(`{"a":[1,2]}`), nil)
		require.NoError(t, err)

		a, ok := v.Get("a")
		require.True(t, ok)
		assert.True(t, a.Equal(Array(Int(1), Int(2))))
	})

	t.Run("fragment option applies", func(t *testing.T) {
		v, err := DecodeFrom(strings.NewReader("42"), fragments)
		require.NoError(t, err)
		assert.True(t, v.Equal(Int(42)))
	})

	t.Run("reader failure", func(t *testing.T) {
		_, err := DecodeFrom(failingReader{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read input")
	})

	t.Run("parse failure surfaces verbatim", func(t *testing.T) {
		_, err := DecodeFrom(strings.NewReader(`{3}`), nil)
		assert.ErrorIs(t, err, ErrMissingObjectKey)
	})
}

func TestEncodeTo(t *testing.T) {
	t.Run("writes encoded output", func(t *testing.T) {
		var buf bytes.Buffer
		err := EncodeTo(&buf, Array(Int(1), Int(2)), nil)
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", buf.String())
	})

	t.Run("pretty option applies", func(t *testing.T) {
		var buf bytes.Buffer
		err := EncodeTo(&buf, Array(Int(1)), prettyPrinted)
		require.NoError(t, err)
		assert.Equal(t, "[\n  1\n]", buf.String())
	})

	t.Run("writer failure", func(t *testing.T) {
		err := EncodeTo(failingWriter{}, Null(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write output")
	})

	t.Run("encode failure skips the write", func(t *testing.T) {
		err := EncodeTo(failingWriter{}, Array(Float(math.NaN())), nil)
		assert.ErrorIs(t, err, ErrNonFiniteNumber)
	})
}
