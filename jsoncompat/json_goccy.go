//go:build goccy

package json

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// goccy/go-json implementation, selected with the "goccy" build tag

type (
	Decoder    = gojson.Decoder
	Encoder    = gojson.Encoder
	RawMessage = gojson.RawMessage
)

func NewDecoder(r io.Reader) *Decoder {
	return gojson.NewDecoder(r)
}

func NewEncoder(w io.Writer) *Encoder {
	return gojson.NewEncoder(w)
}

func Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

func Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func Valid(data []byte) bool {
	return gojson.Valid(data)
}
