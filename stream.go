package jsonval

import (
	"fmt"
	"io"
)

// DecodeFrom reads r until exhausted and decodes the buffered bytes. The
// reader owns any cancellation contract; decoding itself never blocks.
func (c *Codec) DecodeFrom(r io.Reader, opts *DecodeOptions) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, fmt.Errorf("read input: %w", err)
	}
	return c.Decode(data, opts)
}

// EncodeTo encodes v and writes the result to w.
func (c *Codec) EncodeTo(w io.Writer, v Value, opts *EncodeOptions) error {
	data, err := c.Encode(v, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// DecodeFrom reads r until exhausted and decodes with a zero Codec.
func DecodeFrom(r io.Reader, opts *DecodeOptions) (Value, error) {
	return (&Codec{}).DecodeFrom(r, opts)
}

// EncodeTo encodes v to w with a zero Codec.
func EncodeTo(w io.Writer, v Value, opts *EncodeOptions) error {
	return (&Codec{}).EncodeTo(w, v, opts)
}
