// Package jsonval models JSON documents as a closed tagged union and
// converts between that model and JSON text. Input is accepted in UTF-8,
// UTF-16 (BE/LE) and UTF-32 (BE/LE), with or without a byte-order mark;
// output is always UTF-8.
package jsonval

// Logger is an optional structured logger accepted by Codec. Arguments are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DecodeOptions configures Decode. A nil *DecodeOptions means defaults.
type DecodeOptions struct {
	// AllowFragments permits a top-level scalar instead of requiring an
	// array or object.
	AllowFragments bool
}

// EncodeOptions configures Encode. A nil *EncodeOptions means defaults.
type EncodeOptions struct {
	// PrettyPrinted emits human-readable formatting whitespace.
	PrettyPrinted bool
}

// Decoder turns JSON text into a Value tree.
type Decoder interface {
	Decode(data []byte, opts *DecodeOptions) (Value, error)
}

// Encoder turns a Value tree into JSON text.
type Encoder interface {
	Encode(v Value, opts *EncodeOptions) ([]byte, error)
}

// Compile-time interface compliance checks
var (
	_ Decoder = (*Codec)(nil)
	_ Encoder = (*Codec)(nil)
)

// Codec is the entry point for decoding and encoding. The zero Codec is
// ready to use; both operations are pure functions over their inputs and
// safe for concurrent use.
type Codec struct {
	Logger Logger // Optional logger (nil = no logging)
}

// Decode parses JSON text into a Value tree. The encoding is detected from
// the leading bytes; a BOM, when present, is skipped.
func (c *Codec) Decode(data []byte, opts *DecodeOptions) (Value, error) {
	allowFragments := opts != nil && opts.AllowFragments
	enc, bomLen := detectEncoding(data)

	c.logDebug("Decoding JSON",
		"encoding", enc.String(),
		"bom_bytes", bomLen,
		"size_bytes", len(data),
		"allow_fragments", allowFragments,
	)

	p := &parser{sc: newScanner(data[bomLen:], enc)}
	v, err := p.parseDocument(0, allowFragments)
	if err != nil {
		c.logError("JSON decode failed",
			"encoding", enc.String(),
			"error", err.Error(),
		)
		return Value{}, err
	}

	c.logDebug("Decoded JSON", "kind", v.Kind().String())
	return v, nil
}

// Encode renders a Value tree as UTF-8 JSON text.
func (c *Codec) Encode(v Value, opts *EncodeOptions) ([]byte, error) {
	pretty := opts != nil && opts.PrettyPrinted

	s := &serializer{pretty: pretty}
	if err := s.serialize(v); err != nil {
		c.logError("JSON encode failed",
			"kind", v.Kind().String(),
			"error", err.Error(),
		)
		return nil, err
	}

	c.logDebug("Encoded JSON",
		"kind", v.Kind().String(),
		"pretty", pretty,
		"size_bytes", len(s.buf),
	)
	return s.buf, nil
}

// Decode parses JSON text with a zero Codec.
func Decode(data []byte, opts *DecodeOptions) (Value, error) {
	return (&Codec{}).Decode(data, opts)
}

// Encode renders a Value tree with a zero Codec.
func Encode(v Value, opts *EncodeOptions) ([]byte, error) {
	return (&Codec{}).Encode(v, opts)
}

// logDebug logs a debug message if a logger is configured
func (c *Codec) logDebug(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}

// logError logs an error message if a logger is configured
func (c *Codec) logError(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Error(msg, args...)
	}
}
