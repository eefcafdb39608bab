package jsonval

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// scanner is a random-access view over an immutable byte buffer with a
// fixed encoding. Positions are byte offsets; the step is the byte width of
// one code unit (1 for UTF-8, 2 for UTF-16, 4 for UTF-32). All index
// arithmetic is bounds-checked.
type scanner struct {
	buf  []byte
	enc  Encoding
	step int
}

func newScanner(buf []byte, enc Encoding) *scanner {
	return &scanner{buf: buf, enc: enc, step: enc.step()}
}

// eof reports whether no complete code unit remains at pos.
func (s *scanner) eof(pos int) bool {
	return pos+s.step > len(s.buf)
}

// distance converts a byte offset into a code-unit count for diagnostics.
func (s *scanner) distance(pos int) int64 {
	return int64(pos / s.step)
}

// nextASCII returns the code unit at pos and the position after it, but
// only when that unit is an ASCII character under the encoding's
// padding-byte layout. It is used for delimiters, keywords and numeric
// literals; arbitrary string content never requires it.
func (s *scanner) nextASCII(pos int) (byte, int, bool) {
	if s.eof(pos) {
		return 0, pos, false
	}
	b := s.buf
	switch s.enc {
	case UTF8:
		if b[pos] < 0x80 {
			return b[pos], pos + 1, true
		}
	case UTF16BE:
		if b[pos] == 0 && b[pos+1] < 0x80 {
			return b[pos+1], pos + 2, true
		}
	case UTF16LE:
		if b[pos+1] == 0 && b[pos] < 0x80 {
			return b[pos], pos + 2, true
		}
	case UTF32BE:
		if b[pos] == 0 && b[pos+1] == 0 && b[pos+2] == 0 && b[pos+3] < 0x80 {
			return b[pos+3], pos + 4, true
		}
	case UTF32LE:
		if b[pos] < 0x80 && b[pos+1] == 0 && b[pos+2] == 0 && b[pos+3] == 0 {
			return b[pos], pos + 4, true
		}
	}
	return 0, pos, false
}

// decodeSpan decodes buf[begin:end] as text in the scanner's encoding.
// Invalid input fails with ErrEncoding. The x/text decoders substitute
// U+FFFD instead of failing, so code-unit validity is checked first.
func (s *scanner) decodeSpan(begin, end int) (string, error) {
	span := s.buf[begin:end]
	if len(span) == 0 {
		return "", nil
	}
	switch s.enc {
	case UTF8:
		if !utf8.Valid(span) {
			return "", syntaxErr(ErrEncoding, s.distance(begin))
		}
		return string(span), nil
	case UTF16BE, UTF16LE:
		order := binary.ByteOrder(binary.BigEndian)
		endian := unicode.BigEndian
		if s.enc == UTF16LE {
			order = binary.LittleEndian
			endian = unicode.LittleEndian
		}
		if err := s.validateUTF16(span, order, begin); err != nil {
			return "", err
		}
		out, err := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder().Bytes(span)
		if err != nil {
			return "", syntaxErr(ErrEncoding, s.distance(begin))
		}
		return string(out), nil
	case UTF32BE, UTF32LE:
		order := binary.ByteOrder(binary.BigEndian)
		endian := utf32.BigEndian
		if s.enc == UTF32LE {
			order = binary.LittleEndian
			endian = utf32.LittleEndian
		}
		if err := s.validateUTF32(span, order, begin); err != nil {
			return "", err
		}
		out, err := utf32.UTF32(endian, utf32.IgnoreBOM).NewDecoder().Bytes(span)
		if err != nil {
			return "", syntaxErr(ErrEncoding, s.distance(begin))
		}
		return string(out), nil
	}
	return "", syntaxErr(ErrEncoding, s.distance(begin))
}

// validateUTF16 checks that every surrogate code unit in span is part of a
// correctly ordered pair.
func (s *scanner) validateUTF16(span []byte, order binary.ByteOrder, begin int) error {
	if len(span)%2 != 0 {
		return syntaxErr(ErrEncoding, s.distance(begin))
	}
	for i := 0; i < len(span); i += 2 {
		u := order.Uint16(span[i:])
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+4 > len(span) {
				return syntaxErr(ErrEncoding, s.distance(begin+i))
			}
			trail := order.Uint16(span[i+2:])
			if trail < 0xDC00 || trail > 0xDFFF {
				return syntaxErr(ErrEncoding, s.distance(begin+i))
			}
			i += 2
		case u >= 0xDC00 && u <= 0xDFFF:
			return syntaxErr(ErrEncoding, s.distance(begin+i))
		}
	}
	return nil
}

// validateUTF32 checks that every code unit in span is a Unicode scalar
// value.
func (s *scanner) validateUTF32(span []byte, order binary.ByteOrder, begin int) error {
	if len(span)%4 != 0 {
		return syntaxErr(ErrEncoding, s.distance(begin))
	}
	for i := 0; i < len(span); i += 4 {
		u := order.Uint32(span[i:])
		if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
			return syntaxErr(ErrEncoding, s.distance(begin+i))
		}
	}
	return nil
}
