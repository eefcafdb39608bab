package jsonval

// Encoding identifies the Unicode encoding of an input buffer.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	case UTF32BE:
		return "utf-32be"
	case UTF32LE:
		return "utf-32le"
	default:
		return "<invalid>"
	}
}

// step returns the byte width of one code unit.
func (e Encoding) step() int {
	switch e {
	case UTF16BE, UTF16LE:
		return 2
	case UTF32BE, UTF32LE:
		return 4
	default:
		return 1
	}
}

// detectEncoding inspects up to the first 4 bytes of buf and returns the
// detected encoding plus the number of BOM bytes to skip.
//
// BOM patterns are tested longest first: the UTF-32LE BOM FF FE 00 00 is a
// superset of the UTF-16LE BOM FF FE, so the 4-byte patterns must win.
// Without a BOM, the first JSON byte is a structural ASCII character, which
// forces predictable zero-byte positions under the wide encodings.
func detectEncoding(buf []byte) (Encoding, int) {
	if len(buf) >= 4 {
		if buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF {
			return UTF32BE, 4
		}
		if buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00 {
			return UTF32LE, 4
		}
	}
	if len(buf) >= 2 {
		if buf[0] == 0xFE && buf[1] == 0xFF {
			return UTF16BE, 2
		}
		if buf[0] == 0xFF && buf[1] == 0xFE {
			return UTF16LE, 2
		}
	}
	if len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
		return UTF8, 3
	}

	if len(buf) >= 4 {
		switch {
		case buf[0] == 0 && buf[1] == 0 && buf[2] == 0 && buf[3] != 0:
			return UTF32BE, 0
		case buf[0] != 0 && buf[1] == 0 && buf[2] == 0 && buf[3] == 0:
			return UTF32LE, 0
		case buf[0] == 0 && buf[1] != 0 && buf[2] == 0 && buf[3] != 0:
			return UTF16BE, 0
		case buf[0] != 0 && buf[1] == 0 && buf[2] != 0 && buf[3] == 0:
			return UTF16LE, 0
		}
	} else if len(buf) >= 2 {
		switch {
		case buf[0] == 0 && buf[1] != 0:
			return UTF16BE, 0
		case buf[0] != 0 && buf[1] == 0:
			return UTF16LE, 0
		}
	}
	return UTF8, 0
}
