package jsonval

import (
	"strconv"
	"strings"
)

// parser is a recursive-descent parser over a scanner. Every production
// returns (value, next, ok, err): ok=false with a nil error means the
// position does not start this production and the caller may try another
// alternative; a non-nil error means the input committed to the production
// and is malformed, and parsing stops immediately.
type parser struct {
	sc *scanner
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipWhitespace consumes whitespace between tokens. Whitespace is never
// consumed inside strings or numbers.
func (p *parser) skipWhitespace(pos int) int {
	for {
		c, next, ok := p.sc.nextASCII(pos)
		if !ok || !isWhitespace(c) {
			return pos
		}
		pos = next
	}
}

// hardErr builds a committed-parse error at pos, preferring
// ErrUnexpectedEnd when the input is exhausted.
func (p *parser) hardErr(sentinel error, pos int) error {
	if p.sc.eof(pos) {
		return syntaxErr(ErrUnexpectedEnd, p.sc.distance(pos))
	}
	return syntaxErr(sentinel, p.sc.distance(pos))
}

// parseDocument parses a complete top-level document: an object, an array,
// or (only when fragments are permitted) any bare value. Trailing
// non-whitespace after the document is a hard error.
func (p *parser) parseDocument(pos int, allowFragments bool) (Value, error) {
	pos = p.skipWhitespace(pos)
	if p.sc.eof(pos) {
		return Value{}, syntaxErr(ErrUnexpectedEnd, p.sc.distance(pos))
	}

	v, next, ok, err := p.parseObject(pos)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		v, next, ok, err = p.parseArray(pos)
		if err != nil {
			return Value{}, err
		}
	}
	if !ok && allowFragments {
		v, next, ok, err = p.parseValue(pos)
		if err != nil {
			return Value{}, err
		}
	}
	if !ok {
		return Value{}, syntaxErr(ErrInvalidDocument, p.sc.distance(pos))
	}

	next = p.skipWhitespace(next)
	if !p.sc.eof(next) {
		return Value{}, syntaxErr(ErrTrailingData, p.sc.distance(next))
	}
	return v, nil
}

// parseValue attempts the grammar alternatives in order: string first
// since it cannot be confused with keywords or numbers, number last as the
// catch-all.
func (p *parser) parseValue(pos int) (Value, int, bool, error) {
	if v, next, ok, err := p.parseString(pos); ok || err != nil {
		return v, next, ok, err
	}
	if v, next, ok := p.parseLiteral(pos, "true", Bool(true)); ok {
		return v, next, true, nil
	}
	if v, next, ok := p.parseLiteral(pos, "false", Bool(false)); ok {
		return v, next, true, nil
	}
	if v, next, ok := p.parseLiteral(pos, "null", Null()); ok {
		return v, next, true, nil
	}
	if v, next, ok, err := p.parseObject(pos); ok || err != nil {
		return v, next, ok, err
	}
	if v, next, ok, err := p.parseArray(pos); ok || err != nil {
		return v, next, ok, err
	}
	return p.parseNumber(pos)
}

// parseLiteral matches a keyword character by character.
func (p *parser) parseLiteral(pos int, lit string, v Value) (Value, int, bool) {
	cur := pos
	for i := 0; i < len(lit); i++ {
		c, next, ok := p.sc.nextASCII(cur)
		if !ok || c != lit[i] {
			return Value{}, pos, false
		}
		cur = next
	}
	return v, cur, true
}

func (p *parser) parseObject(pos int) (Value, int, bool, error) {
	c, next, ok := p.sc.nextASCII(pos)
	if !ok || c != '{' {
		return Value{}, pos, false, nil
	}
	obj := make(map[string]Value)
	pos = p.skipWhitespace(next)

	if c, next, ok := p.sc.nextASCII(pos); ok && c == '}' {
		return Value{kind: KindObject, obj: obj}, next, true, nil
	}

	for {
		pos = p.skipWhitespace(pos)

		kv, next, ok, err := p.parseString(pos)
		if err != nil {
			return Value{}, pos, false, err
		}
		if !ok {
			return Value{}, pos, false, p.hardErr(ErrMissingObjectKey, pos)
		}
		key, _ := kv.Str()

		pos = p.skipWhitespace(next)
		c, next, ok := p.sc.nextASCII(pos)
		if !ok || c != ':' {
			return Value{}, pos, false, p.hardErr(ErrInvalidSeparator, pos)
		}

		pos = p.skipWhitespace(next)
		v, next, ok, err := p.parseValue(pos)
		if err != nil {
			return Value{}, pos, false, err
		}
		if !ok {
			return Value{}, pos, false, p.hardErr(ErrMissingValue, pos)
		}
		obj[key] = v

		pos = p.skipWhitespace(next)
		c, next, ok = p.sc.nextASCII(pos)
		if !ok {
			return Value{}, pos, false, p.hardErr(ErrInvalidSeparator, pos)
		}
		switch c {
		case ',':
			pos = next
		case '}':
			return Value{kind: KindObject, obj: obj}, next, true, nil
		default:
			return Value{}, pos, false, p.hardErr(ErrInvalidSeparator, pos)
		}
	}
}

func (p *parser) parseArray(pos int) (Value, int, bool, error) {
	c, next, ok := p.sc.nextASCII(pos)
	if !ok || c != '[' {
		return Value{}, pos, false, nil
	}
	arr := make([]Value, 0, 4)
	pos = p.skipWhitespace(next)

	if c, next, ok := p.sc.nextASCII(pos); ok && c == ']' {
		return Value{kind: KindArray, arr: arr}, next, true, nil
	}

	for {
		pos = p.skipWhitespace(pos)

		v, next, ok, err := p.parseValue(pos)
		if err != nil {
			return Value{}, pos, false, err
		}
		if !ok {
			return Value{}, pos, false, p.hardErr(ErrMalformedArray, pos)
		}
		arr = append(arr, v)

		pos = p.skipWhitespace(next)
		c, next, ok := p.sc.nextASCII(pos)
		if !ok {
			return Value{}, pos, false, p.hardErr(ErrMalformedArray, pos)
		}
		switch c {
		case ',':
			pos = next
		case ']':
			return Value{kind: KindArray, arr: arr}, next, true, nil
		default:
			return Value{}, pos, false, p.hardErr(ErrMalformedArray, pos)
		}
	}
}

// parseString scans for the closing quote, accumulating raw byte spans
// between escape markers; each span is decoded through the scanner and the
// pieces concatenated. Only ASCII code units can terminate a span, so
// arbitrary non-ASCII content passes through untouched.
func (p *parser) parseString(pos int) (Value, int, bool, error) {
	c, next, ok := p.sc.nextASCII(pos)
	if !ok || c != '"' {
		return Value{}, pos, false, nil
	}

	var sb strings.Builder
	pos = next
	spanStart := pos
	for {
		if p.sc.eof(pos) {
			// unterminated string
			return Value{}, pos, false, syntaxErr(ErrUnexpectedEnd, p.sc.distance(pos))
		}
		c, next, ok := p.sc.nextASCII(pos)
		if !ok {
			pos += p.sc.step
			continue
		}
		switch c {
		case '"':
			chunk, err := p.sc.decodeSpan(spanStart, pos)
			if err != nil {
				return Value{}, pos, false, err
			}
			sb.WriteString(chunk)
			return String(sb.String()), next, true, nil
		case '\\':
			chunk, err := p.sc.decodeSpan(spanStart, pos)
			if err != nil {
				return Value{}, pos, false, err
			}
			sb.WriteString(chunk)
			after, err := p.parseEscape(next, &sb)
			if err != nil {
				return Value{}, pos, false, err
			}
			pos = after
			spanStart = after
		default:
			pos = next
		}
	}
}

// parseEscape handles one escape sequence; pos is the position just after
// the backslash.
func (p *parser) parseEscape(pos int, sb *strings.Builder) (int, error) {
	c, next, ok := p.sc.nextASCII(pos)
	if !ok {
		return pos, p.hardErr(ErrInvalidEscape, pos)
	}
	switch c {
	case '"', '\\', '/':
		sb.WriteByte(c)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		return p.parseUnicodeEscape(next, sb)
	default:
		return pos, p.hardErr(ErrInvalidEscape, pos)
	}
	return next, nil
}

// parseUnicodeEscape handles \uXXXX; pos is the position just after the
// 'u'. A lead surrogate must be immediately followed by a \u escape
// producing a trail surrogate.
func (p *parser) parseUnicodeEscape(pos int, sb *strings.Builder) (int, error) {
	u, next, err := p.parseHex4(pos)
	if err != nil {
		return pos, err
	}
	switch {
	case u >= 0xD800 && u <= 0xDBFF:
		c, after, ok := p.sc.nextASCII(next)
		if !ok || c != '\\' {
			return next, p.hardErr(ErrMissingSurrogate, next)
		}
		c, after, ok = p.sc.nextASCII(after)
		if !ok || c != 'u' {
			return next, p.hardErr(ErrMissingSurrogate, next)
		}
		trail, after, err := p.parseHex4(after)
		if err != nil {
			return next, err
		}
		if trail < 0xDC00 || trail > 0xDFFF {
			return next, syntaxErr(ErrMissingSurrogate, p.sc.distance(next))
		}
		r := rune(u-0xD800)<<10 + rune(trail-0xDC00) + 0x10000
		sb.WriteRune(r)
		return after, nil
	case u >= 0xDC00 && u <= 0xDFFF:
		// trail surrogate with no lead
		return pos, syntaxErr(ErrInvalidEscape, p.sc.distance(pos))
	default:
		sb.WriteRune(rune(u))
		return next, nil
	}
}

// parseHex4 reads exactly four hex digits as one UTF-16 code unit.
func (p *parser) parseHex4(pos int) (uint16, int, error) {
	var u uint16
	for i := 0; i < 4; i++ {
		c, next, ok := p.sc.nextASCII(pos)
		if !ok {
			return 0, pos, p.hardErr(ErrInvalidEscape, pos)
		}
		var d uint16
		switch {
		case c >= '0' && c <= '9':
			d = uint16(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint16(c-'A') + 10
		default:
			return 0, pos, syntaxErr(ErrInvalidEscape, p.sc.distance(pos))
		}
		u = u<<4 | d
		pos = next
	}
	return u, pos, nil
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E'
}

// parseNumber gathers the run of numeric characters and scans it twice: as
// a maximal signed-integer prefix and as a maximal floating-point span.
// Identical lengths keep the integer result (exactness for whole numbers,
// falling back to float on overflow); a strictly longer float span keeps
// the float; zero consumed characters is no-match.
func (p *parser) parseNumber(pos int) (Value, int, bool, error) {
	var lit []byte
	cur := pos
	for {
		c, next, ok := p.sc.nextASCII(cur)
		if !ok || !isNumberChar(c) {
			break
		}
		lit = append(lit, c)
		cur = next
	}
	if len(lit) == 0 {
		return Value{}, pos, false, nil
	}

	s := string(lit)
	intLen := scanIntPrefix(s)
	floatLen := scanFloatPrefix(s)
	switch {
	case intLen == 0 && floatLen == 0:
		return Value{}, pos, false, nil
	case floatLen > intLen:
		// ParseFloat only fails on range here; strtod semantics keep the
		// saturated value.
		f, _ := strconv.ParseFloat(s[:floatLen], 64)
		return Float(f), pos + floatLen*p.sc.step, true, nil
	default:
		if n, err := strconv.ParseInt(s[:intLen], 10, 64); err == nil {
			return Int(n), pos + intLen*p.sc.step, true, nil
		}
		f, _ := strconv.ParseFloat(s[:intLen], 64)
		return Float(f), pos + intLen*p.sc.step, true, nil
	}
}

// scanIntPrefix returns the length of the maximal signed decimal integer
// prefix of s, or 0 if there is none.
func scanIntPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// scanFloatPrefix returns the length of the maximal floating-point prefix
// of s, or 0 if there is none. The accepted shape follows strtod: optional
// sign, digits with an optional fraction (a bare trailing dot is
// consumed), and an exponent only when it carries at least one digit.
func scanFloatPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		expDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}
