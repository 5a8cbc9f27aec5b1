package zon

import "strings"

// ============================================================
// Inline Compound Parser
// ============================================================
//
// Parses the single-line recursive grammar used inside quoted payloads
// and cells:
//
//   Object: {key:val,key2:val2}
//   Array:  [v1,v2,v3]
//   Scalar: bare token or "quoted string"
//
// Bare scalars run to the next ',', '{', '}', '[' or ']'. A quoted
// scalar inside a payload is always a string.

type inlineParser struct {
	input  string
	pos    int
	lineNo int
	opts   DecodeOptions
}

// parseValue parses one value at the given container depth.
func (p *inlineParser) parseValue(depth int) (*Value, error) {
	if depth > p.opts.MaxDepth {
		return nil, newErrorAt(DecodeDepth, p.lineNo, p.input, "nesting depth exceeds limit %d", p.opts.MaxDepth)
	}
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "unexpected end of inline payload")
	}

	switch p.input[p.pos] {
	case '{':
		return p.parseObject(depth)
	case '[':
		return p.parseArray(depth)
	case '"':
		s, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	default:
		return p.parseBare()
	}
}

func (p *inlineParser) parseObject(depth int) (*Value, error) {
	p.pos++ // consume '{'
	obj := Obj()

	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == '}' {
		p.pos++
		return obj, nil
	}

	for {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if isPoisonKey(key) {
			return nil, newErrorAt(DecodePoisonKey, p.lineNo, p.input, "forbidden object key %q", key)
		}
		if obj.Get(key) != nil {
			return nil, newErrorAt(DecodeKeyCollision, p.lineNo, p.input, "duplicate key %q", key)
		}

		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ':' {
			return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "expected ':' after key %q", key)
		}
		p.pos++

		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if obj.Len()+1 > p.opts.MaxObjectKeys {
			return nil, newErrorAt(ErrObjectKeys, p.lineNo, p.input, "object key count exceeds limit %d", p.opts.MaxObjectKeys)
		}
		obj.Set(key, v)

		p.skipSpaces()
		if p.pos >= len(p.input) {
			return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "unterminated inline object")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "expected ',' or '}' in inline object")
		}
	}
}

func (p *inlineParser) parseArray(depth int) (*Value, error) {
	p.pos++ // consume '['
	arr := Arr()

	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == ']' {
		p.pos++
		return arr, nil
	}

	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if arr.Len()+1 > p.opts.MaxArrayLen {
			return nil, newErrorAt(ErrArrayLen, p.lineNo, p.input, "array length exceeds limit %d", p.opts.MaxArrayLen)
		}
		arr.Append(v)

		p.skipSpaces()
		if p.pos >= len(p.input) {
			return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "unterminated inline array")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "expected ',' or ']' in inline array")
		}
	}
}

// parseKey parses an object key: a quoted literal or a bare run up to
// the separating ':'.
func (p *inlineParser) parseKey() (string, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return "", newErrorAt(DecodeBadCell, p.lineNo, p.input, "expected key in inline object")
	}
	if p.input[p.pos] == '"' {
		return p.parseQuoted()
	}
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ':' || c == ',' || c == '{' || c == '}' || c == '[' || c == ']' {
			break
		}
		p.pos++
	}
	key := strings.TrimSpace(p.input[start:p.pos])
	if key == "" {
		return "", newErrorAt(DecodeBadCell, p.lineNo, p.input, "empty key in inline object")
	}
	return key, nil
}

// parseQuoted parses a quoted string starting at the current position.
func (p *inlineParser) parseQuoted() (string, error) {
	content, consumed, err := scanQuotedPrefix(p.input[p.pos:], p.lineNo)
	if err != nil {
		return "", err
	}
	p.pos += consumed
	return content, nil
}

// parseBare scans a bare scalar to the next top-level separator.
func (p *inlineParser) parseBare() (*Value, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ',' || c == '}' || c == ']' || c == '{' || c == '[' {
			break
		}
		p.pos++
	}
	tok := strings.TrimSpace(p.input[start:p.pos])
	if tok == "" {
		return nil, newErrorAt(DecodeBadCell, p.lineNo, p.input, "empty value in inline payload")
	}
	return classifyBare(tok, p.lineNo)
}

func (p *inlineParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
