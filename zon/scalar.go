package zon

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Scalar Parser
// ============================================================

// classifyBare classifies an unquoted token. Order matters: reserved
// bool/null spellings, then the number grammar, then the leading-zero
// and ISO carve-outs, then plain string.
func classifyBare(tok string, lineNo int) (*Value, error) {
	switch tok {
	case "T":
		return Bool(true), nil
	case "F":
		return Bool(false), nil
	}

	switch strings.ToLower(tok) {
	case "null", "none", "nil":
		return Null(), nil
	}

	if isNumberToken(tok) {
		return parseNumberToken(tok, lineNo)
	}

	// Leading-zero digit runs and ISO-looking scalars keep their lexeme.
	return Str(tok), nil
}

// parseNumberToken converts a token already matched by the number
// grammar. Spellings without a fraction or exponent are Int; integer
// spellings that overflow int64 fall back to float64. Fraction and
// exponent spellings are Float, even when integral (1e6, 5.0); canonFloat
// re-encodes those without a decimal point or exponent.
func parseNumberToken(tok string, lineNo int) (*Value, error) {
	if !strings.ContainsAny(tok, ".eE") {
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Int(n), nil
		}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, newErrorAt(DecodeBadNumber, lineNo, tok, "number %q does not fit binary64", tok)
	}
	return Float(f), nil
}

// unquoteScalar parses a complete "…" literal: the token must begin and
// end with an unescaped quote with nothing after it. Only the permitted
// backslash escapes are accepted.
func unquoteScalar(tok string, lineNo int) (string, error) {
	if len(tok) < 2 || tok[0] != '"' {
		return "", newErrorAt(DecodeUnterminatedString, lineNo, tok, "expected quoted scalar")
	}

	var sb strings.Builder
	sb.Grow(len(tok) - 2)
	i := 1
	for i < len(tok) {
		c := tok[i]
		switch c {
		case '"':
			if i != len(tok)-1 {
				return "", newErrorAt(DecodeBadCell, lineNo, tok, "data after closing quote")
			}
			return sb.String(), nil
		case '\\':
			if i+1 >= len(tok) {
				return "", newErrorAt(DecodeUnterminatedString, lineNo, tok, "dangling backslash")
			}
			switch tok[i+1] {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				return "", newErrorAt(DecodeBadEscape, lineNo, tok, `invalid escape \%c`, tok[i+1])
			}
			i += 2
		default:
			if c == '\n' {
				return "", newErrorAt(DecodeUnterminatedString, lineNo, tok, "literal newline in quoted scalar")
			}
			sb.WriteByte(c)
			i++
		}
	}
	return "", newErrorAt(DecodeUnterminatedString, lineNo, tok, "unterminated quoted scalar")
}

// isQuotedToken reports whether a token carries the ZON quoting layer.
func isQuotedToken(tok string) bool {
	return len(tok) > 0 && tok[0] == '"'
}
