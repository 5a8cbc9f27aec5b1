package zon

import (
	"strings"
	"unicode/utf8"
)

// ============================================================
// Line / CSV Tokenizer
// ============================================================

// normalizeInput validates document-level properties and normalizes
// line endings. BOMs are rejected, the input must be well-formed UTF-8,
// and the document byte limit applies before any further work.
func normalizeInput(text string, opts DecodeOptions) (string, error) {
	if len(text) > opts.MaxDocumentBytes {
		return "", newError(ErrDocumentBytes, "document size %d exceeds limit %d", len(text), opts.MaxDocumentBytes)
	}
	if strings.HasPrefix(text, "\ufeff") {
		return "", newError(DecodeBadUTF8, "byte order mark is not permitted")
	}
	if !utf8.ValidString(text) {
		return "", newError(DecodeBadUTF8, "input is not well-formed UTF-8")
	}
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}

// splitLines breaks normalized input into physical lines, enforcing the
// per-line byte limit as each line is encountered.
func splitLines(text string, opts DecodeOptions) ([]string, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if len(line) > opts.MaxLineBytes {
			return nil, newErrorAt(ErrLineBytes, i+1, line, "line length %d exceeds limit %d", len(line), opts.MaxLineBytes)
		}
	}
	return lines, nil
}

// splitRow splits a table data row into fields, honoring RFC-4180
// quoting: a field beginning with '"' runs to the matching quote, with
// "" collapsing to one '"'. The returned fields have the CSV layer
// removed; the ZON quoting layer beneath is left intact.
func splitRow(line string, lineNo int) ([]string, error) {
	var fields []string
	i := 0
	n := len(line)

	for {
		if i < n && line[i] == '"' {
			var sb strings.Builder
			i++
			closed := false
			for i < n {
				c := line[i]
				if c == '"' {
					if i+1 < n && line[i+1] == '"' {
						sb.WriteByte('"')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				sb.WriteByte(c)
				i++
			}
			if !closed {
				return nil, newErrorAt(DecodeUnterminatedString, lineNo, line, "unterminated quoted field")
			}
			if i < n && line[i] != ',' {
				return nil, newErrorAt(DecodeBadCell, lineNo, line, "data after closing quote in field %d", len(fields)+1)
			}
			fields = append(fields, sb.String())
		} else {
			start := i
			for i < n && line[i] != ',' {
				i++
			}
			fields = append(fields, line[start:i])
		}

		if i >= n {
			return fields, nil
		}
		i++ // consume ','
		if i >= n {
			// Trailing comma: final empty field.
			fields = append(fields, "")
			return fields, nil
		}
	}
}
