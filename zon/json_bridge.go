package zon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON and the ZON value model. Reading uses a token
// stream with json.Number so object order survives and large integers
// keep their precision; writing emits order-preserving JSON by hand
// because encoding/json maps cannot hold entry order.

// FromJSON parses JSON bytes into a Value.
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := readJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("zon: JSON parse error: %w", err)
	}
	// Reject trailing content after the first value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("zon: trailing data after JSON value")
	}
	return v, nil
}

func readJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return readJSONToken(dec, tok)
}

func readJSONToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil

	case bool:
		return Bool(t), nil

	case string:
		return FromGo(t)

	case json.Number:
		return FromGo(t)

	case json.Delim:
		switch t {
		case '{':
			obj := Obj()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				if isPoisonKey(key) {
					return nil, newError(EncodePoisonKey, "forbidden object key %q", key)
				}
				val, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil

		case '[':
			arr := Arr()
			for dec.More() {
				val, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)

	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

// ToJSON renders a Value as compact JSON, preserving object entry
// order as decoded.
func ToJSON(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v *Value) error {
	switch v.Type() {
	case TypeNull:
		buf.WriteString("null")

	case TypeBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case TypeInt:
		buf.WriteString(strconv.FormatInt(v.intVal, 10))

	case TypeFloat:
		b, err := json.Marshal(v.floatVal)
		if err != nil {
			return err
		}
		buf.Write(b)

	case TypeStr:
		b, err := json.Marshal(v.strVal)
		if err != nil {
			return err
		}
		buf.Write(b)

	case TypeArr:
		buf.WriteByte('[')
		for i, elem := range v.arrVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case TypeObj:
		buf.WriteByte('{')
		for i, entry := range v.objVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(entry.Key)
			if err != nil {
				return err
			}
			buf.Write(b)
			buf.WriteByte(':')
			if err := writeJSONValue(buf, entry.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	default:
		return fmt.Errorf("zon: unsupported value type %s", v.Type())
	}
	return nil
}
