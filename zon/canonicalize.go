package zon

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ============================================================
// Host-value Canonicalization
// ============================================================
//
// FromGo maps Go values onto the ZON data model before encoding:
//
//   nil                 -> null
//   bool                -> bool
//   int*/uint*          -> int (uint64 above MaxInt64 -> EncodeOverflow)
//   float32/float64     -> int if mathematically integral in i64 range,
//                          else float; NaN/Inf -> null
//   string              -> str
//   []byte              -> base64 str
//   time.Time           -> ISO 8601 str
//   json.Number         -> int or float (same rules)
//   *big.Int            -> int, or EncodeOverflow beyond i64
//   *big.Float          -> float if binary64 round-trips losslessly,
//                          else str carrying the decimal spelling
//   []any, slices       -> arr
//   map[string]T        -> obj (keys sorted for determinism)
//   []ObjEntry, *Value  -> pass-through
//
// Anything else fails with EncodeUnsupportedType. Cycles along the
// current path fail with EncodeCycle; sibling references to the same
// container are allowed.

// FromGo converts a host value to a ZON Value.
func FromGo(v any) (*Value, error) {
	c := &canonicalizer{seen: make(map[uintptr]bool)}
	return c.convert(v)
}

type canonicalizer struct {
	// seen tracks container identities along the current path only;
	// entries are removed on the way back up.
	seen map[uintptr]bool
}

func (c *canonicalizer) convert(v any) (*Value, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case *Value:
		if val == nil {
			return Null(), nil
		}
		return val, nil

	case bool:
		return Bool(val), nil

	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil

	case uint:
		return c.convertUint(uint64(val))
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return c.convertUint(val)

	case float32:
		return c.convertFloat(float64(val))
	case float64:
		return c.convertFloat(val)

	case string:
		return c.convertString(val)

	case []byte:
		return Str(base64.StdEncoding.EncodeToString(val)), nil

	case time.Time:
		return Str(val.UTC().Format("2006-01-02T15:04:05Z")), nil

	case json.Number:
		return c.convertNumber(val)

	case *big.Int:
		if !val.IsInt64() {
			return nil, newError(EncodeOverflow, "integer %s exceeds int64", val.String())
		}
		return Int(val.Int64()), nil

	case *big.Float:
		return c.convertBigFloat(val)

	case []any:
		return c.convertSlice(reflect.ValueOf(val))

	case map[string]any:
		return c.convertMap(reflect.ValueOf(val))

	case []ObjEntry:
		entries := make([]ObjEntry, 0, len(val))
		for _, e := range val {
			if isPoisonKey(e.Key) {
				return nil, newError(EncodePoisonKey, "forbidden object key %q", e.Key)
			}
			gv, err := c.convert(e.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ObjEntry{Key: e.Key, Value: gv})
		}
		return Obj(entries...), nil
	}

	// Reflection fallback for other slices, arrays and string-keyed maps.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return c.convertSlice(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, newError(EncodeUnsupportedType, "map key type %s is not a string", rv.Type().Key())
		}
		return c.convertMap(rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return Null(), nil
		}
		return c.convert(rv.Elem().Interface())
	}

	return nil, newError(EncodeUnsupportedType, "unsupported type %T", v)
}

func (c *canonicalizer) convertUint(u uint64) (*Value, error) {
	if u > math.MaxInt64 {
		return nil, newError(EncodeOverflow, "integer %d exceeds int64", u)
	}
	return Int(int64(u)), nil
}

// convertFloat rewrites NaN and infinities to null and folds
// mathematically integral values into Int.
func (c *canonicalizer) convertFloat(f float64) (*Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null(), nil
	}
	if f == math.Trunc(f) && f >= -9223372036854775808.0 && f < 9223372036854775808.0 {
		return Int(int64(f)), nil
	}
	return Float(f), nil
}

// convertString rejects strings the escape set cannot express: C0
// controls other than \t, \n, \r have no spelling in ZON.
func (c *canonicalizer) convertString(s string) (*Value, error) {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			return nil, newError(EncodeUnsupportedType, "string contains unencodable control character 0x%02x", b)
		}
	}
	return Str(s), nil
}

func (c *canonicalizer) convertNumber(n json.Number) (*Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		// Integral spelling that failed Int64: out of range.
		return nil, newError(EncodeOverflow, "integer %s exceeds int64", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, newError(EncodeUnsupportedType, "unparseable number %q", s)
	}
	return c.convertFloat(f)
}

// convertBigFloat keeps the value as binary64 when that is lossless,
// otherwise preserves the decimal spelling as a string.
func (c *canonicalizer) convertBigFloat(bf *big.Float) (*Value, error) {
	f, acc := bf.Float64()
	if acc == big.Exact {
		return c.convertFloat(f)
	}
	return Str(bf.Text('f', -1)), nil
}

func (c *canonicalizer) convertSlice(rv reflect.Value) (*Value, error) {
	if rv.Kind() == reflect.Slice {
		if rv.IsNil() {
			return Arr(), nil
		}
		ptr := rv.Pointer()
		if ptr != 0 && rv.Len() > 0 {
			if c.seen[ptr] {
				return nil, newError(EncodeCycle, "cycle detected through slice")
			}
			c.seen[ptr] = true
			defer delete(c.seen, ptr)
		}
	}

	items := make([]*Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		gv, err := c.convert(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		items = append(items, gv)
	}
	return Arr(items...), nil
}

func (c *canonicalizer) convertMap(rv reflect.Value) (*Value, error) {
	if rv.IsNil() {
		return Obj(), nil
	}
	ptr := rv.Pointer()
	if c.seen[ptr] {
		return nil, newError(EncodeCycle, "cycle detected through map")
	}
	c.seen[ptr] = true
	defer delete(c.seen, ptr)

	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	// Go map order is random; sort for a deterministic model.
	sort.Strings(keys)

	entries := make([]ObjEntry, 0, len(keys))
	for _, k := range keys {
		if isPoisonKey(k) {
			return nil, newError(EncodePoisonKey, "forbidden object key %q", k)
		}
		gv, err := c.convert(rv.MapIndex(reflect.ValueOf(k)).Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, ObjEntry{Key: k, Value: gv})
	}
	return Obj(entries...), nil
}

// isPoisonKey reports whether a key would enable prototype pollution in
// downstream JavaScript consumers.
func isPoisonKey(k string) bool {
	return k == "__proto__" || k == "constructor" || k == "prototype"
}
