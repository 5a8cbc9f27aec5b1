package zon

import "fmt"

// VType represents ZON value types.
type VType uint8

const (
	TypeNull VType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeStr
	TypeArr
	TypeObj
)

// String returns the type name.
func (t VType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "str"
	case TypeArr:
		return "arr"
	case TypeObj:
		return "obj"
	default:
		return "unknown"
	}
}

// Value represents a ZON value.
type Value struct {
	typ VType

	// Scalar values (only one valid based on typ)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	// Container values
	arrVal []*Value
	objVal []ObjEntry
}

// ObjEntry represents a key-value pair in an object.
// Entry order is insertion order; the encoder re-orders keys alphabetically.
type ObjEntry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{typ: TypeNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{typ: TypeBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{typ: TypeInt, intVal: v}
}

// Float creates a float value. The caller is responsible for keeping
// NaN/Inf out; FromGo rewrites those to Null before they reach here.
func Float(v float64) *Value {
	return &Value{typ: TypeFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{typ: TypeStr, strVal: v}
}

// Arr creates an array value.
func Arr(values ...*Value) *Value {
	return &Value{typ: TypeArr, arrVal: values}
}

// Obj creates an object value from entries.
func Obj(entries ...ObjEntry) *Value {
	return &Value{typ: TypeObj, objVal: entries}
}

// Field creates an ObjEntry for use in Obj construction.
func Field(key string, value *Value) ObjEntry {
	return ObjEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *Value) Type() VType {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("zon: nil value")
	}
	if v.typ != TypeBool {
		return false, fmt.Errorf("zon: expected bool, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("zon: nil value")
	}
	if v.typ != TypeInt {
		return 0, fmt.Errorf("zon: expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("zon: nil value")
	}
	if v.typ != TypeFloat {
		return 0, fmt.Errorf("zon: expected float, got %s", v.typ)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("zon: nil value")
	}
	if v.typ != TypeStr {
		return "", fmt.Errorf("zon: expected str, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsArr returns the array elements.
func (v *Value) AsArr() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("zon: nil value")
	}
	if v.typ != TypeArr {
		return nil, fmt.Errorf("zon: expected arr, got %s", v.typ)
	}
	return v.arrVal, nil
}

// AsObj returns the object entries.
func (v *Value) AsObj() ([]ObjEntry, error) {
	if v == nil {
		return nil, fmt.Errorf("zon: nil value")
	}
	if v.typ != TypeObj {
		return nil, fmt.Errorf("zon: expected obj, got %s", v.typ)
	}
	return v.objVal, nil
}

// Len returns the length of an array or object.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeArr:
		return len(v.arrVal)
	case TypeObj:
		return len(v.objVal)
	default:
		return 0
	}
}

// Get returns a field value by key from an object.
func (v *Value) Get(key string) *Value {
	if v == nil || v.typ != TypeObj {
		return nil
	}
	for _, e := range v.objVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.typ != TypeArr {
		return nil, fmt.Errorf("zon: not an arr")
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, fmt.Errorf("zon: index %d out of bounds (len=%d)", i, len(v.arrVal))
	}
	return v.arrVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a field value on an object, appending if the key is new.
func (v *Value) Set(key string, val *Value) {
	if v.typ != TypeObj {
		panic("zon: cannot set on non-obj")
	}
	for i := range v.objVal {
		if v.objVal[i].Key == key {
			v.objVal[i].Value = val
			return
		}
	}
	v.objVal = append(v.objVal, ObjEntry{Key: key, Value: val})
}

// Append adds a value to an array.
func (v *Value) Append(val *Value) {
	if v.typ != TypeArr {
		panic("zon: cannot append to non-arr")
	}
	v.arrVal = append(v.arrVal, val)
}

// ============================================================
// Numeric Coercion Helpers
// ============================================================

// Number returns a numeric value as float64 if int or float.
func (v *Value) Number() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.typ {
	case TypeInt:
		return float64(v.intVal), true
	case TypeFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// IsNumeric returns true if int or float.
func (v *Value) IsNumeric() bool {
	return v != nil && (v.typ == TypeInt || v.typ == TypeFloat)
}

// ============================================================
// Equality
// ============================================================

// Equal reports value equality. Objects compare by key set and per-key
// value, ignoring entry order. Int and Float compare mathematically, so
// Int(5) equals Float(5.0).
func Equal(a, b *Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}

	if a.IsNumeric() && b.IsNumeric() {
		if a.typ == TypeInt && b.typ == TypeInt {
			return a.intVal == b.intVal
		}
		af, _ := a.Number()
		bf, _ := b.Number()
		return af == bf
	}

	if a.typ != b.typ {
		return false
	}

	switch a.typ {
	case TypeBool:
		return a.boolVal == b.boolVal
	case TypeStr:
		return a.strVal == b.strVal
	case TypeArr:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !Equal(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case TypeObj:
		if len(a.objVal) != len(b.objVal) {
			return false
		}
		for _, e := range a.objVal {
			if !hasKey(b.objVal, e.Key) {
				return false
			}
			if !Equal(e.Value, b.Get(e.Key)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func hasKey(entries []ObjEntry, key string) bool {
	for _, e := range entries {
		if e.Key == key {
			return true
		}
	}
	return false
}
