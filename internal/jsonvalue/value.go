// Package jsonvalue is a tagged-variant JSON value used for request bodies.
// It converts Go dynamic values (maps, slices, primitives) into an explicit
// tree and (de)serializes it recursively.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"ppauth/internal/errors"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a JSON value. The zero Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	str     string
	array   []Value
	object  map[string]Value
}

// NewNull returns JSON null.
func NewNull() Value { return Value{} }

// NewBool returns a JSON boolean.
func NewBool(b bool) Value { return Value{kind: Bool, boolean: b} }

// NewString returns a JSON string.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewInt returns a JSON integer.
func NewInt(i int64) Value {
	return Value{kind: Number, number: json.Number(strconv.FormatInt(i, 10))}
}

// NewFloat returns a JSON number. NaN and infinities have no JSON form.
func NewFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v is not a valid JSON number", errors.ErrUnsupportedValue, f)
	}
	return Value{kind: Number, number: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}, nil
}

// NewArray returns a JSON array holding items.
func NewArray(items ...Value) Value {
	return Value{kind: Array, array: append([]Value{}, items...)}
}

// NewObject returns a JSON object holding a copy of fields.
func NewObject(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: Object, object: obj}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == Bool }

// Str returns the string held by v.
func (v Value) Str() (string, bool) { return v.str, v.kind == String }

// Int returns the number held by v as an int64.
func (v Value) Int() (int64, bool) {
	if v.kind != Number {
		return 0, false
	}
	i, err := v.number.Int64()
	return i, err == nil
}

// Float returns the number held by v as a float64.
func (v Value) Float() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	f, err := v.number.Float64()
	return f, err == nil
}

// Items returns the elements of an array.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.array
}

// Field returns an object member.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	field, ok := v.object[name]
	return field, ok
}

// Keys returns the sorted member names of an object.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, 0, len(v.object))
	for k := range v.object {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromAny converts a Go dynamic value into a Value. Supported inputs are nil,
// bool, integer and float kinds, string, json.Number, Value, and slices,
// arrays and string-keyed maps of those.
func FromAny(in any) (Value, error) {
	switch x := in.(type) {
	case nil:
		return NewNull(), nil
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return NewNull(), nil
		}
		return *x, nil
	case json.Number:
		if _, err := x.Float64(); err != nil {
			return Value{}, fmt.Errorf("%w: invalid number %q", errors.ErrUnsupportedValue, x)
		}
		return Value{kind: Number, number: x}, nil
	}

	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Bool:
		return NewBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{kind: Number, number: json.Number(strconv.FormatUint(rv.Uint(), 10))}, nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(rv.Float())
	case reflect.String:
		return NewString(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NewNull(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NewNull(), nil
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, item)
		}
		return Value{kind: Array, array: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: map key type %s", errors.ErrUnsupportedValue, rv.Type().Key())
		}
		if rv.IsNil() {
			return NewNull(), nil
		}
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			field, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			fields[key] = field
		}
		return Value{kind: Object, object: fields}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", errors.ErrUnsupportedValue, in)
	}
}

// Parse decodes JSON text into a Value.
func Parse(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, errors.NewParseError("json value", "", err)
	}
	return v, nil
}

// MarshalJSON encodes v. Object members are written in sorted key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case Number:
		buf.WriteString(v.number.String())
	case String:
		encoded, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.array {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			if err := v.object[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: kind %s", errors.ErrUnsupportedValue, v.kind)
	}
	return nil
}

// UnmarshalJSON decodes JSON text into v, preserving number literals.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	decoded, err := fromDecoded(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// fromDecoded walks the output of a UseNumber decoder.
func fromDecoded(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(x), nil
	case json.Number:
		return Value{kind: Number, number: x}, nil
	case string:
		return NewString(x), nil
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			decoded, err := fromDecoded(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, decoded)
		}
		return Value{kind: Array, array: items}, nil
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, item := range x {
			decoded, err := fromDecoded(item)
			if err != nil {
				return Value{}, err
			}
			fields[k] = decoded
		}
		return Value{kind: Object, object: fields}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", errors.ErrUnsupportedValue, raw)
	}
}
