package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"unicode/utf16"
)

// Value is a sealed interface over document nodes.
// Only Null, String, Number, Bool, Array, and Object implement it.
type Value interface {
	wireValue() // Sealed
}

// Null represents a JSON null.
type Null struct{}

// String represents a JSON string.
type String string

// Number holds the literal text of a JSON number.
type Number string

// Bool represents a JSON boolean.
type Bool bool

// Array represents a JSON array.
type Array []Value

// Object represents a JSON object. Use SortedKeys() for deterministic iteration.
type Object map[string]Value

func (Null) wireValue()   {}
func (String) wireValue() {}
func (Number) wireValue() {}
func (Bool) wireValue()   {}
func (Array) wireValue()  {}
func (Object) wireValue() {}

// Int builds a Number from an integer.
func Int(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// Float builds a Number from a float using the shortest exact form.
func Float(f float64) Number {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Int64 parses the number as an integer. Fractions and exponents fail.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 parses the number as a float.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Arr is a shorthand for Array construction.
func Arr(vals ...Value) Array {
	if vals == nil {
		return Array{}
	}
	return Array(vals)
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// Go's sort.Strings compares UTF-8 bytes, which orders differently.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}

// Kind names the node kind for error messages.
func Kind(v Value) string {
	switch v.(type) {
	case nil:
		return "missing"
	case Null:
		return "null"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// SyntaxError reports bytes that are not a single well-formed JSON document.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse decodes exactly one JSON document into a Value.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &SyntaxError{Offset: dec.InputOffset(), Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Offset: dec.InputOffset(), Err: errors.New("trailing data after document")}
	}

	return fromAny(raw), nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or with literal documents.
func MustParse(data string) Value {
	v, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

// fromAny converts the output of a UseNumber decode into a Value.
func fromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(val)
	case string:
		return String(val)
	case json.Number:
		return Number(val)
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			arr[i] = fromAny(elem)
		}
		return arr
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			obj[k] = fromAny(elem)
		}
		return obj
	default:
		// Unreachable: encoding/json produces only the cases above.
		panic(fmt.Sprintf("unexpected decoded type %T", v))
	}
}
