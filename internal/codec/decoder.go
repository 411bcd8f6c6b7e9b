package codec

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// decoder carries the breadcrumb and depth budget of one decode call.
// It is never shared between calls.
type decoder struct {
	path     []string
	depth    int
	maxDepth int
}

func newDecoder(o options) *decoder {
	return &decoder{maxDepth: o.maxDepth}
}

func (d *decoder) push(seg string) { d.path = append(d.path, seg) }
func (d *decoder) pop()            { d.path = d.path[:len(d.path)-1] }

func (d *decoder) fail(expected string, found wire.Value) error {
	return d.failf(expected, describe(found))
}

func (d *decoder) failf(expected, found string) error {
	return &MalformedNodeError{Path: slices.Clone(d.path), Expected: expected, Found: found}
}

// enter charges one level of nesting against the depth budget.
// Every successful enter must be paired with leave.
func (d *decoder) enter() error {
	if d.depth >= d.maxDepth {
		return d.failf(fmt.Sprintf("nesting depth at most %d", d.maxDepth), "deeper nesting")
	}
	d.depth++
	return nil
}

func (d *decoder) leave() { d.depth-- }

// at decodes v with f under an extra breadcrumb segment.
func at[T any](d *decoder, seg string, v wire.Value, f func(*decoder, wire.Value) (T, error)) (T, error) {
	d.push(seg)
	out, err := f(d, v)
	d.pop()
	return out, err
}

// node splits a tagged tuple [Tag, attrs, args...].
func (d *decoder) node(v wire.Value, what string) (string, wire.Array, error) {
	arr, ok := v.(wire.Array)
	if !ok || len(arr) == 0 {
		return "", nil, d.fail(what+" node [tag, ...]", v)
	}
	tag, ok := arr[0].(wire.String)
	if !ok {
		return "", nil, d.fail(what+" tag string", arr[0])
	}
	return string(tag), arr, nil
}

// arity checks the total element count of a tagged tuple.
func (d *decoder) arity(tag string, arr wire.Array, n int) error {
	if len(arr) != n {
		return d.failf(fmt.Sprintf("%s with %d elements", tag, n), fmt.Sprintf("%d elements", len(arr)))
	}
	return nil
}

func (d *decoder) array(v wire.Value, what string) (wire.Array, error) {
	arr, ok := v.(wire.Array)
	if !ok {
		return nil, d.fail(what, v)
	}
	return arr, nil
}

// tuple expects an array of exactly n elements.
func (d *decoder) tuple(v wire.Value, what string, n int) (wire.Array, error) {
	arr, ok := v.(wire.Array)
	if !ok || len(arr) != n {
		return nil, d.fail(fmt.Sprintf("%s as %d-element array", what, n), v)
	}
	return arr, nil
}

// openObject expects an object holding at least the given fields. Other
// keys are ignored.
func (d *decoder) openObject(v wire.Value, what string, fields ...string) (wire.Object, error) {
	obj, ok := v.(wire.Object)
	if !ok {
		return nil, d.fail(what+" object", v)
	}
	for _, f := range fields {
		if _, ok := obj[f]; !ok {
			d.push(f)
			err := d.failf(fmt.Sprintf("required field %q", f), "missing")
			d.pop()
			return nil, err
		}
	}
	return obj, nil
}

// object expects an object with exactly the given fields.
func (d *decoder) object(v wire.Value, what string, fields ...string) (wire.Object, error) {
	return d.objectOptional(v, what, nil, fields...)
}

// objectOptional is object where the optional fields may also appear.
func (d *decoder) objectOptional(v wire.Value, what string, optional []string, fields ...string) (wire.Object, error) {
	obj, err := d.openObject(v, what, fields...)
	if err != nil {
		return nil, err
	}
	for _, k := range obj.SortedKeys() {
		if !slices.Contains(fields, k) && !slices.Contains(optional, k) {
			allowed := append(slices.Clone(fields), optional...)
			return nil, d.failf(fmt.Sprintf("%s with fields [%s]", what, strings.Join(allowed, ", ")), fmt.Sprintf("unexpected field %q", k))
		}
	}
	return obj, nil
}

func (d *decoder) str(v wire.Value, what string) (string, error) {
	s, ok := v.(wire.String)
	if !ok {
		return "", d.fail(what+" string", v)
	}
	return string(s), nil
}

func decodeName(d *decoder, v wire.Value) (ir.Name, error) {
	arr, ok := v.(wire.Array)
	if !ok || len(arr) == 0 {
		return ir.Name{}, d.fail("name as non-empty array of strings", v)
	}
	segments := make([]string, len(arr))
	for i, seg := range arr {
		s, ok := seg.(wire.String)
		if !ok {
			return ir.Name{}, d.fail(fmt.Sprintf("name segment %d string", i), seg)
		}
		segments[i] = string(s)
	}
	return ir.NameFromSegments(segments...), nil
}

func decodePath(d *decoder, v wire.Value) (ir.Path, error) {
	arr, ok := v.(wire.Array)
	if !ok || len(arr) == 0 {
		return ir.Path{}, d.fail("path as non-empty array of names", v)
	}
	names := make([]ir.Name, len(arr))
	for i, elem := range arr {
		n, err := at(d, fmt.Sprintf("[%d]", i), elem, decodeName)
		if err != nil {
			return ir.Path{}, err
		}
		names[i] = n
	}
	return ir.PathFromNames(names...), nil
}

func decodeFQName(d *decoder, v wire.Value) (ir.FQName, error) {
	arr, err := d.tuple(v, "fqname [package, module, name]", 3)
	if err != nil {
		return ir.FQName{}, err
	}
	pkg, err := at(d, "package", arr[0], decodePath)
	if err != nil {
		return ir.FQName{}, err
	}
	mod, err := at(d, "module", arr[1], decodePath)
	if err != nil {
		return ir.FQName{}, err
	}
	local, err := at(d, "local", arr[2], decodeName)
	if err != nil {
		return ir.FQName{}, err
	}
	return ir.NewFQName(pkg, mod, local), nil
}

func decodeNames(d *decoder, v wire.Value) ([]ir.Name, error) {
	return decodeList(d, v, "list of names", decodeName)
}

func decodeAccess(d *decoder, v wire.Value) (ir.Access, error) {
	s, ok := v.(wire.String)
	if !ok {
		return 0, d.fail(`access "Public" or "Private"`, v)
	}
	a, err := ir.ParseAccess(string(s))
	if err != nil {
		return 0, d.fail(`access "Public" or "Private"`, v)
	}
	return a, nil
}

// decodeAccessControlled reads {"access": ..., "value": ...}.
func decodeAccessControlled[T any](d *decoder, v wire.Value, inner func(*decoder, wire.Value) (T, error)) (ir.AccessControlled[T], error) {
	obj, err := d.object(v, "access-controlled", "access", "value")
	if err != nil {
		return ir.AccessControlled[T]{}, err
	}
	access, err := at(d, "access", obj["access"], decodeAccess)
	if err != nil {
		return ir.AccessControlled[T]{}, err
	}
	value, err := at(d, "value", obj["value"], inner)
	if err != nil {
		return ir.AccessControlled[T]{}, err
	}
	return ir.AccessControlled[T]{Access: access, Value: value}, nil
}

// decodeDocumented reads {"doc": "...", "value": ...}.
func decodeDocumented[T any](d *decoder, v wire.Value, inner func(*decoder, wire.Value) (T, error)) (ir.Documented[T], error) {
	obj, err := d.object(v, "documented", "doc", "value")
	if err != nil {
		return ir.Documented[T]{}, err
	}
	d.push("doc")
	doc, err := d.str(obj["doc"], "doc")
	d.pop()
	if err != nil {
		return ir.Documented[T]{}, err
	}
	value, err := at(d, "value", obj["value"], inner)
	if err != nil {
		return ir.Documented[T]{}, err
	}
	return ir.Documented[T]{Doc: doc, Value: value}, nil
}

// decodeOptionalDoc reads a string-or-null module doc.
func decodeOptionalDoc(d *decoder, v wire.Value) (*string, error) {
	switch doc := v.(type) {
	case wire.Null:
		return nil, nil
	case wire.String:
		s := string(doc)
		return &s, nil
	default:
		return nil, d.fail("doc string or null", v)
	}
}

// decodeList decodes every element of an array. Empty arrays yield nil.
func decodeList[T any](d *decoder, v wire.Value, what string, elem func(*decoder, wire.Value) (T, error)) ([]T, error) {
	arr, err := d.array(v, what)
	if err != nil {
		return nil, err
	}
	var out []T
	for i, e := range arr {
		x, err := at(d, fmt.Sprintf("[%d]", i), e, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// decodeEntries decodes [[key, value], ...] into an ordered collection.
// Once a key is read the breadcrumb names it instead of its index.
func decodeEntries[K ir.Key, V any](
	d *decoder,
	v wire.Value,
	key func(*decoder, wire.Value) (K, error),
	value func(*decoder, wire.Value) (V, error),
) (ir.Entries[K, V], error) {
	arr, err := d.array(v, "list of [key, value] pairs")
	if err != nil {
		return ir.Entries[K, V]{}, err
	}
	items := make([]ir.Entry[K, V], 0, len(arr))
	for i, e := range arr {
		d.push(fmt.Sprintf("[%d]", i))
		item, err := decodeEntry(d, e, key, value)
		d.pop()
		if err != nil {
			return ir.Entries[K, V]{}, err
		}
		items = append(items, item)
	}
	entries, err := ir.NewEntries(items...)
	if err != nil {
		var dup *ir.DuplicateKeyError
		if errors.As(err, &dup) {
			return ir.Entries[K, V]{}, d.failf("unique keys", fmt.Sprintf("duplicate key %q", dup.Key))
		}
		return ir.Entries[K, V]{}, err
	}
	return entries, nil
}

func decodeEntry[K ir.Key, V any](
	d *decoder,
	v wire.Value,
	key func(*decoder, wire.Value) (K, error),
	value func(*decoder, wire.Value) (V, error),
) (ir.Entry[K, V], error) {
	pair, err := d.tuple(v, "[key, value] pair", 2)
	if err != nil {
		return ir.Entry[K, V]{}, err
	}
	k, err := key(d, pair[0])
	if err != nil {
		return ir.Entry[K, V]{}, err
	}
	d.path[len(d.path)-1] = "[" + k.String() + "]"
	val, err := value(d, pair[1])
	if err != nil {
		return ir.Entry[K, V]{}, err
	}
	return ir.Entry[K, V]{Key: k, Value: val}, nil
}

// describe summarizes a node for the Found half of an error.
func describe(v wire.Value) string {
	switch val := v.(type) {
	case nil:
		return "missing"
	case wire.Null:
		return "null"
	case wire.String:
		s := string(val)
		if len(s) > 40 {
			s = s[:40] + "..."
		}
		return fmt.Sprintf("string %q", s)
	case wire.Number:
		return "number " + string(val)
	case wire.Bool:
		return fmt.Sprintf("bool %t", bool(val))
	case wire.Array:
		if len(val) > 0 {
			if tag, ok := val[0].(wire.String); ok {
				return fmt.Sprintf("array [%q, ...] of %d elements", string(tag), len(val))
			}
		}
		return fmt.Sprintf("array of %d elements", len(val))
	case wire.Object:
		return fmt.Sprintf("object with fields [%s]", strings.Join(val.SortedKeys(), ", "))
	default:
		return wire.Kind(v)
	}
}
