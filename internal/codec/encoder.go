package codec

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/wire"
)

// node builds a tagged tuple [tag, attrs, args...].
func node(tag string, attrs wire.Value, args ...wire.Value) wire.Array {
	return append(wire.Array{wire.String(tag), attrs}, args...)
}

func encodeName(n ir.Name) wire.Value {
	segments := n.Segments()
	arr := make(wire.Array, len(segments))
	for i, s := range segments {
		arr[i] = wire.String(s)
	}
	return arr
}

func encodePath(p ir.Path) wire.Value {
	return encodeList(p.Names(), encodeName)
}

func encodeFQName(fq ir.FQName) wire.Value {
	return wire.Array{encodePath(fq.Package), encodePath(fq.Module), encodeName(fq.Local)}
}

func encodeNames(names []ir.Name) wire.Value {
	return encodeList(names, encodeName)
}

func encodeAccessControlled[T any](ac ir.AccessControlled[T], inner func(T) wire.Value) wire.Value {
	return wire.Object{
		"access": wire.String(ac.Access.String()),
		"value":  inner(ac.Value),
	}
}

func encodeDocumented[T any](doc ir.Documented[T], inner func(T) wire.Value) wire.Value {
	return wire.Object{
		"doc":   wire.String(doc.Doc),
		"value": inner(doc.Value),
	}
}

func encodeOptionalDoc(doc *string) wire.Value {
	if doc == nil {
		return wire.Null{}
	}
	return wire.String(*doc)
}

// encodeList never returns a nil array, so empty lists encode as [].
func encodeList[T any](xs []T, f func(T) wire.Value) wire.Array {
	out := make(wire.Array, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func encodeEntries[K ir.Key, V any](e ir.Entries[K, V], key func(K) wire.Value, value func(V) wire.Value) wire.Array {
	out := make(wire.Array, 0, e.Len())
	for k, v := range e.All() {
		out = append(out, wire.Array{key(k), value(v)})
	}
	return out
}
