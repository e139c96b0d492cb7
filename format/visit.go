package format

import (
	"strconv"
	"strings"

	"github.com/novifinancial/serde-typegen/util"
)

/*
Traversal over format trees. Visit walks a single Format in pre-order; Refs
enumerates every TypeName occurrence reachable from a container, assigning
each occurrence a stable pre-order site ordinal and a human-readable path.
Backends consume layout decisions keyed by these ordinals, walking the same
tree in the same order.
*/

////////////////////////////////////////////////////////////////////////////////

// Visit calls fn for every node of the format tree rooted at f, parents
// before children, stopping at the first error.
func Visit(f Format, fn func(Format) error) error {
	if err := fn(f); err != nil {
		return err
	}
	switch v := f.(type) {
	case Option:
		return Visit(v.Inner, fn)
	case Seq:
		return Visit(v.Content, fn)
	case Map:
		if err := Visit(v.Key, fn); err != nil {
			return err
		}
		return Visit(v.Value, fn)
	case Tuple:
		for _, c := range v.Contents {
			if err := Visit(c, fn); err != nil {
				return err
			}
		}
	case FixedArray:
		return Visit(v.Content, fn)
	}
	return nil
}

// A Ref is one TypeName occurrence inside a container. Site is the ordinal of
// the occurrence in a pre-order walk of the container; Path is a dotted trail
// of field names, variant names, tuple positions and composite wrappers
// leading to the occurrence.
type Ref struct {
	Site   int
	Path   string
	Target string
}

// Refs returns every TypeName occurrence in c, in pre-order.
func Refs(c ContainerFormat) []Ref {
	w := refWalker{}
	switch v := c.(type) {
	case UnitStruct:
	case NewtypeStruct:
		w.format(nil, v.Value)
	case TupleStruct:
		w.tuple(nil, v.Values)
	case Struct:
		w.fields(nil, v.Fields)
	case Enum:
		for _, index := range util.Okeys(v.Variants) {
			variant := v.Variants[index]
			w.variant([]string{variant.Name}, variant.Value)
		}
	}
	return w.refs
}

type refWalker struct {
	refs []Ref
}

func (w *refWalker) variant(path []string, v VariantFormat) {
	switch f := v.(type) {
	case VariantUnit:
	case VariantNewtype:
		w.format(path, f.Value)
	case VariantTuple:
		w.tuple(path, f.Values)
	case VariantStruct:
		w.fields(path, f.Fields)
	}
}

func (w *refWalker) fields(path []string, fields []util.Named[Format]) {
	for _, field := range fields {
		w.format(append(path, field.Name), field.Value)
	}
}

func (w *refWalker) tuple(path []string, values []Format) {
	for i, value := range values {
		w.format(append(path, strconv.Itoa(i)), value)
	}
}

func (w *refWalker) format(path []string, f Format) {
	switch v := f.(type) {
	case TypeName:
		w.refs = append(w.refs, Ref{
			Site:   len(w.refs),
			Path:   strings.Join(path, "."),
			Target: string(v),
		})
	case Option:
		w.format(append(path, "option"), v.Inner)
	case Seq:
		w.format(append(path, "seq"), v.Content)
	case Map:
		w.format(append(path, "key"), v.Key)
		w.format(append(path, "value"), v.Value)
	case Tuple:
		for i, c := range v.Contents {
			w.format(append(path, strconv.Itoa(i)), c)
		}
	case FixedArray:
		w.format(append(path, "array"), v.Content)
	}
}
