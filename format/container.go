package format

import (
	"github.com/novifinancial/serde-typegen/util"
)

/*
ContainerFormat is the top-level shape of one named registry entry: a unit
struct, a newtype struct wrapping a single format, a tuple struct wrapping an
ordered list of formats, a struct with named fields, or an enum mapping a
dense u32 variant index to a named variant shape. VariantFormat mirrors the
struct shapes for a single enum variant.
*/

////////////////////////////////////////////////////////////////////////////////

type ContainerFormat interface {
	isContainer()
}

// UnitStruct is a container carrying no data.
type UnitStruct struct{}

// NewtypeStruct wraps a single format.
type NewtypeStruct struct {
	Value Format
}

// TupleStruct wraps an ordered list of formats.
type TupleStruct struct {
	Values []Format
}

// Struct is an ordered list of named fields.
type Struct struct {
	Fields []util.Named[Format]
}

// Enum maps a variant index to a named variant shape. Indices are required to
// form a dense 0..n sequence; this is verified by Validate, not by
// construction.
type Enum struct {
	Variants map[uint32]util.Named[VariantFormat]
}

func (UnitStruct) isContainer() {}
func (NewtypeStruct) isContainer() {}
func (TupleStruct) isContainer() {}
func (Struct) isContainer() {}
func (Enum) isContainer() {}

type VariantFormat interface {
	isVariant()
}

type VariantUnit struct{}

type VariantNewtype struct {
	Value Format
}

type VariantTuple struct {
	Values []Format
}

type VariantStruct struct {
	Fields []util.Named[Format]
}

func (VariantUnit) isVariant() {}
func (VariantNewtype) isVariant() {}
func (VariantTuple) isVariant() {}
func (VariantStruct) isVariant() {}
