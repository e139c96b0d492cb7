package format

import (
	"fmt"
	"strings"
)

/*
Format is the algebraic representation of one type expression: a scalar, a
composite wrapping other formats, or a reference to another registry entry by
name. The sum is closed - every Format value is one of the types declared in
this file - and trees are structurally finite: the only way a type can reach
itself is through a TypeName reference, which is resolved against the registry
rather than embedded.
*/

////////////////////////////////////////////////////////////////////////////////

type Format interface {
	isFormat()
	fmt.Stringer
}

// Scalars.
type (
	Unit  struct{}
	Bool  struct{}
	I8    struct{}
	I16   struct{}
	I32   struct{}
	I64   struct{}
	I128  struct{}
	U8    struct{}
	U16   struct{}
	U32   struct{}
	U64   struct{}
	U128  struct{}
	F32   struct{}
	F64   struct{}
	Char  struct{}
	Str   struct{}
	Bytes struct{}
)

// Option is an optional value of the inner format.
type Option struct {
	Inner Format
}

// Seq is a variable-length homogeneous sequence.
type Seq struct {
	Content Format
}

// Map is an association with unique keys.
type Map struct {
	Key   Format
	Value Format
}

// Tuple is a fixed heterogeneous sequence.
type Tuple struct {
	Contents []Format
}

// FixedArray is a fixed-length homogeneous sequence.
type FixedArray struct {
	Content Format
	Size    int
}

// TypeName is a reference to another registry entry, resolved by name. This is
// the only construct through which cycles can be expressed.
type TypeName string

func (Unit) isFormat() {}
func (Bool) isFormat() {}
func (I8) isFormat() {}
func (I16) isFormat() {}
func (I32) isFormat() {}
func (I64) isFormat() {}
func (I128) isFormat() {}
func (U8) isFormat() {}
func (U16) isFormat() {}
func (U32) isFormat() {}
func (U64) isFormat() {}
func (U128) isFormat() {}
func (F32) isFormat() {}
func (F64) isFormat() {}
func (Char) isFormat() {}
func (Str) isFormat() {}
func (Bytes) isFormat() {}
func (Option) isFormat() {}
func (Seq) isFormat() {}
func (Map) isFormat() {}
func (Tuple) isFormat() {}
func (FixedArray) isFormat() {}
func (TypeName) isFormat() {}

func (Unit) String() string { return "unit" }
func (Bool) String() string { return "bool" }
func (I8) String() string { return "i8" }
func (I16) String() string { return "i16" }
func (I32) String() string { return "i32" }
func (I64) String() string { return "i64" }
func (I128) String() string { return "i128" }
func (U8) String() string { return "u8" }
func (U16) String() string { return "u16" }
func (U32) String() string { return "u32" }
func (U64) String() string { return "u64" }
func (U128) String() string { return "u128" }
func (F32) String() string { return "f32" }
func (F64) String() string { return "f64" }
func (Char) String() string { return "char" }
func (Str) String() string { return "str" }
func (Bytes) String() string { return "bytes" }

func (f Option) String() string {
	return fmt.Sprintf("option<%s>", f.Inner)
}

func (f Seq) String() string {
	return fmt.Sprintf("seq<%s>", f.Content)
}

func (f Map) String() string {
	return fmt.Sprintf("map<%s, %s>", f.Key, f.Value)
}

func (f Tuple) String() string {
	parts := make([]string, len(f.Contents))
	for i, c := range f.Contents {
		parts[i] = c.String()
	}
	return fmt.Sprintf("tuple<%s>", strings.Join(parts, ", "))
}

func (f FixedArray) String() string {
	return fmt.Sprintf("array<%s, %d>", f.Content, f.Size)
}

func (f TypeName) String() string {
	return string(f)
}
