package sdl

import (
	"fmt"

	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/util"
)

/*
This file contains the ParseSchema function, which accepts a []byte-valued
schema definition text and returns a format.Registry.

It does this by calling the participle parser on the document to create a
participle AST, and then transforming that AST into the format model.
Declaration order becomes registry order, and enum variant indices are
assigned densely in declaration order. The participle AST does not leave the
sdl package.
*/

////////////////////////////////////////////////////////////////////////////////

var scalarTypes = map[string]format.Format{ // nolint:gochecknoglobals
	"unit":  format.Unit{},
	"bool":  format.Bool{},
	"i8":    format.I8{},
	"i16":   format.I16{},
	"i32":   format.I32{},
	"i64":   format.I64{},
	"i128":  format.I128{},
	"u8":    format.U8{},
	"u16":   format.U16{},
	"u32":   format.U32{},
	"u64":   format.U64{},
	"u128":  format.U128{},
	"f32":   format.F32{},
	"f64":   format.F64{},
	"char":  format.Char{},
	"str":   format.Str{},
	"bytes": format.Bytes{},
}

// ParseSchema parses a schema definition text and returns the registry it
// declares, in declaration order.
func ParseSchema(data []byte) (*format.Registry, error) {
	ast, err := DocumentParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return transformAST(ast)
}

func transformAST(doc *Document) (*format.Registry, error) {
	registry := format.NewRegistry()
	for _, def := range doc.Definitions {
		name, container, err := transformDefinition(def)
		if err != nil {
			return nil, err
		}
		if err := registry.Add(name, container); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func transformDefinition(def *Definition) (string, format.ContainerFormat, error) {
	switch {
	case def.Unit != nil:
		return def.Unit.Name, format.UnitStruct{}, nil
	case def.Newtype != nil:
		value, err := transformType(def.Newtype.Value)
		if err != nil {
			return "", nil, fmt.Errorf("in %s: %w", def.Newtype.Name, err)
		}
		return def.Newtype.Name, format.NewtypeStruct{Value: value}, nil
	case def.Tuple != nil:
		values, err := transformTypes(def.Tuple.Values)
		if err != nil {
			return "", nil, fmt.Errorf("in %s: %w", def.Tuple.Name, err)
		}
		return def.Tuple.Name, format.TupleStruct{Values: values}, nil
	case def.Struct != nil:
		fields, err := transformFields(def.Struct.Fields)
		if err != nil {
			return "", nil, fmt.Errorf("in %s: %w", def.Struct.Name, err)
		}
		return def.Struct.Name, format.Struct{Fields: fields}, nil
	case def.Enum != nil:
		variants := make(map[uint32]util.Named[format.VariantFormat], len(def.Enum.Variants))
		for i, v := range def.Enum.Variants {
			variant, err := transformVariant(v)
			if err != nil {
				return "", nil, fmt.Errorf("in %s.%s: %w", def.Enum.Name, v.Name, err)
			}
			variants[uint32(i)] = util.NewNamed(v.Name, variant)
		}
		return def.Enum.Name, format.Enum{Variants: variants}, nil
	}
	return "", nil, fmt.Errorf("empty definition")
}

func transformVariant(v *VariantDef) (format.VariantFormat, error) {
	switch {
	case len(v.Fields) > 0:
		fields, err := transformFields(v.Fields)
		if err != nil {
			return nil, err
		}
		return format.VariantStruct{Fields: fields}, nil
	case len(v.Values) == 1:
		value, err := transformType(v.Values[0])
		if err != nil {
			return nil, err
		}
		return format.VariantNewtype{Value: value}, nil
	case len(v.Values) > 1:
		values, err := transformTypes(v.Values)
		if err != nil {
			return nil, err
		}
		return format.VariantTuple{Values: values}, nil
	}
	return format.VariantUnit{}, nil
}

func transformFields(defs []*FieldDef) ([]util.Named[format.Format], error) {
	fields := make([]util.Named[format.Format], 0, len(defs))
	for _, def := range defs {
		value, err := transformType(def.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", def.Name, err)
		}
		fields = append(fields, util.NewNamed(def.Name, value))
	}
	return fields, nil
}

func transformTypes(exprs []*TypeExpr) ([]format.Format, error) {
	values := make([]format.Format, 0, len(exprs))
	for _, expr := range exprs {
		value, err := transformType(expr)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func transformType(expr *TypeExpr) (format.Format, error) {
	switch {
	case expr == nil:
		return nil, fmt.Errorf("missing type expression")
	case expr.Option != nil:
		inner, err := transformType(expr.Option)
		if err != nil {
			return nil, err
		}
		return format.Option{Inner: inner}, nil
	case expr.Seq != nil:
		content, err := transformType(expr.Seq)
		if err != nil {
			return nil, err
		}
		return format.Seq{Content: content}, nil
	case expr.Map != nil:
		key, err := transformType(expr.Map.Key)
		if err != nil {
			return nil, err
		}
		value, err := transformType(expr.Map.Value)
		if err != nil {
			return nil, err
		}
		return format.Map{Key: key, Value: value}, nil
	case expr.Array != nil:
		content, err := transformType(expr.Array.Content)
		if err != nil {
			return nil, err
		}
		return format.FixedArray{Content: content, Size: expr.Array.Size}, nil
	case len(expr.Tuple) > 0:
		contents, err := transformTypes(expr.Tuple)
		if err != nil {
			return nil, err
		}
		return format.Tuple{Contents: contents}, nil
	case expr.Ident != "":
		if scalar, ok := scalarTypes[expr.Ident]; ok {
			return scalar, nil
		}
		return format.TypeName(expr.Ident), nil
	}
	return nil, fmt.Errorf("empty type expression")
}
