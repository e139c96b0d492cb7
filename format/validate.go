package format

import (
	"github.com/novifinancial/serde-typegen/util"
)

/*
Registry validation. The compiler pass runs this before any analysis: a
malformed registry aborts the pass rather than producing partial output.
*/

////////////////////////////////////////////////////////////////////////////////

// Validate checks that every definition in the registry is fully resolved,
// that every enum's variant indices form a dense 0..n sequence, and that
// every TypeName reference resolves to a registry entry.
func Validate(r *Registry) error {
	for _, name := range r.Names() {
		container, _ := r.Get(name)
		if err := validateContainer(r, name, container); err != nil {
			return err
		}
	}
	return nil
}

func validateContainer(r *Registry, name string, container ContainerFormat) error {
	switch c := container.(type) {
	case nil:
		return UnresolvedFormatError{Container: name}
	case UnitStruct:
		return nil
	case NewtypeStruct:
		return validateFormat(r, name, c.Value)
	case TupleStruct:
		return validateFormats(r, name, c.Values)
	case Struct:
		return validateFields(r, name, c.Fields)
	case Enum:
		indices := util.Okeys(c.Variants)
		for i, index := range indices {
			if index != uint32(i) {
				return MalformedEnumError{Container: name}
			}
			if err := validateVariant(r, name, c.Variants[index].Value); err != nil {
				return err
			}
		}
		return nil
	}
	return UnresolvedFormatError{Container: name}
}

func validateVariant(r *Registry, name string, variant VariantFormat) error {
	switch v := variant.(type) {
	case nil:
		return UnresolvedFormatError{Container: name}
	case VariantUnit:
		return nil
	case VariantNewtype:
		return validateFormat(r, name, v.Value)
	case VariantTuple:
		return validateFormats(r, name, v.Values)
	case VariantStruct:
		return validateFields(r, name, v.Fields)
	}
	return UnresolvedFormatError{Container: name}
}

func validateFields(r *Registry, name string, fields []util.Named[Format]) error {
	for _, field := range fields {
		if err := validateFormat(r, name, field.Value); err != nil {
			return err
		}
	}
	return nil
}

func validateFormats(r *Registry, name string, formats []Format) error {
	for _, f := range formats {
		if err := validateFormat(r, name, f); err != nil {
			return err
		}
	}
	return nil
}

func validateFormat(r *Registry, name string, f Format) error {
	return Visit(f, func(node Format) error {
		switch v := node.(type) {
		case nil:
			return UnresolvedFormatError{Container: name}
		case TypeName:
			if v == "" {
				return UnresolvedFormatError{Container: name}
			}
			if _, ok := r.Get(string(v)); !ok {
				return MissingDefinitionError{Container: name, Target: string(v)}
			}
		}
		return nil
	})
}
