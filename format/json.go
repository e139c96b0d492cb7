package format

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/novifinancial/serde-typegen/util"
)

/*
JSON interchange for registries. A registry document is a name-sorted object
mapping definition names to container shapes. Containers and variants are
tagged UNIT / NEWTYPE / TUPLE / STRUCT / ENUM; scalar formats are bare
strings ("U64"), composites are single-key objects ({"SEQ": ...}), struct
fields and enum variants are single-key {name: shape} objects, and enum
variant indices are decimal object keys.
*/

////////////////////////////////////////////////////////////////////////////////

const (
	tagUnit       = "UNIT"
	tagNewtype    = "NEWTYPE"
	tagTuple      = "TUPLE"
	tagStruct     = "STRUCT"
	tagEnum       = "ENUM"
	tagOption     = "OPTION"
	tagSeq        = "SEQ"
	tagMap        = "MAP"
	tagMapKey     = "KEY"
	tagMapValue   = "VALUE"
	tagFixedArray = "FIXEDARRAY"
	tagContent    = "CONTENT"
	tagSize       = "SIZE"
	tagTypeName   = "TYPENAME"
)

var scalarTags = map[string]Format{ // nolint:gochecknoglobals
	"UNIT":  Unit{},
	"BOOL":  Bool{},
	"I8":    I8{},
	"I16":   I16{},
	"I32":   I32{},
	"I64":   I64{},
	"I128":  I128{},
	"U8":    U8{},
	"U16":   U16{},
	"U32":   U32{},
	"U64":   U64{},
	"U128":  U128{},
	"F32":   F32{},
	"F64":   F64{},
	"CHAR":  Char{},
	"STR":   Str{},
	"BYTES": Bytes{},
}

// MarshalJSON encodes the registry as a name-sorted document.
func (r *Registry) MarshalJSON() ([]byte, error) {
	names := r.Names()
	slices.Sort(names)
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		container, _ := r.Get(name)
		encoded, err := encodeContainer(container)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", name, err)
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("failed to encode name %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseRegistry decodes a registry document. Entries are returned in
// ascending name order regardless of document order.
func ParseRegistry(data []byte) (*Registry, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registry document: %w", err)
	}
	registry := NewRegistry()
	for _, name := range util.Okeys(raw) {
		container, err := decodeContainer(raw[name])
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		if err := registry.Add(name, container); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func encodeContainer(c ContainerFormat) (json.RawMessage, error) {
	switch v := c.(type) {
	case UnitStruct:
		return json.Marshal(tagUnit)
	case NewtypeStruct:
		value, err := encodeFormat(v.Value)
		if err != nil {
			return nil, err
		}
		return singleKey(tagNewtype, value), nil
	case TupleStruct:
		values, err := encodeFormats(v.Values)
		if err != nil {
			return nil, err
		}
		return singleKey(tagTuple, values), nil
	case Struct:
		fields, err := encodeFields(v.Fields)
		if err != nil {
			return nil, err
		}
		return singleKey(tagStruct, fields), nil
	case Enum:
		variants, err := encodeVariants(v.Variants)
		if err != nil {
			return nil, err
		}
		return singleKey(tagEnum, variants), nil
	}
	return nil, fmt.Errorf("unknown container shape %T", c)
}

func decodeContainer(data json.RawMessage) (ContainerFormat, error) {
	if isString(data) {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return nil, err
		}
		if tag == tagUnit {
			return UnitStruct{}, nil
		}
		return nil, fmt.Errorf("unknown container tag %q", tag)
	}
	tag, value, err := splitSingleKey(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNewtype:
		inner, err := decodeFormat(value)
		if err != nil {
			return nil, err
		}
		return NewtypeStruct{Value: inner}, nil
	case tagTuple:
		values, err := decodeFormats(value)
		if err != nil {
			return nil, err
		}
		return TupleStruct{Values: values}, nil
	case tagStruct:
		fields, err := decodeFields(value)
		if err != nil {
			return nil, err
		}
		return Struct{Fields: fields}, nil
	case tagEnum:
		variants, err := decodeVariants(value)
		if err != nil {
			return nil, err
		}
		return Enum{Variants: variants}, nil
	}
	return nil, fmt.Errorf("unknown container tag %q", tag)
}

func encodeVariant(v VariantFormat) (json.RawMessage, error) {
	switch f := v.(type) {
	case VariantUnit:
		return json.Marshal(tagUnit)
	case VariantNewtype:
		value, err := encodeFormat(f.Value)
		if err != nil {
			return nil, err
		}
		return singleKey(tagNewtype, value), nil
	case VariantTuple:
		values, err := encodeFormats(f.Values)
		if err != nil {
			return nil, err
		}
		return singleKey(tagTuple, values), nil
	case VariantStruct:
		fields, err := encodeFields(f.Fields)
		if err != nil {
			return nil, err
		}
		return singleKey(tagStruct, fields), nil
	}
	return nil, fmt.Errorf("unknown variant shape %T", v)
}

func decodeVariant(data json.RawMessage) (VariantFormat, error) {
	if isString(data) {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return nil, err
		}
		if tag == tagUnit {
			return VariantUnit{}, nil
		}
		return nil, fmt.Errorf("unknown variant tag %q", tag)
	}
	tag, value, err := splitSingleKey(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNewtype:
		inner, err := decodeFormat(value)
		if err != nil {
			return nil, err
		}
		return VariantNewtype{Value: inner}, nil
	case tagTuple:
		values, err := decodeFormats(value)
		if err != nil {
			return nil, err
		}
		return VariantTuple{Values: values}, nil
	case tagStruct:
		fields, err := decodeFields(value)
		if err != nil {
			return nil, err
		}
		return VariantStruct{Fields: fields}, nil
	}
	return nil, fmt.Errorf("unknown variant tag %q", tag)
}

func encodeVariants(variants map[uint32]util.Named[VariantFormat]) (json.RawMessage, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, index := range util.Okeys(variants) {
		if i > 0 {
			buf.WriteByte(',')
		}
		variant := variants[index]
		shape, err := encodeVariant(variant.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode variant %s: %w", variant.Name, err)
		}
		pair, err := json.Marshal(util.NewNamed(variant.Name, shape))
		if err != nil {
			return nil, fmt.Errorf("failed to encode variant %s: %w", variant.Name, err)
		}
		fmt.Fprintf(&buf, "%q:", strconv.FormatUint(uint64(index), 10))
		buf.Write(pair)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeVariants(data json.RawMessage) (map[uint32]util.Named[VariantFormat], error) {
	var raw map[string]util.Named[json.RawMessage]
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enum variants: %w", err)
	}
	variants := make(map[uint32]util.Named[VariantFormat], len(raw))
	for key, pair := range raw {
		index, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid variant index %q: %w", key, err)
		}
		shape, err := decodeVariant(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode variant %s: %w", pair.Name, err)
		}
		variants[uint32(index)] = util.NewNamed(pair.Name, shape)
	}
	return variants, nil
}

func encodeFields(fields []util.Named[Format]) (json.RawMessage, error) {
	pairs := make([]util.Named[json.RawMessage], 0, len(fields))
	for _, field := range fields {
		value, err := encodeFormat(field.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", field.Name, err)
		}
		pairs = append(pairs, util.NewNamed(field.Name, value))
	}
	return json.Marshal(pairs)
}

func decodeFields(data json.RawMessage) ([]util.Named[Format], error) {
	var pairs []util.Named[json.RawMessage]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}
	fields := make([]util.Named[Format], 0, len(pairs))
	for _, pair := range pairs {
		value, err := decodeFormat(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s: %w", pair.Name, err)
		}
		fields = append(fields, util.NewNamed(pair.Name, value))
	}
	return fields, nil
}

func encodeFormats(formats []Format) (json.RawMessage, error) {
	encoded := make([]json.RawMessage, 0, len(formats))
	for _, f := range formats {
		e, err := encodeFormat(f)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, e)
	}
	return json.Marshal(encoded)
}

func decodeFormats(data json.RawMessage) ([]Format, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal format list: %w", err)
	}
	formats := make([]Format, 0, len(raw))
	for _, r := range raw {
		f, err := decodeFormat(r)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func encodeFormat(f Format) (json.RawMessage, error) {
	switch v := f.(type) {
	case Option:
		inner, err := encodeFormat(v.Inner)
		if err != nil {
			return nil, err
		}
		return singleKey(tagOption, inner), nil
	case Seq:
		content, err := encodeFormat(v.Content)
		if err != nil {
			return nil, err
		}
		return singleKey(tagSeq, content), nil
	case Map:
		key, err := encodeFormat(v.Key)
		if err != nil {
			return nil, err
		}
		value, err := encodeFormat(v.Value)
		if err != nil {
			return nil, err
		}
		body := bytes.Buffer{}
		fmt.Fprintf(&body, "{%q:%s,%q:%s}", tagMapKey, key, tagMapValue, value)
		return singleKey(tagMap, body.Bytes()), nil
	case Tuple:
		contents, err := encodeFormats(v.Contents)
		if err != nil {
			return nil, err
		}
		return singleKey(tagTuple, contents), nil
	case FixedArray:
		content, err := encodeFormat(v.Content)
		if err != nil {
			return nil, err
		}
		body := bytes.Buffer{}
		fmt.Fprintf(&body, "{%q:%s,%q:%d}", tagContent, content, tagSize, v.Size)
		return singleKey(tagFixedArray, body.Bytes()), nil
	case TypeName:
		name, err := json.Marshal(string(v))
		if err != nil {
			return nil, err
		}
		return singleKey(tagTypeName, name), nil
	case nil:
		return nil, fmt.Errorf("cannot encode nil format")
	}
	for tag, scalar := range scalarTags {
		if scalar == f {
			return json.Marshal(tag)
		}
	}
	return nil, fmt.Errorf("unknown format %T", f)
}

func decodeFormat(data json.RawMessage) (Format, error) {
	if isString(data) {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return nil, err
		}
		if scalar, ok := scalarTags[tag]; ok {
			return scalar, nil
		}
		return nil, fmt.Errorf("unknown scalar tag %q", tag)
	}
	tag, value, err := splitSingleKey(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagOption:
		inner, err := decodeFormat(value)
		if err != nil {
			return nil, err
		}
		return Option{Inner: inner}, nil
	case tagSeq:
		content, err := decodeFormat(value)
		if err != nil {
			return nil, err
		}
		return Seq{Content: content}, nil
	case tagMap:
		var body map[string]json.RawMessage
		if err := json.Unmarshal(value, &body); err != nil {
			return nil, fmt.Errorf("failed to unmarshal map format: %w", err)
		}
		key, err := decodeFormat(body[tagMapKey])
		if err != nil {
			return nil, err
		}
		mapValue, err := decodeFormat(body[tagMapValue])
		if err != nil {
			return nil, err
		}
		return Map{Key: key, Value: mapValue}, nil
	case tagTuple:
		contents, err := decodeFormats(value)
		if err != nil {
			return nil, err
		}
		return Tuple{Contents: contents}, nil
	case tagFixedArray:
		var body struct {
			Content json.RawMessage `json:"CONTENT"`
			Size    int             `json:"SIZE"`
		}
		if err := json.Unmarshal(value, &body); err != nil {
			return nil, fmt.Errorf("failed to unmarshal array format: %w", err)
		}
		content, err := decodeFormat(body.Content)
		if err != nil {
			return nil, err
		}
		return FixedArray{Content: content, Size: body.Size}, nil
	case tagTypeName:
		var name string
		if err := json.Unmarshal(value, &name); err != nil {
			return nil, fmt.Errorf("failed to unmarshal type name: %w", err)
		}
		return TypeName(name), nil
	}
	return nil, fmt.Errorf("unknown format tag %q", tag)
}

func isString(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func singleKey(tag string, value json.RawMessage) json.RawMessage {
	buf := bytes.Buffer{}
	fmt.Fprintf(&buf, "{%q:%s}", tag, value)
	return buf.Bytes()
}

func splitSingleKey(data json.RawMessage) (string, json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal tagged value: %w", err)
	}
	if len(raw) != 1 {
		return "", nil, fmt.Errorf("tagged value must have exactly one key, got %d", len(raw))
	}
	for tag, value := range raw {
		return tag, value, nil
	}
	return "", nil, nil
}
