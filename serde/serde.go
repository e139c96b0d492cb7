package serde

/*
Serializer and Deserializer are the primitive encode/decode surfaces that
generated code is written against. Each supported wire format supplies an
implementation; generated serializers call these primitives in the fixed
order derived from the type's format tree, so two implementations of this
interface are interchangeable under the same schema.

Formats differ in how they encode lengths, variant indices and map ordering,
which is why those operations are part of the interface rather than the
shared binary base.
*/

////////////////////////////////////////////////////////////////////////////////

type Serializer interface { // nolint: interfacebloat
	SerializeStr(v string) error
	SerializeBytes(v []byte) error
	SerializeBool(v bool) error
	SerializeUnit(v struct{}) error
	SerializeChar(v rune) error
	SerializeF32(v float32) error
	SerializeF64(v float64) error
	SerializeU8(v uint8) error
	SerializeU16(v uint16) error
	SerializeU32(v uint32) error
	SerializeU64(v uint64) error
	SerializeU128(v Uint128) error
	SerializeI8(v int8) error
	SerializeI16(v int16) error
	SerializeI32(v int32) error
	SerializeI64(v int64) error
	SerializeI128(v Int128) error

	// SerializeLen writes the length prefix for a sequence or map.
	SerializeLen(v uint64) error
	// SerializeVariantIndex writes an enum variant index.
	SerializeVariantIndex(v uint32) error
	// SerializeOptionTag writes the presence flag of an option.
	SerializeOptionTag(v bool) error

	// GetBufferOffset returns the number of bytes written so far.
	GetBufferOffset() uint64
	// SortMapEntries reorders the map entries starting at the given buffer
	// offsets according to the format's key ordering policy. Offsets mark the
	// start of each serialized entry; the last entry extends to the current
	// buffer offset.
	SortMapEntries(offsets []uint64)
	// GetBytes returns the serialized bytes.
	GetBytes() []byte

	IncreaseContainerDepth() error
	DecreaseContainerDepth()
}

type Deserializer interface { // nolint: interfacebloat
	DeserializeStr() (string, error)
	DeserializeBytes() ([]byte, error)
	DeserializeBool() (bool, error)
	DeserializeUnit() (struct{}, error)
	DeserializeChar() (rune, error)
	DeserializeF32() (float32, error)
	DeserializeF64() (float64, error)
	DeserializeU8() (uint8, error)
	DeserializeU16() (uint16, error)
	DeserializeU32() (uint32, error)
	DeserializeU64() (uint64, error)
	DeserializeU128() (Uint128, error)
	DeserializeI8() (int8, error)
	DeserializeI16() (int16, error)
	DeserializeI32() (int32, error)
	DeserializeI64() (int64, error)
	DeserializeI128() (Int128, error)

	DeserializeLen() (uint64, error)
	DeserializeVariantIndex() (uint32, error)
	DeserializeOptionTag() (bool, error)

	// GetBufferOffset returns the number of bytes read so far.
	GetBufferOffset() uint64
	// CheckThatKeySlicesAreIncreasing verifies that two consecutive map keys,
	// identified by their byte ranges in the input, satisfy the format's key
	// ordering policy.
	CheckThatKeySlicesAreIncreasing(key1, key2 Slice) error

	IncreaseContainerDepth() error
	DecreaseContainerDepth()
}

// Slice is a byte range in a serialization buffer, used to compare the raw
// encodings of consecutive map keys.
type Slice struct {
	Start uint64
	End   uint64
}
