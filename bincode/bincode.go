package bincode

import (
	"math"

	"github.com/novifinancial/serde-typegen/serde"
)

/*
Bincode wire format. Lengths are fixed-width little-endian u64, variant
indices are u32, and map entries keep insertion order. The format is not
canonical: the same value may admit several encodings, and the key ordering
check accepts everything.
*/

////////////////////////////////////////////////////////////////////////////////

type Serializer struct {
	*serde.BinarySerializer
}

func NewSerializer() *Serializer {
	return &Serializer{serde.NewBinarySerializer(math.MaxUint64)}
}

var _ serde.Serializer = (*Serializer)(nil)

func (s *Serializer) SerializeStr(v string) error {
	return s.BinarySerializer.SerializeStr(v, s.SerializeLen)
}

func (s *Serializer) SerializeBytes(v []byte) error {
	return s.BinarySerializer.SerializeBytes(v, s.SerializeLen)
}

func (s *Serializer) SerializeLen(v uint64) error {
	return s.SerializeU64(v)
}

func (s *Serializer) SerializeVariantIndex(v uint32) error {
	return s.SerializeU32(v)
}

func (s *Serializer) SerializeOptionTag(v bool) error {
	return s.SerializeBool(v)
}

// SortMapEntries is a no-op: bincode serializes map entries in insertion
// order.
func (s *Serializer) SortMapEntries([]uint64) {}

////////////////////////////////////////////////////////////////////////////////

type Deserializer struct {
	*serde.BinaryDeserializer
}

func NewDeserializer(input []byte) *Deserializer {
	return &Deserializer{serde.NewBinaryDeserializer(input, math.MaxUint64)}
}

var _ serde.Deserializer = (*Deserializer)(nil)

func (d *Deserializer) DeserializeStr() (string, error) {
	return d.BinaryDeserializer.DeserializeStr(d.DeserializeLen)
}

func (d *Deserializer) DeserializeBytes() ([]byte, error) {
	return d.BinaryDeserializer.DeserializeBytes(d.DeserializeLen)
}

func (d *Deserializer) DeserializeLen() (uint64, error) {
	return d.DeserializeU64()
}

func (d *Deserializer) DeserializeVariantIndex() (uint32, error) {
	return d.DeserializeU32()
}

func (d *Deserializer) DeserializeOptionTag() (bool, error) {
	return d.DeserializeBool()
}

// CheckThatKeySlicesAreIncreasing accepts any key order: bincode is not a
// canonical format.
func (d *Deserializer) CheckThatKeySlicesAreIncreasing(_, _ serde.Slice) error {
	return nil
}
