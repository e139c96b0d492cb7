package bcs

import (
	"bytes"
	"math"
	"slices"

	"github.com/novifinancial/serde-typegen/serde"
)

/*
Binary Canonical Serialization. Lengths and variant indices are minimal
ULEB128, sequences are bounded, container depth is budgeted, and map entries
are ordered by strictly increasing key bytes - so exactly one valid encoding
exists per value, and deserialization rejects any input that is not that
encoding.
*/

////////////////////////////////////////////////////////////////////////////////

const (
	// MaxSequenceLength is the largest sequence or map a BCS stream may carry.
	MaxSequenceLength = (1 << 31) - 1

	// MaxContainerDepth bounds the nesting of structs and variants.
	MaxContainerDepth = 500
)

type Serializer struct {
	*serde.BinarySerializer
}

func NewSerializer() *Serializer {
	return &Serializer{serde.NewBinarySerializer(MaxContainerDepth)}
}

var _ serde.Serializer = (*Serializer)(nil)

func (s *Serializer) SerializeStr(v string) error {
	return s.BinarySerializer.SerializeStr(v, s.SerializeLen)
}

func (s *Serializer) SerializeBytes(v []byte) error {
	return s.BinarySerializer.SerializeBytes(v, s.SerializeLen)
}

func (s *Serializer) SerializeLen(v uint64) error {
	if v > MaxSequenceLength {
		return ErrSequenceTooLong
	}
	return s.serializeU32AsUleb128(uint32(v))
}

func (s *Serializer) SerializeVariantIndex(v uint32) error {
	return s.serializeU32AsUleb128(v)
}

func (s *Serializer) SerializeOptionTag(v bool) error {
	return s.SerializeBool(v)
}

func (s *Serializer) serializeU32AsUleb128(v uint32) error {
	for v >= 0x80 {
		if err := s.SerializeU8(uint8(v&0x7f) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}
	return s.SerializeU8(uint8(v))
}

// SortMapEntries reorders the serialized map entries starting at the given
// offsets into ascending key byte order. Each offset marks the start of one
// entry; the last entry runs to the current end of the buffer.
func (s *Serializer) SortMapEntries(offsets []uint64) {
	if len(offsets) <= 1 {
		return
	}
	data := s.Buffer.Bytes()
	entries := make([][]byte, 0, len(offsets))
	for i, start := range offsets {
		end := uint64(len(data))
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		entry := make([]byte, end-start)
		copy(entry, data[start:end])
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, bytes.Compare)
	pos := offsets[0]
	for _, entry := range entries {
		copy(data[pos:], entry)
		pos += uint64(len(entry))
	}
}

////////////////////////////////////////////////////////////////////////////////

type Deserializer struct {
	*serde.BinaryDeserializer
}

func NewDeserializer(input []byte) *Deserializer {
	return &Deserializer{serde.NewBinaryDeserializer(input, MaxContainerDepth)}
}

var _ serde.Deserializer = (*Deserializer)(nil)

func (d *Deserializer) DeserializeStr() (string, error) {
	return d.BinaryDeserializer.DeserializeStr(d.DeserializeLen)
}

func (d *Deserializer) DeserializeBytes() ([]byte, error) {
	return d.BinaryDeserializer.DeserializeBytes(d.DeserializeLen)
}

func (d *Deserializer) DeserializeLen() (uint64, error) {
	v, err := d.deserializeUleb128AsU32()
	if err != nil {
		return 0, err
	}
	if v > MaxSequenceLength {
		return 0, ErrSequenceTooLong
	}
	return uint64(v), nil
}

func (d *Deserializer) DeserializeVariantIndex() (uint32, error) {
	return d.deserializeUleb128AsU32()
}

func (d *Deserializer) DeserializeOptionTag() (bool, error) {
	return d.DeserializeBool()
}

func (d *Deserializer) deserializeUleb128AsU32() (uint32, error) {
	var value uint64
	for shift := 0; shift < 32; shift += 7 {
		b, err := d.DeserializeU8()
		if err != nil {
			return 0, err
		}
		digit := b & 0x7f
		value |= uint64(digit) << shift
		if b < 0x80 {
			if value > math.MaxUint32 {
				return 0, ErrUlebOverflow
			}
			// Trailing zero digits would give the same value a second
			// encoding, which canonicality forbids.
			if digit == 0 && shift > 0 {
				return 0, ErrUlebNotMinimal
			}
			return uint32(value), nil
		}
	}
	return 0, ErrUlebOverflow
}

// CheckThatKeySlicesAreIncreasing rejects input whose consecutive map keys
// are not in strictly increasing byte order.
func (d *Deserializer) CheckThatKeySlicesAreIncreasing(key1, key2 serde.Slice) error {
	if bytes.Compare(d.Input[key1.Start:key1.End], d.Input[key2.Start:key2.End]) >= 0 {
		return serde.ErrNonCanonicalMapKeys
	}
	return nil
}
