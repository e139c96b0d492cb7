package bcs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-typegen/bcs"
	"github.com/novifinancial/serde-typegen/serde"
	"github.com/novifinancial/serde-typegen/util"
)

/*
The record type below stands in for generated code: a struct with a string, a
canonical map, and an optional self reference behind a pointer, serialized
field by field against the serde primitives exactly as a generated serializer
would be.
*/

type record struct {
	ID    uint64
	Label string
	Attrs map[string]uint32
	Next  *record
}

func serializeRecord(r record, s serde.Serializer) error {
	if err := s.IncreaseContainerDepth(); err != nil {
		return err
	}
	if err := s.SerializeU64(r.ID); err != nil {
		return err
	}
	if err := s.SerializeStr(r.Label); err != nil {
		return err
	}
	if err := s.SerializeLen(uint64(len(r.Attrs))); err != nil {
		return err
	}
	offsets := make([]uint64, 0, len(r.Attrs))
	for _, key := range util.Okeys(r.Attrs) {
		offsets = append(offsets, s.GetBufferOffset())
		if err := s.SerializeStr(key); err != nil {
			return err
		}
		if err := s.SerializeU32(r.Attrs[key]); err != nil {
			return err
		}
	}
	s.SortMapEntries(offsets)
	if err := s.SerializeOptionTag(r.Next != nil); err != nil {
		return err
	}
	if r.Next != nil {
		if err := serializeRecord(*r.Next, s); err != nil {
			return err
		}
	}
	s.DecreaseContainerDepth()
	return nil
}

func deserializeRecord(d serde.Deserializer) (record, error) {
	var r record
	if err := d.IncreaseContainerDepth(); err != nil {
		return r, err
	}
	id, err := d.DeserializeU64()
	if err != nil {
		return r, err
	}
	r.ID = id
	label, err := d.DeserializeStr()
	if err != nil {
		return r, err
	}
	r.Label = label
	length, err := d.DeserializeLen()
	if err != nil {
		return r, err
	}
	r.Attrs = make(map[string]uint32, length)
	previous := serde.Slice{}
	for i := uint64(0); i < length; i++ {
		start := d.GetBufferOffset()
		key, err := d.DeserializeStr()
		if err != nil {
			return r, err
		}
		current := serde.Slice{Start: start, End: d.GetBufferOffset()}
		if i > 0 {
			if err := d.CheckThatKeySlicesAreIncreasing(previous, current); err != nil {
				return r, err
			}
		}
		previous = current
		value, err := d.DeserializeU32()
		if err != nil {
			return r, err
		}
		r.Attrs[key] = value
	}
	tag, err := d.DeserializeOptionTag()
	if err != nil {
		return r, err
	}
	if tag {
		next, err := deserializeRecord(d)
		if err != nil {
			return r, err
		}
		r.Next = &next
	}
	d.DecreaseContainerDepth()
	return r, nil
}

func encodeRecord(t *testing.T, r record) []byte {
	t.Helper()
	s := bcs.NewSerializer()
	require.NoError(t, serializeRecord(r, s))
	return s.GetBytes()
}

func decodeRecord(input []byte) (record, error) {
	d := bcs.NewDeserializer(input)
	r, err := deserializeRecord(d)
	if err != nil {
		return r, err
	}
	if d.GetBufferOffset() != uint64(len(input)) {
		return r, fmt.Errorf("input has %d trailing bytes", uint64(len(input))-d.GetBufferOffset())
	}
	return r, nil
}

func sample() record {
	return record{
		ID:    7,
		Label: "root",
		Attrs: map[string]uint32{"depth": 0, "width": 3},
		Next: &record{
			ID:    8,
			Label: "leaf",
			Attrs: map[string]uint32{},
		},
	}
}

func TestUleb128(t *testing.T) {
	vectors := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{65535, []byte{0xff, 0xff, 0x03}},
	}
	for _, v := range vectors {
		t.Run(fmt.Sprintf("%d", v.value), func(t *testing.T) {
			s := bcs.NewSerializer()
			require.NoError(t, s.SerializeLen(v.value))
			assert.Equal(t, v.expected, s.GetBytes())

			d := bcs.NewDeserializer(v.expected)
			decoded, err := d.DeserializeLen()
			require.NoError(t, err)
			assert.Equal(t, v.value, decoded)
		})
	}

	t.Run("rejects non-minimal encodings", func(t *testing.T) {
		d := bcs.NewDeserializer([]byte{0x80, 0x00})
		_, err := d.DeserializeLen()
		require.ErrorIs(t, err, bcs.ErrUlebNotMinimal)
	})
	t.Run("accepts u32 max as variant index", func(t *testing.T) {
		d := bcs.NewDeserializer([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})
		index, err := d.DeserializeVariantIndex()
		require.NoError(t, err)
		assert.Equal(t, ^uint32(0), index)
	})
	t.Run("rejects values over u32 max", func(t *testing.T) {
		d := bcs.NewDeserializer([]byte{0xff, 0xff, 0xff, 0xff, 0x1f})
		_, err := d.DeserializeVariantIndex()
		require.ErrorIs(t, err, bcs.ErrUlebOverflow)
	})
	t.Run("rejects sequences over the maximum length", func(t *testing.T) {
		s := bcs.NewSerializer()
		require.ErrorIs(t, s.SerializeLen(bcs.MaxSequenceLength+1), bcs.ErrSequenceTooLong)
	})
}

func TestScalarRoundTrips(t *testing.T) {
	s := bcs.NewSerializer()
	require.NoError(t, s.SerializeBool(true))
	require.NoError(t, s.SerializeI8(-3))
	require.NoError(t, s.SerializeU16(512))
	require.NoError(t, s.SerializeI32(-70000))
	require.NoError(t, s.SerializeF32(1.5))
	require.NoError(t, s.SerializeF64(-2.25))
	require.NoError(t, s.SerializeChar('λ'))
	require.NoError(t, s.SerializeStr("héllo"))
	require.NoError(t, s.SerializeBytes([]byte{0xde, 0xad}))
	require.NoError(t, s.SerializeU128(serde.Uint128{High: 1, Low: 2}))
	require.NoError(t, s.SerializeI128(serde.Int128{High: -1, Low: ^uint64(0)}))
	require.NoError(t, s.SerializeUnit(struct{}{}))

	d := bcs.NewDeserializer(s.GetBytes())
	b, err := d.DeserializeBool()
	require.NoError(t, err)
	assert.True(t, b)
	i8, err := d.DeserializeI8()
	require.NoError(t, err)
	assert.Equal(t, int8(-3), i8)
	u16, err := d.DeserializeU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(512), u16)
	i32, err := d.DeserializeI32()
	require.NoError(t, err)
	assert.Equal(t, int32(-70000), i32)
	f32, err := d.DeserializeF32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)
	f64, err := d.DeserializeF64()
	require.NoError(t, err)
	assert.Equal(t, -2.25, f64)
	char, err := d.DeserializeChar()
	require.NoError(t, err)
	assert.Equal(t, 'λ', char)
	str, err := d.DeserializeStr()
	require.NoError(t, err)
	assert.Equal(t, "héllo", str)
	bytes, err := d.DeserializeBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, bytes)
	u128, err := d.DeserializeU128()
	require.NoError(t, err)
	assert.Equal(t, serde.Uint128{High: 1, Low: 2}, u128)
	i128, err := d.DeserializeI128()
	require.NoError(t, err)
	assert.Equal(t, serde.Int128{High: -1, Low: ^uint64(0)}, i128)
	_, err = d.DeserializeUnit()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(s.GetBytes())), d.GetBufferOffset())
}

func TestRecordRoundTrip(t *testing.T) {
	encoded := encodeRecord(t, sample())
	decoded, err := decodeRecord(encoded)
	require.NoError(t, err)
	assert.Equal(t, sample(), decoded)
}

func TestCanonicalUniqueness(t *testing.T) {
	t.Run("repeated serialization is byte-identical", func(t *testing.T) {
		expected := encodeRecord(t, sample())
		for i := 0; i < 20; i++ {
			assert.Equal(t, expected, encodeRecord(t, sample()))
		}
	})
	t.Run("map insertion order does not matter", func(t *testing.T) {
		a := record{Attrs: map[string]uint32{}}
		b := record{Attrs: map[string]uint32{}}
		for i := 0; i < 16; i++ {
			a.Attrs[fmt.Sprintf("k%02d", i)] = uint32(i)
		}
		for i := 15; i >= 0; i-- {
			b.Attrs[fmt.Sprintf("k%02d", i)] = uint32(i)
		}
		assert.Equal(t, encodeRecord(t, a), encodeRecord(t, b))
	})
}

func TestRejectsUnsortedMapKeys(t *testing.T) {
	// Serialize a two-entry map by hand with the keys out of order, skipping
	// SortMapEntries.
	s := bcs.NewSerializer()
	require.NoError(t, s.SerializeU64(1))
	require.NoError(t, s.SerializeStr("x"))
	require.NoError(t, s.SerializeLen(2))
	require.NoError(t, s.SerializeStr("b"))
	require.NoError(t, s.SerializeU32(1))
	require.NoError(t, s.SerializeStr("a"))
	require.NoError(t, s.SerializeU32(2))
	require.NoError(t, s.SerializeOptionTag(false))

	_, err := decodeRecord(s.GetBytes())
	require.ErrorIs(t, err, serde.ErrNonCanonicalMapKeys)
}

func TestRejectsDuplicateMapKeys(t *testing.T) {
	s := bcs.NewSerializer()
	require.NoError(t, s.SerializeU64(1))
	require.NoError(t, s.SerializeStr("x"))
	require.NoError(t, s.SerializeLen(2))
	require.NoError(t, s.SerializeStr("a"))
	require.NoError(t, s.SerializeU32(1))
	require.NoError(t, s.SerializeStr("a"))
	require.NoError(t, s.SerializeU32(2))
	require.NoError(t, s.SerializeOptionTag(false))

	_, err := decodeRecord(s.GetBytes())
	require.ErrorIs(t, err, serde.ErrNonCanonicalMapKeys)
}

func TestMutation(t *testing.T) {
	original := sample()
	encoded := encodeRecord(t, original)
	for i := range encoded {
		mutated := make([]byte, len(encoded))
		copy(mutated, encoded)
		mutated[i] ^= 0xff
		decoded, err := decodeRecord(mutated)
		if err != nil {
			continue
		}
		assert.False(t, reflect.DeepEqual(original, decoded),
			"flipping byte %d produced an equal value", i)
	}
}

func TestTrailingBytes(t *testing.T) {
	encoded := encodeRecord(t, sample())
	_, err := decodeRecord(append(encoded, 0x00))
	require.ErrorContains(t, err, "trailing bytes")
}
