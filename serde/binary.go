package serde

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

/*
Shared binary bases for wire format implementations. Scalars are fixed-width
little-endian; strings and byte sequences are length-prefixed, with the
length encoding supplied by the concrete format. Container depth is budgeted
so adversarial input cannot recurse generated decoders without bound.
*/

////////////////////////////////////////////////////////////////////////////////

type BinarySerializer struct {
	Buffer               bytes.Buffer
	containerDepthBudget uint64
}

func NewBinarySerializer(maxContainerDepth uint64) *BinarySerializer {
	return &BinarySerializer{
		containerDepthBudget: maxContainerDepth,
	}
}

func (s *BinarySerializer) IncreaseContainerDepth() error {
	if s.containerDepthBudget == 0 {
		return ErrDepthExceeded
	}
	s.containerDepthBudget--
	return nil
}

func (s *BinarySerializer) DecreaseContainerDepth() {
	s.containerDepthBudget++
}

// SerializeBytes writes a length prefix followed by the raw bytes. The
// length encoding is format-specific and passed in by the caller.
func (s *BinarySerializer) SerializeBytes(v []byte, serializeLen func(uint64) error) error {
	if err := serializeLen(uint64(len(v))); err != nil {
		return err
	}
	s.Buffer.Write(v)
	return nil
}

// SerializeStr writes a UTF-8 string as a length-prefixed byte sequence.
func (s *BinarySerializer) SerializeStr(v string, serializeLen func(uint64) error) error {
	return s.SerializeBytes([]byte(v), serializeLen)
}

func (s *BinarySerializer) SerializeBool(v bool) error {
	if v {
		return s.Buffer.WriteByte(1)
	}
	return s.Buffer.WriteByte(0)
}

func (s *BinarySerializer) SerializeUnit(_ struct{}) error {
	return nil
}

// SerializeChar writes a Unicode code point as a little-endian u32.
func (s *BinarySerializer) SerializeChar(v rune) error {
	if !utf8.ValidRune(v) {
		return ErrInvalidChar
	}
	return s.SerializeU32(uint32(v))
}

func (s *BinarySerializer) SerializeU8(v uint8) error {
	return s.Buffer.WriteByte(v)
}

func (s *BinarySerializer) SerializeU16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	s.Buffer.Write(buf[:])
	return nil
}

func (s *BinarySerializer) SerializeU32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	s.Buffer.Write(buf[:])
	return nil
}

func (s *BinarySerializer) SerializeU64(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	s.Buffer.Write(buf[:])
	return nil
}

func (s *BinarySerializer) SerializeU128(v Uint128) error {
	if err := s.SerializeU64(v.Low); err != nil {
		return err
	}
	return s.SerializeU64(v.High)
}

func (s *BinarySerializer) SerializeI8(v int8) error {
	return s.SerializeU8(uint8(v))
}

func (s *BinarySerializer) SerializeI16(v int16) error {
	return s.SerializeU16(uint16(v))
}

func (s *BinarySerializer) SerializeI32(v int32) error {
	return s.SerializeU32(uint32(v))
}

func (s *BinarySerializer) SerializeI64(v int64) error {
	return s.SerializeU64(uint64(v))
}

func (s *BinarySerializer) SerializeI128(v Int128) error {
	if err := s.SerializeU64(v.Low); err != nil {
		return err
	}
	return s.SerializeU64(uint64(v.High))
}

func (s *BinarySerializer) SerializeF32(v float32) error {
	return s.SerializeU32(math.Float32bits(v))
}

func (s *BinarySerializer) SerializeF64(v float64) error {
	return s.SerializeU64(math.Float64bits(v))
}

func (s *BinarySerializer) GetBufferOffset() uint64 {
	return uint64(s.Buffer.Len())
}

func (s *BinarySerializer) GetBytes() []byte {
	return s.Buffer.Bytes()
}

////////////////////////////////////////////////////////////////////////////////

type BinaryDeserializer struct {
	Input                []byte
	Pos                  int
	containerDepthBudget uint64
}

func NewBinaryDeserializer(input []byte, maxContainerDepth uint64) *BinaryDeserializer {
	return &BinaryDeserializer{
		Input:                input,
		containerDepthBudget: maxContainerDepth,
	}
}

func (d *BinaryDeserializer) IncreaseContainerDepth() error {
	if d.containerDepthBudget == 0 {
		return ErrDepthExceeded
	}
	d.containerDepthBudget--
	return nil
}

func (d *BinaryDeserializer) DecreaseContainerDepth() {
	d.containerDepthBudget++
}

func (d *BinaryDeserializer) read(n int) ([]byte, error) {
	if n < 0 || len(d.Input)-d.Pos < n {
		return nil, ErrShortInput
	}
	buf := d.Input[d.Pos : d.Pos+n]
	d.Pos += n
	return buf, nil
}

// DeserializeBytes reads a length prefix with the supplied format-specific
// decoder, then the raw bytes.
func (d *BinaryDeserializer) DeserializeBytes(deserializeLen func() (uint64, error)) ([]byte, error) {
	length, err := deserializeLen()
	if err != nil {
		return nil, err
	}
	if length > uint64(len(d.Input)-d.Pos) {
		return nil, ErrShortInput
	}
	buf, err := d.read(int(length))
	if err != nil {
		return nil, err
	}
	result := make([]byte, length)
	copy(result, buf)
	return result, nil
}

func (d *BinaryDeserializer) DeserializeStr(deserializeLen func() (uint64, error)) (string, error) {
	buf, err := d.DeserializeBytes(deserializeLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("string is not valid UTF-8")
	}
	return string(buf), nil
}

func (d *BinaryDeserializer) DeserializeBool() (bool, error) {
	b, err := d.read(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, ErrInvalidBool
}

func (d *BinaryDeserializer) DeserializeUnit() (struct{}, error) {
	return struct{}{}, nil
}

func (d *BinaryDeserializer) DeserializeChar() (rune, error) {
	v, err := d.DeserializeU32()
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, ErrInvalidChar
	}
	return r, nil
}

func (d *BinaryDeserializer) DeserializeU8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *BinaryDeserializer) DeserializeU16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *BinaryDeserializer) DeserializeU32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *BinaryDeserializer) DeserializeU64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *BinaryDeserializer) DeserializeU128() (Uint128, error) {
	low, err := d.DeserializeU64()
	if err != nil {
		return Uint128{}, err
	}
	high, err := d.DeserializeU64()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{High: high, Low: low}, nil
}

func (d *BinaryDeserializer) DeserializeI8() (int8, error) {
	v, err := d.DeserializeU8()
	return int8(v), err
}

func (d *BinaryDeserializer) DeserializeI16() (int16, error) {
	v, err := d.DeserializeU16()
	return int16(v), err
}

func (d *BinaryDeserializer) DeserializeI32() (int32, error) {
	v, err := d.DeserializeU32()
	return int32(v), err
}

func (d *BinaryDeserializer) DeserializeI64() (int64, error) {
	v, err := d.DeserializeU64()
	return int64(v), err
}

func (d *BinaryDeserializer) DeserializeI128() (Int128, error) {
	low, err := d.DeserializeU64()
	if err != nil {
		return Int128{}, err
	}
	high, err := d.DeserializeU64()
	if err != nil {
		return Int128{}, err
	}
	return Int128{High: int64(high), Low: low}, nil
}

func (d *BinaryDeserializer) DeserializeF32() (float32, error) {
	v, err := d.DeserializeU32()
	return math.Float32frombits(v), err
}

func (d *BinaryDeserializer) DeserializeF64() (float64, error) {
	v, err := d.DeserializeU64()
	return math.Float64frombits(v), err
}

func (d *BinaryDeserializer) GetBufferOffset() uint64 {
	return uint64(d.Pos)
}
