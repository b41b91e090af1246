package wire

import "math"

// Float32Size and Float64Size are the encoded widths of the IEEE-754
// floating point scalar types.
const (
	Float32Size = 4
	Float64Size = 8
)

// WriteFloat32 writes a little-endian IEEE-754 binary32.
func (b *Buffer) WriteFloat32(value float32) *Buffer {
	return b.WriteUint32(math.Float32bits(value))
}

// ReadFloat32 reads a little-endian IEEE-754 binary32.
func (b *Buffer) ReadFloat32() (float32, error) {
	bits, err := b.ReadUint32()
	return math.Float32frombits(bits), err
}

// WriteFloat64 writes a little-endian IEEE-754 binary64.
func (b *Buffer) WriteFloat64(value float64) *Buffer {
	return b.WriteUint64(math.Float64bits(value))
}

// ReadFloat64 reads a little-endian IEEE-754 binary64.
func (b *Buffer) ReadFloat64() (float64, error) {
	bits, err := b.ReadUint64()
	return math.Float64frombits(bits), err
}
