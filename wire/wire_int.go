package wire

// Int8Size, Int16Size, Int32Size, Int64Size are the encoded widths of the
// corresponding signed scalar types.
const (
	Int8Size  = 1
	Int16Size = 2
	Int32Size = 4
	Int64Size = 8
)

// WriteInt8 writes a little-endian int8.
func (b *Buffer) WriteInt8(value int8) *Buffer {
	return b.WriteUint8(uint8(value))
}

// ReadInt8 reads a little-endian int8.
func (b *Buffer) ReadInt8() (int8, error) {
	value, err := b.ReadUint8()
	return int8(value), err
}

// WriteInt16 writes a little-endian int16.
func (b *Buffer) WriteInt16(value int16) *Buffer {
	return b.WriteUint16(uint16(value))
}

// ReadInt16 reads a little-endian int16.
func (b *Buffer) ReadInt16() (int16, error) {
	value, err := b.ReadUint16()
	return int16(value), err
}

// WriteInt32 writes a little-endian int32.
func (b *Buffer) WriteInt32(value int32) *Buffer {
	return b.WriteUint32(uint32(value))
}

// ReadInt32 reads a little-endian int32.
func (b *Buffer) ReadInt32() (int32, error) {
	value, err := b.ReadUint32()
	return int32(value), err
}

// WriteInt64 writes a little-endian int64.
func (b *Buffer) WriteInt64(value int64) *Buffer {
	return b.WriteUint64(uint64(value))
}

// ReadInt64 reads a little-endian int64.
func (b *Buffer) ReadInt64() (int64, error) {
	value, err := b.ReadUint64()
	return int64(value), err
}
