package wire

import "encoding/binary"

// Uint8Size, Uint16Size, Uint32Size, Uint64Size are the encoded widths of
// the corresponding unsigned scalar types.
const (
	Uint8Size  = 1
	Uint16Size = 2
	Uint32Size = 4
	Uint64Size = 8
)

// WriteUint8 writes a little-endian uint8.
func (b *Buffer) WriteUint8(value uint8) *Buffer {
	end := b.expandWriteCapacity(Uint8Size)
	b.bytes[b.writeOffset] = value
	b.writeOffset = end

	return b
}

// ReadUint8 reads a little-endian uint8.
func (b *Buffer) ReadUint8() (uint8, error) {
	end, err := b.checkReadCapacity(Uint8Size)
	if err != nil {
		return 0, err
	}
	defer func() { b.readOffset = end }()

	return b.bytes[b.readOffset], nil
}

// WriteUint16 writes a little-endian uint16.
func (b *Buffer) WriteUint16(value uint16) *Buffer {
	end := b.expandWriteCapacity(Uint16Size)
	binary.LittleEndian.PutUint16(b.bytes[b.writeOffset:end], value)
	b.writeOffset = end

	return b
}

// ReadUint16 reads a little-endian uint16.
func (b *Buffer) ReadUint16() (uint16, error) {
	end, err := b.checkReadCapacity(Uint16Size)
	if err != nil {
		return 0, err
	}
	defer func() { b.readOffset = end }()

	return binary.LittleEndian.Uint16(b.bytes[b.readOffset:end]), nil
}

// WriteUint32 writes a little-endian uint32.
func (b *Buffer) WriteUint32(value uint32) *Buffer {
	end := b.expandWriteCapacity(Uint32Size)
	binary.LittleEndian.PutUint32(b.bytes[b.writeOffset:end], value)
	b.writeOffset = end

	return b
}

// ReadUint32 reads a little-endian uint32.
func (b *Buffer) ReadUint32() (uint32, error) {
	end, err := b.checkReadCapacity(Uint32Size)
	if err != nil {
		return 0, err
	}
	defer func() { b.readOffset = end }()

	return binary.LittleEndian.Uint32(b.bytes[b.readOffset:end]), nil
}

// WriteUint64 writes a little-endian uint64.
func (b *Buffer) WriteUint64(value uint64) *Buffer {
	end := b.expandWriteCapacity(Uint64Size)
	binary.LittleEndian.PutUint64(b.bytes[b.writeOffset:end], value)
	b.writeOffset = end

	return b
}

// ReadUint64 reads a little-endian uint64.
func (b *Buffer) ReadUint64() (uint64, error) {
	end, err := b.checkReadCapacity(Uint64Size)
	if err != nil {
		return 0, err
	}
	defer func() { b.readOffset = end }()

	return binary.LittleEndian.Uint64(b.bytes[b.readOffset:end]), nil
}
