package wire

// BoolSize is the encoded width of a bool value.
const BoolSize = 1

// WriteBool writes a single boolean tag byte.
func (b *Buffer) WriteBool(value bool) *Buffer {
	end := b.expandWriteCapacity(BoolSize)

	if value {
		b.bytes[b.writeOffset] = 1
	} else {
		b.bytes[b.writeOffset] = 0
	}

	b.writeOffset = end

	return b
}

// ReadBool reads a single boolean tag byte.
func (b *Buffer) ReadBool() (bool, error) {
	end, err := b.checkReadCapacity(BoolSize)
	if err != nil {
		return false, err
	}
	defer func() { b.readOffset = end }()

	return b.bytes[b.readOffset] != 0, nil
}
