package wire

// WriteBytes appends the given bytes verbatim, with no length prefix.
func (b *Buffer) WriteBytes(data []byte) *Buffer {
	end := b.expandWriteCapacity(len(data))
	copy(b.bytes[b.writeOffset:end], data)
	b.writeOffset = end

	return b
}

// ReadBytes reads the given number of raw bytes and advances the read
// cursor. The returned slice aliases the buffer's backing array.
func (b *Buffer) ReadBytes(length int) ([]byte, error) {
	end, err := b.checkReadCapacity(length)
	if err != nil {
		return nil, err
	}
	defer func() { b.readOffset = end }()

	return b.bytes[b.readOffset:end], nil
}
