// Package wire provides the little-endian byte cursor shared by the trivial
// and compact serializers and the codec. Every multi-byte value those
// packages put on the wire goes through a Buffer so that the on-disk
// layout never depends on host endianness.
package wire

import "fmt"

// Buffer is a growable byte slice with independent read and write offsets,
// similar in spirit to a bufio.Writer fused with a bytes.Reader. Unlike a
// bytes.Buffer it lets callers pre-size the backing array exactly, which the
// compact serializer relies on to avoid any reallocation while encoding.
type Buffer struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates a Buffer. With no arguments it starts empty and grows on
// demand. With a single int argument it pre-allocates that many bytes for
// writing. With a single []byte argument it wraps the slice for reading.
func New(args ...interface{}) *Buffer {
	switch len(args) {
	case 0:
		return &Buffer{}
	case 1:
		switch param := args[0].(type) {
		case int:
			return &Buffer{bytes: make([]byte, param), size: param}
		case []byte:
			return &Buffer{bytes: param, size: len(param)}
		default:
			panic(fmt.Errorf("wire.New: illegal argument type %T", param))
		}
	default:
		panic(fmt.Errorf("wire.New: illegal argument count %d", len(args)))
	}
}

// Bytes returns the written portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.bytes[:b.size]
}

// ReadOffset returns the current read cursor position.
func (b *Buffer) ReadOffset() int {
	return b.readOffset
}

// Len returns the number of unread bytes remaining in the buffer.
func (b *Buffer) Len() int {
	return b.size - b.readOffset
}

func (b *Buffer) checkReadCapacity(length int) (int, error) {
	end := b.readOffset + length
	if end > b.size {
		return 0, fmt.Errorf("wire: tried to read %d bytes past a %d byte buffer", end, b.size)
	}

	return end, nil
}

func (b *Buffer) expandWriteCapacity(length int) int {
	end := b.writeOffset + length
	if end > b.size {
		b.bytes = append(b.bytes, make([]byte, end-b.size)...)
		b.size = end
	}

	return end
}
