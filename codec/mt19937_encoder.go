package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/duskcodec/duskgate/hash"
	"github.com/duskcodec/duskgate/trivial"
	"github.com/duskcodec/duskgate/wire"
)

// ErrInvalidArgument is returned by Mt19937Encoder.Encode when a caller
// configured a maximum encoding length and arg exceeds it. It is unused
// when maxEncodingLength is 0.
var ErrInvalidArgument = errors.New("codec: invalid argument")

// Mt19937Encoder obscures a string by substituting every byte through a
// permutation drawn from a seeded MT19937-64 stream - a fresh permutation
// per byte, so identical plaintext bytes do not produce identical
// ciphertext bytes within the same message. It carries a second,
// independent generator (saltSource) used only to draw a random salt per
// call, which is what makes two encodes of the same plaintext differ.
//
// An Mt19937Encoder is stateful - saltSource advances on every Encode -
// and is therefore not safe to share across goroutines without external
// synchronization.
type Mt19937Encoder struct {
	secret            []byte
	maxEncodingLength int
	saltSource        *MT19937_64
}

// NewMt19937Encoder returns an Encoder keyed by secret. A maxEncodingLength
// of 0 means no cap is enforced.
func NewMt19937Encoder(secret []byte, maxEncodingLength int, saltSource *MT19937_64) *Mt19937Encoder {
	return &Mt19937Encoder{
		secret:            secret,
		maxEncodingLength: maxEncodingLength,
		saltSource:        saltSource,
	}
}

// Encode draws a fresh salt, derives a seed from secret and salt, and
// substitutes every byte of arg through a permutation drawn from the
// resulting stream. Output is the 8-byte little-endian salt followed by
// the ciphertext bytes, with no length prefix.
func (e *Mt19937Encoder) Encode(arg string) (string, error) {
	if e.maxEncodingLength > 0 && len(arg) > e.maxEncodingLength {
		return "", ErrInvalidArgument
	}

	salt := e.saltSource.Uint64()
	r := NewMT19937_64(e.seedFor(salt))

	cipher := make([]byte, len(arg))
	for i := 0; i < len(arg); i++ {
		cipher[i] = byteEncode(arg[i], r)
	}

	buf := wire.New(wire.Uint64Size + len(cipher))
	buf.WriteUint64(salt)
	buf.WriteBytes(cipher)

	return string(buf.Bytes()), nil
}

// Decode reverses Encode: it reads the leading salt, rederives the same
// permutation stream, and inverts each byte's substitution by linear
// search through the corresponding permutation.
func (e *Mt19937Encoder) Decode(arg string) (string, error) {
	data := []byte(arg)
	if len(data) < wire.Uint64Size {
		return "", ErrBadEncoding
	}

	buf := wire.New(data)

	salt, err := buf.ReadUint64()
	if err != nil {
		return "", err
	}

	cipher, err := buf.ReadBytes(buf.Len())
	if err != nil {
		return "", err
	}

	r := NewMT19937_64(e.seedFor(salt))

	plain := make([]byte, len(cipher))
	for i, c := range cipher {
		plain[i] = byteDecode(c, r)
	}

	return string(plain), nil
}

func (e *Mt19937Encoder) seedFor(salt uint64) uint64 {
	saltBytes, err := trivial.Marshal(salt)
	if err != nil {
		// uint64 is always trivially serializable.
		panic(err)
	}

	cat := make([]byte, 0, len(e.secret)+len(saltBytes))
	cat = append(cat, e.secret...)
	cat = append(cat, saltBytes...)

	return hash.Sum64(cat, hash.DefaultSeed)
}
