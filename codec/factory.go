package codec

import "github.com/duskcodec/duskgate/hash"

// SpawnEncoder builds the codec's default pipeline for secret: a
// MurMurEncoder keyed by hash(secret) wrapped in an Mt19937Encoder seeded
// from secret and a default-constructed salt generator. Encoding a message
// first tags and envelopes it for integrity, then obscures the result
// byte-by-byte; decoding reverses that order.
func SpawnEncoder(secret []byte) Encoder {
	uintSecret := hash.SumDefault(secret)

	inner := NewMurMurEncoder(uintSecret)
	outer := NewMt19937Encoder(secret, 0, NewMT19937_64(DefaultSeed64))

	return NewDoubleEncoder(inner, outer)
}
