package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duskcodec/duskgate/hash"
)

// These vectors were computed against a from-scratch reimplementation of the
// canonical MurmurHash3 x64_128 construction, keeping only the low 64 bits
// of h1. Any conforming implementation must reproduce them exactly.
func TestVectorConformance(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		seed uint64
		want uint64
	}{
		{"empty/seed0xFF", []byte{}, 0xFF, 0xaf9fb88dfcaf0646},
		{"empty/seed0", []byte{}, 0, 0},
		{"hello", []byte("hello"), 0xFF, 0x207845b222043601},
		{"hello world", []byte("hello world"), 0xFF, 0xc6c763891043c9f9},
		{"pangram", []byte("The quick brown fox jumps over the lazy dog"), 0xFF, 0x46dd4a549bcdc974},
		{"tomskicus", []byte("tomskicus"), 0xFF, 0x362b49ef765c06b5},
		{"four zero bytes", []byte{0, 0, 0, 0}, 0xFF, 0x724e45b8f6b20a61},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, hash.Sum64(c.data, c.seed))
		})
	}
}

func TestSumDefaultUsesDefaultSeed(t *testing.T) {
	assert.Equal(t, hash.Sum64([]byte("abc"), hash.DefaultSeed), hash.SumDefault([]byte("abc")))
}

func TestDeterministic(t *testing.T) {
	data := []byte("repeat me")
	assert.Equal(t, hash.SumDefault(data), hash.SumDefault(data))
}

func TestSensitiveToEverySingleByteFlip(t *testing.T) {
	data := []byte("a reasonably long message to flip bits in")
	base := hash.SumDefault(data)

	for i := range data {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte{}, data...)
			flipped[i] ^= 1 << bit
			if got := hash.SumDefault(flipped); got == base {
				t.Fatalf("flipping bit %d of byte %d did not change the hash", bit, i)
			}
		}
	}
}

func TestLengthIsMixedIn(t *testing.T) {
	a := hash.SumDefault([]byte{0x01})
	b := hash.SumDefault([]byte{0x01, 0x00})
	assert.NotEqual(t, a, b)
}
