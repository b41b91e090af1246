package codec

import (
	"github.com/duskcodec/duskgate/compact"
	"github.com/duskcodec/duskgate/hash"
)

type murMurMessage struct {
	ValidationKey uint64 `serial:"true"`
	Encoded       string `serial:"true"`
}

// MurMurEncoder is the integrity layer of the codec: it tags a string with
// a MurmurHash3 digest keyed by secret, so decoding fails unless the
// caller holds the same secret. It does not obscure the payload.
type MurMurEncoder struct {
	secret uint64
}

// NewMurMurEncoder returns an Encoder keyed by secret.
func NewMurMurEncoder(secret uint64) *MurMurEncoder {
	return &MurMurEncoder{secret: secret}
}

// Encode tags arg with hash(arg, secret) and wraps the aggregate in an
// integrity envelope.
func (e *MurMurEncoder) Encode(arg string) (string, error) {
	msg := murMurMessage{
		ValidationKey: hash.Sum64([]byte(arg), e.secret),
		Encoded:       arg,
	}

	data, err := compact.IntegrityMarshal(msg, hash.DefaultSeed)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Decode verifies arg's outer integrity envelope and then its inner keyed
// hash before returning the original payload. Either check failing
// returns ErrBadEncoding.
func (e *MurMurEncoder) Decode(arg string) (string, error) {
	var msg murMurMessage
	if err := compact.IntegrityUnmarshal([]byte(arg), hash.DefaultSeed, &msg); err != nil {
		return "", ErrBadEncoding
	}

	if hash.Sum64([]byte(msg.Encoded), e.secret) != msg.ValidationKey {
		return "", ErrBadEncoding
	}

	return msg.Encoded, nil
}
