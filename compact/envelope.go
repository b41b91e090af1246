package compact

import (
	"github.com/cockroachdb/errors"

	"github.com/duskcodec/duskgate/hash"
	"github.com/duskcodec/duskgate/wire"
)

// ErrBadEncoding is returned by IntegrityUnmarshal when the trailing hash
// tag does not match the payload that precedes it - truncation, bit rot or
// tampering all surface this way.
var ErrBadEncoding = errors.New("compact: integrity tag mismatch")

const tagSize = wire.Uint64Size

// IntegritySize returns the size of v's compact encoding plus the 8-byte
// trailing integrity tag.
func IntegritySize(v interface{}) (int, error) {
	n, err := Size(v)
	if err != nil {
		return 0, err
	}

	return n + tagSize, nil
}

// IntegrityMarshal compact-encodes v and appends a little-endian
// MurmurHash3 tag of the payload, seeded with seed.
func IntegrityMarshal(v interface{}, seed uint64) ([]byte, error) {
	payload, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	buf := wire.New(len(payload) + tagSize)
	buf.WriteBytes(payload)
	buf.WriteUint64(hash.Sum64(payload, seed))

	return buf.Bytes(), nil
}

// IntegrityUnmarshal verifies the trailing tag against the leading payload
// before decoding into out. It returns ErrBadEncoding, wrapped with
// context, if the tag does not match or data is shorter than the tag.
func IntegrityUnmarshal(data []byte, seed uint64, out interface{}) error {
	if len(data) < tagSize {
		return errors.Wrap(ErrBadEncoding, "payload shorter than integrity tag")
	}

	payload := data[:len(data)-tagSize]
	wantTag := hash.Sum64(payload, seed)

	buf := wire.New(data[len(payload):])
	gotTag, err := buf.ReadUint64()
	if err != nil {
		return err
	}

	if gotTag != wantTag {
		return errors.Wrap(ErrBadEncoding, "tag does not match payload")
	}

	return Unmarshal(payload, out)
}
