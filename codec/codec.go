// Package codec implements the symmetric obfuscating codec: an integrity
// layer (MurMurEncoder), a byte-substitution layer (Mt19937Encoder), their
// composition (DoubleEncoder), and a factory that wires up the combination
// this module ships by default (SpawnEncoder).
package codec

import "github.com/cockroachdb/errors"

// ErrBadEncoding is the only error any Encoder's Decode returns: a
// truncated buffer, a mismatched integrity tag, or a mismatched keyed
// hash all surface this way. Callers cannot distinguish the cause, by
// design - doing so would leak information useful to an attacker probing
// for which check failed.
var ErrBadEncoding = errors.New("codec: bad encoding")

// Encoder is implemented by every layer of the codec, including their
// composition.
type Encoder interface {
	Encode(arg string) (string, error)
	Decode(arg string) (string, error)
}
