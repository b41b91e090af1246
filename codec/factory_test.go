package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskcodec/duskgate/codec"
)

func TestSpawnEncoderRoundTrip(t *testing.T) {
	e := codec.SpawnEncoder([]byte("correct horse battery staple"))

	encoded, err := e.Encode("meet at the old bridge")
	require.NoError(t, err)

	decoded, err := e.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "meet at the old bridge", decoded)
}

func TestSpawnEncoderOutputLength(t *testing.T) {
	e := codec.SpawnEncoder([]byte("secret"))

	plaintext := "thirteen byte"
	encoded, err := e.Encode(plaintext)
	require.NoError(t, err)

	assert.Len(t, encoded, len(plaintext)+32)
}

func TestSpawnEncoderRejectsForeignSecret(t *testing.T) {
	encoded, err := codec.SpawnEncoder([]byte("secret-a")).Encode("confidential")
	require.NoError(t, err)

	_, err = codec.SpawnEncoder([]byte("secret-b")).Decode(encoded)
	assert.Error(t, err)
}

func TestSpawnEncoderSuccessiveEncodesProduceDifferentCiphertext(t *testing.T) {
	a := codec.SpawnEncoder([]byte("same secret"))

	first, err := a.Encode("repeated plaintext")
	require.NoError(t, err)

	second, err := a.Encode("repeated plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
