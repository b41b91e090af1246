package trivial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskcodec/duskgate/trivial"
)

type fixedPoint struct {
	X int32 `serial:"true"`
	Y int32 `serial:"true"`
}

type withOptional struct {
	Flag    bool                    `serial:"true"`
	Maybe   trivial.Optional[int64] `serial:"true"`
	Trailer uint8                   `serial:"true"`
}

type withArray struct {
	Coeffs [4]float32 `serial:"true"`
}

type ignoredField struct {
	Kept    int32 `serial:"true"`
	Dropped int32
}

func TestSizeIsCompileTimeConstant(t *testing.T) {
	sz, err := trivial.Size(fixedPoint{})
	require.NoError(t, err)
	assert.Equal(t, 8, sz)

	sz, err = trivial.Size(withOptional{})
	require.NoError(t, err)
	assert.Equal(t, 1+1+8+1, sz) // Flag + Optional tag + int64 payload + Trailer
}

func TestRoundTripAggregate(t *testing.T) {
	in := fixedPoint{X: -7, Y: 42}
	data, err := trivial.Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 8)

	var out fixedPoint
	require.NoError(t, trivial.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestOptionalReservesPayloadWhenAbsent(t *testing.T) {
	in := withOptional{Flag: true, Maybe: trivial.None[int64](), Trailer: 9}
	data, err := trivial.Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 11)

	var out withOptional
	require.NoError(t, trivial.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.False(t, out.Maybe.Valid)
}

func TestOptionalRoundTripsPresentValue(t *testing.T) {
	in := withOptional{Flag: false, Maybe: trivial.Some[int64](-99), Trailer: 1}
	data, err := trivial.Marshal(in)
	require.NoError(t, err)

	var out withOptional
	require.NoError(t, trivial.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestFixedArray(t *testing.T) {
	in := withArray{Coeffs: [4]float32{1.5, -2.5, 0, 100}}
	data, err := trivial.Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 16)

	var out withArray
	require.NoError(t, trivial.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestUntaggedFieldsAreIgnored(t *testing.T) {
	sz, err := trivial.Size(ignoredField{})
	require.NoError(t, err)
	assert.Equal(t, 4, sz)

	data, err := trivial.Marshal(ignoredField{Kept: 5, Dropped: 999})
	require.NoError(t, err)
	assert.Len(t, data, 4)
}

func TestUnmarshalRequiresPointer(t *testing.T) {
	var out fixedPoint
	assert.Error(t, trivial.Unmarshal([]byte{0, 0, 0, 0, 0, 0, 0, 0}, out))
}

func TestUnsupportedKindErrors(t *testing.T) {
	_, err := trivial.Size([]int{1, 2, 3})
	assert.Error(t, err)
}
