package compact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskcodec/duskgate/compact"
)

type record struct {
	Name    string                   `serial:"true"`
	Tags    *compact.Set[string]     `serial:"true"`
	Scores  []int32                  `serial:"true"`
	Aliases map[string]int64         `serial:"true"`
	Parent  *record                  `serial:"true"`
	Nick    compact.Optional[string] `serial:"true"`
}

func TestRoundTripString(t *testing.T) {
	data, err := compact.Marshal("hello")
	require.NoError(t, err)
	assert.Len(t, data, 8+5)

	var out string
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, "hello", out)
}

func TestRoundTripByteSlice(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	data, err := compact.Marshal(in)
	require.NoError(t, err)

	var out []byte
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestRoundTripSequence(t *testing.T) {
	in := []int32{1, -2, 3, 400000}
	data, err := compact.Marshal(in)
	require.NoError(t, err)

	var out []int32
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestRoundTripMapping(t *testing.T) {
	in := map[string]int64{"a": 1, "b": 2, "c": 3}
	data, err := compact.Marshal(in)
	require.NoError(t, err)

	var out map[string]int64
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestRoundTripSet(t *testing.T) {
	in := compact.NewSet("x", "y", "z")
	data, err := compact.Marshal(in)
	require.NoError(t, err)

	out := compact.NewSet[string]()
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, in.Len(), out.Len())
	assert.True(t, out.Has("x"))
	assert.True(t, out.Has("y"))
	assert.True(t, out.Has("z"))
}

func TestRoundTripOwningPointer(t *testing.T) {
	val := int64(-55)
	data, err := compact.Marshal(&val)
	require.NoError(t, err)

	var out *int64
	require.NoError(t, compact.Unmarshal(data, &out))
	require.NotNil(t, out)
	assert.Equal(t, val, *out)
}

func TestNilPointerEncodesAsAbsent(t *testing.T) {
	var in *int64
	data, err := compact.Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 1)

	var out *int64
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Nil(t, out)
}

func TestOptionalOmitsPayloadWhenAbsent(t *testing.T) {
	in := compact.None[string]()
	data, err := compact.Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 1)

	var out compact.Optional[string]
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.False(t, out.Valid)
}

func TestOptionalRoundTripsPresentValue(t *testing.T) {
	in := compact.Some("present")
	data, err := compact.Marshal(in)
	require.NoError(t, err)

	var out compact.Optional[string]
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestRoundTripAggregate(t *testing.T) {
	in := record{
		Name:   "root",
		Tags:   compact.NewSet("a", "b"),
		Scores: []int32{7, 8, 9},
		Aliases: map[string]int64{"k": 1},
		Parent: nil,
		Nick:   compact.Some("r"),
	}

	data, err := compact.Marshal(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, compact.Unmarshal(data, &out))
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Scores, out.Scores)
	assert.Equal(t, in.Aliases, out.Aliases)
	assert.Nil(t, out.Parent)
	assert.Equal(t, in.Nick, out.Nick)
	require.NotNil(t, out.Tags)
	assert.Equal(t, in.Tags.Len(), out.Tags.Len())
}

func TestSelfReferentialPointerRoundTrips(t *testing.T) {
	in := record{
		Name: "child",
		Tags: compact.NewSet[string](),
		Parent: &record{
			Name: "parent",
			Tags: compact.NewSet[string](),
		},
	}

	data, err := compact.Marshal(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, compact.Unmarshal(data, &out))
	require.NotNil(t, out.Parent)
	assert.Equal(t, "parent", out.Parent.Name)
}
