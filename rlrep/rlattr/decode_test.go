package rlattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatmap-gg/rlreplay/rlparser/bitio"
	"github.com/heatmap-gg/rlreplay/rlrep/rlcore"
)

func TestDecodeBoolean(t *testing.T) {
	r := bitio.New([]byte{0b00000001})
	a, err := Decode(KindBoolean, r, rlcore.VersionTriplet{})
	require.NoError(t, err)
	assert.Equal(t, Boolean(true), a)
	assert.Equal(t, KindBoolean, a.AttrKind())
}

func TestDecodeByte(t *testing.T) {
	r := bitio.New([]byte{0x2a})
	a, err := Decode(KindByte, r, rlcore.VersionTriplet{})
	require.NoError(t, err)
	assert.Equal(t, Byte(0x2a), a)
}

func TestDecodeInt(t *testing.T) {
	r := bitio.New([]byte{0x01, 0x00, 0x00, 0x00})
	a, err := Decode(KindInt, r, rlcore.VersionTriplet{})
	require.NoError(t, err)
	assert.Equal(t, Int(1), a)
}

func TestDecodeFloat(t *testing.T) {
	// 1.0f little-endian.
	r := bitio.New([]byte{0x00, 0x00, 0x80, 0x3F})
	a, err := Decode(KindFloat, r, rlcore.VersionTriplet{})
	require.NoError(t, err)
	assert.Equal(t, Float(1.0), a)
}

func TestDecodeStringAttrNonNegativeLength(t *testing.T) {
	// length=4 ("abc\0"), aligned byte string.
	data := []byte{0x04, 0x00, 0x00, 0x00, 'a', 'b', 'c', 0x00}
	r := bitio.New(data)
	a, err := Decode(KindStringAttr, r, rlcore.VersionTriplet{})
	require.NoError(t, err)
	assert.Equal(t, StringAttr("abc"), a)
}

func TestDecodeUnrecognizedKindIsDispatchable(t *testing.T) {
	// Every declared Kind must be handled by Decode's switch; a bogus Kind
	// id not in the table hits the default branch.
	bogus := Kind{rlcore.Enum{Name: "Bogus"}, 9999}
	r := bitio.New([]byte{0x00})
	_, err := Decode(bogus, r, rlcore.VersionTriplet{})
	require.Error(t, err)
}

func TestDecodeLocationUsesVector3i(t *testing.T) {
	data := make([]byte, 9)
	r := bitio.New(data)
	a, err := Decode(KindLocation, r, rlcore.VersionTriplet{Net: 6})
	require.NoError(t, err)
	loc, ok := a.(*Location)
	require.True(t, ok)
	assert.Equal(t, int32(-0x40000), loc.Value.X)
}
