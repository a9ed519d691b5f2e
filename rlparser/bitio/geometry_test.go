package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatmap-gg/rlreplay/rlrep/rlcore"
)

func TestReadVector3iPreNetVersion7UsesFixedWidth(t *testing.T) {
	// net_version < 7: numBits=20, bias=0x40000, each component 22 bits.
	// All-zero bits decode to -bias on every axis.
	data := make([]byte, 9) // 66 bits rounds up to 9 bytes
	r := New(data)
	v := rlcore.VersionTriplet{Net: 6}
	got := r.ReadVector3i(v)
	assert.Equal(t, int32(-0x40000), got.X)
	assert.Equal(t, int32(-0x40000), got.Y)
	assert.Equal(t, int32(-0x40000), got.Z)
}

func TestReadRotationPresenceBits(t *testing.T) {
	// bit0=1 (pitch present), then pitch byte, bit=0 (no yaw), bit=0 (no roll).
	r := New([]byte{0b00000001, 0x05})
	rot := r.ReadRotation()
	require.NotNil(t, rot.Pitch)
	assert.Equal(t, int8(5), *rot.Pitch)
	assert.Nil(t, rot.Yaw)
	assert.Nil(t, rot.Roll)
}

func TestReadRotationAllAbsent(t *testing.T) {
	r := New([]byte{0x00})
	rot := r.ReadRotation()
	assert.Nil(t, rot.Pitch)
	assert.Nil(t, rot.Yaw)
	assert.Nil(t, rot.Roll)
}

func TestReadQuaternionProducesUnitNorm(t *testing.T) {
	// 2-bit selector=0, then three 18-bit components = 131071 each (the
	// midpoint of the 18-bit range, which dequantizes to about 0).
	data := []byte{0xFC, 0xFF, 0xF7, 0xFF, 0xDF, 0xFF, 0x7F, 0x00}
	r := New(data)
	q, err := r.ReadQuaternion()
	require.NoError(t, err)
	norm := float64(q.X)*float64(q.X) + float64(q.Y)*float64(q.Y) + float64(q.Z)*float64(q.Z) + float64(q.W)*float64(q.W)
	assert.InDelta(t, 1.0, norm, 1e-5)
}
