package rlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceReaderU32AndI32(t *testing.T) {
	sr := newSliceReader([]byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF})
	u, err := sr.u32()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), u)

	i, err := sr.i32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i)
}

func TestSliceReaderF32(t *testing.T) {
	sr := newSliceReader([]byte{0x00, 0x00, 0x80, 0x3F})
	f, err := sr.f32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f)
}

func TestSliceReaderU64(t *testing.T) {
	sr := newSliceReader([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	v, err := sr.u64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestSliceReaderBytesDoesNotAliasBacking(t *testing.T) {
	backing := []byte{1, 2, 3, 4}
	sr := newSliceReader(backing)
	out, err := sr.bytes(4)
	require.NoError(t, err)
	out[0] = 99
	assert.Equal(t, byte(1), backing[0])
}

func TestSliceReaderUnderrun(t *testing.T) {
	sr := newSliceReader([]byte{0x01, 0x02})
	_, err := sr.u32()
	require.Error(t, err)
}

func TestSliceReaderBytesNegativeLength(t *testing.T) {
	sr := newSliceReader([]byte{1, 2, 3})
	_, err := sr.bytes(-1)
	require.Error(t, err)
}

func TestCheckListLenRejectsNegativeCount(t *testing.T) {
	sr := newSliceReader([]byte{1, 2, 3, 4})
	err := sr.checkListLen("field", -1, 4)
	require.Error(t, err)
}

func TestCheckListLenRejectsOverflow(t *testing.T) {
	sr := newSliceReader([]byte{1, 2, 3, 4})
	err := sr.checkListLen("field", 1000, 4)
	require.Error(t, err)
}

func TestCheckListLenAcceptsPlausibleCount(t *testing.T) {
	sr := newSliceReader(make([]byte, 100))
	err := sr.checkListLen("field", 5, 4)
	require.NoError(t, err)
}

func TestSliceReaderStrAdvancesPosition(t *testing.T) {
	data := lenPrefixedWin1252("ab")
	data = append(data, 0x99)
	sr := newSliceReader(data)
	s, err := sr.str()
	require.NoError(t, err)
	assert.Equal(t, "ab", s)
	b, err := sr.byte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x99), b)
}
