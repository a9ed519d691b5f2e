package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBitOrder(t *testing.T) {
	// 0b10110000 little-endian within the byte: bit0=0,bit1=0,bit2=0,bit3=0,bit4=1,bit5=1,bit6=0,bit7=1
	r := New([]byte{0b10110000})
	var bits []bool
	for i := 0; i < 8; i++ {
		bits = append(bits, r.ReadBit())
	}
	assert.Equal(t, []bool{false, false, false, false, true, true, false, true}, bits)
}

func TestReadBitsAccumulatesLSBFirst(t *testing.T) {
	// First 4 bits read are the byte's low bits (1,1,1,1) and become value
	// bits 0..3, so the value is 0xF; the high nibble then reads as 0.
	r := New([]byte{0b00001111})
	v := r.ReadBits(4)
	assert.Equal(t, uint64(0xF), v)
	v2 := r.ReadBits(4)
	assert.Equal(t, uint64(0), v2)
}

func TestReadU32LittleEndian(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03, 0x04})
	assert.Equal(t, uint32(0x04030201), r.ReadU32())
}

func TestReadF32(t *testing.T) {
	// 1.0f = 0x3F800000 little endian bytes 00 00 80 3F
	r := New([]byte{0x00, 0x00, 0x80, 0x3F})
	assert.Equal(t, float32(1.0), r.ReadF32())
}

func TestReadI32MaxZeroBitsWhenMaxIsZero(t *testing.T) {
	r := New([]byte{0xFF})
	got := r.ReadI32Max(0)
	assert.Equal(t, int32(0), got)
	assert.Equal(t, int64(8), r.RemainingBits(), "no bits should have been consumed")
}

func TestReadI32MaxSingleChannel(t *testing.T) {
	// max_channels=1 restricts actor_id to {0,1}: exactly 1 bit consumed.
	r := New([]byte{0b00000001})
	got := r.ReadI32Max(1)
	assert.Equal(t, int32(1), got)
	assert.Equal(t, int64(7), r.RemainingBits())
}

func TestCheckedUnderrun(t *testing.T) {
	r := New([]byte{0xFF})
	_, err := r.CheckedReadU32()
	require.Error(t, err)
}

func TestCheckedReadRoundTrip(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	v, err := r.CheckedReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v)

	b, err := r.CheckedReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x05), b)
}

func TestAlignToByte(t *testing.T) {
	r := New([]byte{0xFF, 0xAA})
	r.ReadBits(3)
	r.AlignToByte()
	bp, bit := r.Pos()
	assert.Equal(t, 1, bp)
	assert.Equal(t, uint8(0), bit)
	assert.Equal(t, uint8(0xAA), r.ReadU8())
}

func TestReadAlignedByteString(t *testing.T) {
	r := New([]byte{'h', 'i', 0x00})
	s := r.ReadAlignedByteString(2)
	assert.Equal(t, []byte("hi"), s)
}
