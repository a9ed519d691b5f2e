// Package bitio implements the bit-level cursor the network-stream decoder
// is built on (§4.1). It generalizes the teacher's sliceReader (a plain
// byte-index cursor over a []byte) down to bit granularity: same idea
// (an index into an in-memory slice, never retreating), one more field
// (the bit offset within the current byte).
//
// Bits are read in the game's own convention: little-endian within a byte,
// meaning bit 0 of byte 0 is read first, then bit 1, ... bit 7, then bit 0
// of byte 1. Multi-bit reads (read_bits, read_i32_max) accumulate into the
// result from least-significant bit up, matching that per-byte order.
package bitio

import (
	"math"

	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// Reader is a little-endian bit cursor over a byte slice. The zero value is
// not usable; construct with New.
type Reader struct {
	b       []byte
	bytePos int
	bitPos  uint8 // 0..7, next bit to read within b[bytePos]
}

// New creates a Reader positioned at the start of b. The slice is not
// copied; the caller must not mutate it while the Reader is in use.
func New(b []byte) *Reader {
	return &Reader{b: b}
}

// Pos returns the current byte and bit offset. BitPos is always in [0,7].
func (r *Reader) Pos() (bytePos int, bitPos uint8) {
	return r.bytePos, r.bitPos
}

// BitsRead returns the total number of bits consumed so far.
func (r *Reader) BitsRead() int64 {
	return int64(r.bytePos)*8 + int64(r.bitPos)
}

// Len returns the total number of bytes backing this reader.
func (r *Reader) Len() int {
	return len(r.b)
}

// RemainingBits returns how many bits are left to read.
func (r *Reader) RemainingBits() int64 {
	total := int64(len(r.b)) * 8
	return total - r.BitsRead()
}

// HasBits reports whether at least n more bits can be read without
// underrunning. Callers of the unchecked methods below must establish this
// first; the checked methods establish it themselves.
func (r *Reader) HasBits(n int64) bool {
	return r.RemainingBits() >= n
}

// AlignToByte discards any partially-read byte, advancing to the next byte
// boundary. Used at end-of-stream, where a trailing partial byte is
// alignment padding (§4.4 termination).
func (r *Reader) AlignToByte() {
	if r.bitPos != 0 {
		r.bytePos++
		r.bitPos = 0
	}
}

// advance moves the cursor forward by n bits without reading anything;
// n must be <= remaining bits (caller's responsibility in the unchecked
// path, enforced in the checked path).
func (r *Reader) advance(n uint) {
	total := uint(r.bitPos) + n
	r.bytePos += int(total / 8)
	r.bitPos = uint8(total % 8)
}

// ---- unchecked primitives: caller must have verified HasBits first ----

// ReadBit reads a single bit.
func (r *Reader) ReadBit() bool {
	bit := (r.b[r.bytePos] >> r.bitPos) & 1
	r.advance(1)
	return bit != 0
}

// ReadBits reads n bits (1..=64) and returns them right-aligned in a
// uint64, least-significant bit first (the bit read earliest becomes bit 0
// of the result).
func (r *Reader) ReadBits(n uint8) uint64 {
	var result uint64
	for i := uint8(0); i < n; i++ {
		if r.ReadBit() {
			result |= 1 << i
		}
	}
	return result
}

// ReadU8 reads 8 bits as a byte.
func (r *Reader) ReadU8() uint8 {
	return uint8(r.ReadBits(8))
}

// ReadU32 reads 32 bits as a little-endian uint32.
func (r *Reader) ReadU32() uint32 {
	return uint32(r.ReadBits(32))
}

// ReadU64 reads 64 bits as a little-endian uint64.
func (r *Reader) ReadU64() uint64 {
	return r.ReadBits(64)
}

// ReadI32 reads 32 bits as a signed int32 (two's complement).
func (r *Reader) ReadI32() int32 {
	return int32(r.ReadU32())
}

// ReadF32 reads 32 bits as an IEEE-754 float32.
func (r *Reader) ReadF32() float32 {
	return math.Float32frombits(r.ReadU32())
}

// ReadI32Max reads the minimum number of bits needed to represent a value
// in [0, maxAllowed]: starting from an indicator of 1, a bit is read and
// folded in for every power-of-two indicator that is still <= maxAllowed,
// doubling the indicator each time. This is the same bounded-integer
// packing Unreal Engine replication uses, so the number of bits consumed
// depends only on maxAllowed, not on the value actually encoded — in
// particular maxAllowed=1 always consumes exactly 1 bit, which is what
// lets a MaxChannels of 1 restrict actor ids to exactly {0, 1} (§8).
func (r *Reader) ReadI32Max(maxAllowed int32) int32 {
	if maxAllowed <= 0 {
		return 0
	}

	maxU := uint32(maxAllowed)
	var value, indicator uint32 = 0, 1

	for indicator <= maxU {
		if r.ReadBit() {
			value |= indicator
		}
		indicator <<= 1
	}
	return int32(value)
}

// ReadBitStringBytes reads n raw bytes, byte-aligned or not, returning them
// as a freshly allocated slice (bit-packed byte strings are never backed
// directly by the input buffer: §3 ownership rule — the replay value
// exclusively owns its data).
func (r *Reader) ReadBitStringBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = r.ReadU8()
	}
	return out
}

// ReadAlignedByteString reads n bytes, assuming the cursor is currently
// byte-aligned (bitPos == 0). Faster than ReadBitStringBytes because it
// can copy directly instead of bit-shifting byte by byte.
func (r *Reader) ReadAlignedByteString(n int) []byte {
	if r.bitPos == 0 {
		out := make([]byte, n)
		copy(out, r.b[r.bytePos:r.bytePos+n])
		r.bytePos += n
		return out
	}
	return r.ReadBitStringBytes(n)
}

// ---- checked primitives: return ok=false (or an error) on underrun instead of indexing past the slice ----

// CheckedReadBit reads a single bit, reporting underrun instead of
// panicking.
func (r *Reader) CheckedReadBit() (bool, error) {
	if !r.HasBits(1) {
		return false, rlerr.InsufficientData{Context: "bit", Need: 1, Have: int(r.RemainingBits())}
	}
	return r.ReadBit(), nil
}

// CheckedReadBits reads n bits (1..=64), reporting underrun instead of
// panicking.
func (r *Reader) CheckedReadBits(n uint8) (uint64, error) {
	if n == 0 || n > 64 {
		return 0, rlerr.InsufficientData{Context: "bits: invalid width", Need: int(n), Have: 64}
	}
	if !r.HasBits(int64(n)) {
		return 0, rlerr.InsufficientData{Context: "bits", Need: int(n), Have: int(r.RemainingBits())}
	}
	return r.ReadBits(n), nil
}

// CheckedReadU8 reads a byte, reporting underrun instead of panicking.
func (r *Reader) CheckedReadU8() (uint8, error) {
	v, err := r.CheckedReadBits(8)
	return uint8(v), err
}

// CheckedReadU32 reads a little-endian uint32, reporting underrun instead
// of panicking.
func (r *Reader) CheckedReadU32() (uint32, error) {
	v, err := r.CheckedReadBits(32)
	return uint32(v), err
}

// CheckedReadU64 reads a little-endian uint64, reporting underrun instead
// of panicking.
func (r *Reader) CheckedReadU64() (uint64, error) {
	return r.CheckedReadBits(64)
}

// CheckedReadI32 reads a signed int32, reporting underrun instead of
// panicking.
func (r *Reader) CheckedReadI32() (int32, error) {
	v, err := r.CheckedReadU32()
	return int32(v), err
}

// CheckedReadF32 reads an IEEE-754 float32, reporting underrun instead of
// panicking.
func (r *Reader) CheckedReadF32() (float32, error) {
	v, err := r.CheckedReadU32()
	return math.Float32frombits(v), err
}

// CheckedReadI32Max reads a range-bounded value (§4.1), reporting underrun
// instead of panicking. The worst case consumes ceil(log2(maxAllowed+1))
// bits; we conservatively require that many bits be available up front so
// the unchecked inner loop never over-reads.
func (r *Reader) CheckedReadI32Max(maxAllowed int32) (int32, error) {
	if maxAllowed <= 0 {
		return 0, nil
	}
	need := bitsNeeded(maxAllowed)
	if !r.HasBits(int64(need)) {
		return 0, rlerr.InsufficientData{Context: "i32_max", Need: need, Have: int(r.RemainingBits())}
	}
	return r.ReadI32Max(maxAllowed), nil
}

// CheckedReadBitStringBytes reads n raw bytes, reporting underrun instead
// of panicking.
func (r *Reader) CheckedReadBitStringBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, rlerr.InsufficientData{Context: "bit string: negative length", Need: n}
	}
	if !r.HasBits(int64(n) * 8) {
		return nil, rlerr.InsufficientData{Context: "bit string", Need: n * 8, Have: int(r.RemainingBits())}
	}
	return r.ReadBitStringBytes(n), nil
}

// CheckedReadAlignedByteString reads n bytes, reporting underrun instead
// of panicking.
func (r *Reader) CheckedReadAlignedByteString(n int) ([]byte, error) {
	if n < 0 {
		return nil, rlerr.InsufficientData{Context: "aligned string: negative length", Need: n}
	}
	if !r.HasBits(int64(n) * 8) {
		return nil, rlerr.InsufficientData{Context: "aligned string", Need: n * 8, Have: int(r.RemainingBits())}
	}
	return r.ReadAlignedByteString(n), nil
}

// bitsNeeded returns the exact number of bits ReadI32Max consumes for the
// given maxAllowed: it depends only on maxAllowed, never on the value read.
func bitsNeeded(maxAllowed int32) int {
	if maxAllowed <= 0 {
		return 0
	}
	maxU := uint32(maxAllowed)
	n := 0
	for indicator := uint32(1); indicator <= maxU; indicator <<= 1 {
		n++
	}
	return n
}
