// Package crcsum implements the CRC engine (§4.7): a table-driven CRC-32
// over the header and body spans of a replay, using the standard CRC-32
// polynomial but the game's own initial state and final-xor convention
// rather than the standard IEEE ones.
//
// crc32.Checksum/crc32.MakeTable (see DESIGN.md for the tradeoff) only
// express the standard convention: init 0xFFFFFFFF, final XOR applied.
// The game's network CRC seeds the register with crcSeed instead and never
// inverts the final register, so the update loop below is hand-rolled
// rather than delegated to crc32.Checksum; crc32.MakeTable is still used
// to build the byte-indexed lookup table, since table construction itself
// doesn't depend on init/final-xor.
package crcsum

import (
	"hash/crc32"

	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// poly is the standard CRC-32 polynomial in normal (MSB-first) form;
// reversed, it equals crc32.IEEE. Only the seed and the missing final XOR
// differ from the IEEE convention.
const poly = 0x04C11DB7

// crcSeed is the register's initial value. Distinct from the standard
// CRC-32 init state (0xFFFFFFFF), which is why Sum cannot be built on
// crc32.Checksum: that function hard-codes both the init value and the
// final XOR, neither of which this convention uses.
const crcSeed uint32 = 0x10340DFB

// table is built once at package init, exactly as the teacher builds its
// Engines/Speeds enum tables at package scope.
var table = crc32.MakeTable(reverseBits32(poly))

// reverseBits32 reverses the bit order of a 32-bit polynomial: Go's
// crc32.MakeTable expects the reflected (reversed) polynomial the same way
// the standard crc32.IEEE constant already is.
func reverseBits32(v uint32) uint32 {
	var r uint32
	for i := 0; i < 32; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}

// Sum computes the game's CRC-32 checksum over data: seeded with crcSeed
// rather than the standard 0xFFFFFFFF, and with no final XOR applied to
// the result. table is reflected, so the update folds in each byte from
// the low end of the register exactly as crc32.Update does internally;
// the only departure from crc32.Checksum is the seed and the missing
// final inversion.
func Sum(data []byte) uint32 {
	crc := crcSeed
	for _, b := range data {
		crc = table[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// VerifyHeader checks data (the header span, following its own
// length+crc prefix) against want, returning a CrcMismatch error tagged
// SpanHeader on mismatch.
func VerifyHeader(data []byte, want uint32) error {
	return verify(rlerr.SpanHeader, data, want)
}

// VerifyBody checks data (the body span, following its own length+crc
// prefix) against want, returning a CrcMismatch error tagged SpanBody on
// mismatch.
func VerifyBody(data []byte, want uint32) error {
	return verify(rlerr.SpanBody, data, want)
}

func verify(span rlerr.Span, data []byte, want uint32) error {
	got := Sum(data)
	if got != want {
		return rlerr.CrcMismatch{Span: span, Expected: want, Actual: got}
	}
	return nil
}
