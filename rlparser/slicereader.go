// This file contains a byte-level slice reader for the parts of a replay
// that are plain length-prefixed byte data rather than bit-packed (the
// header and the body's outer tables, §4.2/§4.3). It generalizes the
// teacher's sliceReader the same way bitio generalizes it to bit
// granularity: same pos-into-a-[]byte idea, but every read here is
// checked, since unlike the teacher's fixed-offset header fields, every
// length here comes from untrusted replay data.

package rlparser

import (
	"encoding/binary"
	"math"

	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// sliceReader reads sequentially from a byte slice, never retreating.
type sliceReader struct {
	b   []byte
	pos int
}

func newSliceReader(b []byte) *sliceReader {
	return &sliceReader{b: b}
}

func (sr *sliceReader) remaining() int {
	return len(sr.b) - sr.pos
}

func (sr *sliceReader) need(n int, context string) error {
	if sr.remaining() < n {
		return rlerr.InsufficientData{Context: context, Need: n, Have: sr.remaining()}
	}
	return nil
}

func (sr *sliceReader) byte() (byte, error) {
	if err := sr.need(1, "byte"); err != nil {
		return 0, err
	}
	b := sr.b[sr.pos]
	sr.pos++
	return b, nil
}

func (sr *sliceReader) u32() (uint32, error) {
	if err := sr.need(4, "u32"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(sr.b[sr.pos:])
	sr.pos += 4
	return v, nil
}

func (sr *sliceReader) i32() (int32, error) {
	v, err := sr.u32()
	return int32(v), err
}

func (sr *sliceReader) f32() (float32, error) {
	v, err := sr.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (sr *sliceReader) u64() (uint64, error) {
	if err := sr.need(8, "u64"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(sr.b[sr.pos:])
	sr.pos += 8
	return v, nil
}

// bytes reads n raw bytes, copied so the result doesn't alias sr.b.
func (sr *sliceReader) bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, rlerr.InsufficientData{Context: "bytes: negative length", Need: n}
	}
	if err := sr.need(n, "bytes"); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, sr.b[sr.pos:sr.pos+n])
	sr.pos += n
	return out, nil
}

// str reads a §4.2-style length-prefixed string.
func (sr *sliceReader) str() (string, error) {
	s, rest, err := decodeLengthPrefixedString(sr.b[sr.pos:])
	if err != nil {
		return "", err
	}
	sr.pos = len(sr.b) - len(rest)
	return s, nil
}

// checkListLen validates a length-prefixed list's declared count against
// the minimum plausible per-element size and the bytes remaining (§5
// memory bounds: "table lengths must not exceed remaining bytes").
func (sr *sliceReader) checkListLen(field string, count int32, minElemSize int) error {
	if count < 0 {
		return rlerr.ListTooLarge{Field: field, Requested: int64(count), Remaining: int64(sr.remaining())}
	}
	need := int64(count) * int64(minElemSize)
	if need > int64(sr.remaining()) {
		return rlerr.ListTooLarge{Field: field, Requested: int64(count), Remaining: int64(sr.remaining())}
	}
	return nil
}
