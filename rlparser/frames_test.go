package rlparser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatmap-gg/rlreplay/rlparser/bitio"
	"github.com/heatmap-gg/rlreplay/rlrep"
	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// bitWriter packs bits in the exact order bitio.Reader consumes them (LSB
// of a multi-bit value read first), so tests can hand-assemble a network
// stream without depending on byte alignment.
type bitWriter struct {
	bits []bool
}

func (w *bitWriter) writeBit(b bool) { w.bits = append(w.bits, b) }

func (w *bitWriter) writeBits(v uint64, n int) {
	for i := 0; i < n; i++ {
		w.writeBit((v>>uint(i))&1 == 1)
	}
}

func (w *bitWriter) writeF32(f float32) {
	w.writeBits(uint64(math.Float32bits(f)), 32)
}

// writeI32Max mirrors bitio.Reader.ReadI32Max's bit consumption exactly:
// one bit per indicator <= maxAllowed, doubling each time.
func (w *bitWriter) writeI32Max(value, maxAllowed int32) {
	if maxAllowed <= 0 {
		return
	}
	maxU := uint32(maxAllowed)
	v := uint32(value)
	for indicator := uint32(1); indicator <= maxU; indicator <<= 1 {
		w.writeBit(v&indicator != 0)
	}
}

func (w *bitWriter) bytes() []byte {
	out := make([]byte, (len(w.bits)+7)/8)
	for i, b := range w.bits {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

func TestDecodeFramesAllZeroTerminates(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0)
	w.writeF32(0)

	cat := rlrep.NewCatalog(nil, nil)
	cat.Finalize()

	frames, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1, MaxChannels: 1})
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestDecodeFramesRejectsForgedNumFramesBeforeAllocating(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0)
	w.writeF32(0)

	cat := rlrep.NewCatalog(nil, nil)
	cat.Finalize()

	// A forged NumFrames decoded from an int32 header property wraps
	// negative (e.g. 4_000_000_000 -> a large negative value); this must
	// surface as ListTooLarge rather than panicking on a negative-capacity
	// make().
	_, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: -294967296, MaxChannels: 1})
	require.Error(t, err)
	var tooLarge rlerr.ListTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "NumFrames", tooLarge.Field)

	// A positive but absurd NumFrames relative to the actual stream size
	// must also be rejected before the frame slice is allocated.
	_, err = decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1_000_000_000, MaxChannels: 1})
	require.Error(t, err)
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "NumFrames", tooLarge.Field)
}

func TestDecodeFramesNoEvents(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.1)
	w.writeF32(0.1)
	w.writeBit(false) // no channel event

	cat := rlrep.NewCatalog(nil, nil)
	cat.Finalize()

	frames, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1, MaxChannels: 1})
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.InDelta(t, 0.1, frames[0].Time, 1e-6)
	assert.InDelta(t, 0.1, frames[0].Delta, 1e-6)
	assert.Empty(t, frames[0].NewActors)
}

func TestDecodeFramesSpawnsNewActor(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.1)
	w.writeF32(0.1)
	w.writeBit(true)        // has event
	w.writeI32Max(0, 1)     // actor_id = 0
	w.writeBit(true)        // active
	w.writeBit(true)        // new
	w.writeBit(false)       // unknown flag bit
	w.writeBits(0, 32)      // object_id = 0
	w.writeBit(false)       // end of channel events for this frame

	cat := rlrep.NewCatalog(nil, []string{"Some.Object_TA"})
	cat.Classes = []rlrep.ClassDeclaration{{ObjectID: 0, ClassID: 5}}
	cat.Finalize()

	frames, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1, MaxChannels: 1})
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Len(t, frames[0].NewActors, 1)
	assert.Equal(t, rlrep.ActorId(0), frames[0].NewActors[0].ActorID)
	assert.Equal(t, int32(0), frames[0].NewActors[0].ObjectID)
}

func TestDecodeFramesUpdateOnUnknownActorErrors(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.1)
	w.writeF32(0.1)
	w.writeBit(true)    // has event
	w.writeI32Max(0, 1) // actor_id = 0
	w.writeBit(true)    // active
	w.writeBit(false)   // not new -> update path

	cat := rlrep.NewCatalog(nil, nil)
	cat.Finalize()

	_, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1, MaxChannels: 1})
	require.Error(t, err)

	var notFound rlerr.UpdatedActorNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestDecodeFramesTimeOutOfRangeOnNegativeDelta(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(1.0)
	w.writeF32(-1.0) // negative delta is implausible

	cat := rlrep.NewCatalog(nil, nil)
	cat.Finalize()

	_, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1, MaxChannels: 1})
	require.Error(t, err)

	var outOfRange rlerr.TimeOutOfRange
	assert.ErrorAs(t, err, &outOfRange)
}

func TestDecodeFramesMaxStreamIdExceeded(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.1)
	w.writeF32(0.1)

	// spawn actor 0, object 0, class 5
	w.writeBit(true)
	w.writeI32Max(0, 1)
	w.writeBit(true)
	w.writeBit(true)
	w.writeBit(false) // unknown flag
	w.writeBits(0, 32)

	// update actor 0 with a stream id beyond the class's known max
	w.writeBit(true)
	w.writeI32Max(0, 1)
	w.writeBit(true)
	w.writeBit(false)   // update, not new
	w.writeI32Max(3, 2) // stream_id = 3, but max is 2

	cat := rlrep.NewCatalog(nil, []string{"Some.Object_TA"})
	cat.Classes = []rlrep.ClassDeclaration{{ObjectID: 0, ClassID: 5}}
	cat.NetCache = []rlrep.NetCacheClass{
		{ClassID: 5, CacheID: 10, ParentID: 0, ParentIndex: -1, Properties: map[int32]int32{1: 100, 2: 200}},
	}
	cat.Finalize()

	_, err := decodeFrames(bitio.New(w.bytes()), cat, frameDecodeConfig{NumFrames: 1, MaxChannels: 1})
	require.Error(t, err)

	var exceeded rlerr.MaxStreamIdExceeded
	assert.ErrorAs(t, err, &exceeded)
	assert.Equal(t, int32(3), exceeded.StreamID)
	assert.Equal(t, int32(2), exceeded.Max)
}
