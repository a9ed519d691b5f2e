// This file contains the Replay aggregate (§6 "Output"): the structural
// value a successful decode produces, plus the convenience accessors
// (Frames, NumFrames, ActorHistory, ID) a complete implementation's
// natural surface adds over the raw tables.

package rlrep

import (
	"github.com/google/uuid"
)

// Keyframe is one entry of the body's keyframes table (§4.3 step 2).
type Keyframe struct {
	Time     float32
	Frame    int32
	Position int32
}

// DebugLogEntry is one entry of the body's debug_log table (§4.3 step 4).
type DebugLogEntry struct {
	Frame int32
	User  string
	Text  string
}

// TickMark is one entry of the body's tick_marks table (§4.3 step 5).
type TickMark struct {
	Description string
	Frame       int32
}

// Replay is the aggregate output of a successful decode (§6).
type Replay struct {
	Header Header

	Levels     []string
	Keyframes  []Keyframe
	DebugLog   []DebugLogEntry
	TickMarks  []TickMark
	Packages   []string
	Objects    []string
	Names      []string
	ClassIndex []ClassDeclaration
	NetCache   []NetCacheClass

	// Catalog is the read-only lookup table set built from ClassIndex and
	// NetCache (C5). Shared by reference with the frame sequence below.
	Catalog *Catalog

	// frames is unexported: network_policy=Never leaves it nil, and the
	// zero value must not be mistaken for "zero frames decoded" by callers
	// poking at the field directly (NumFrames/Frames below are the
	// supported surface for exactly that reason).
	frames []Frame
}

// SetFrames attaches the decoded frame sequence. Called once by the
// assembler after C7 completes; not meant for general mutation.
func (r *Replay) SetFrames(frames []Frame) {
	r.frames = frames
}

// Frames returns the decoded frame sequence, or nil if network decoding
// was skipped (network_policy=Never) or failed under
// network_policy=IgnoreOnError.
func (r *Replay) Frames() []Frame {
	return r.frames
}

// NumFrames returns len(Frames()), a convenience over re-deriving it from
// the header's NumFrames property (which may differ from the actually
// decoded count under an early-termination marker, §4.4).
func (r *Replay) NumFrames() int {
	return len(r.frames)
}

// ActorEvent is one entry of an actor's reconstructed lifecycle, produced
// by ActorHistory.
type ActorEvent struct {
	FrameIndex int
	Spawned    *NewActor
	Updated    *UpdatedAttribute
	Destroyed  bool
}

// ActorHistory replays the frame sequence once to reconstruct one actor's
// full spawn/update/destroy timeline — the natural "show me this entity's
// whole match" query once Frame/NewActor/UpdatedAttribute/ActorId exist at
// all (§3).
func (r *Replay) ActorHistory(actorID int32) []ActorEvent {
	var events []ActorEvent
	id := ActorId(actorID)

	for i, f := range r.frames {
		for _, na := range f.NewActors {
			if na.ActorID == id {
				na := na
				events = append(events, ActorEvent{FrameIndex: i, Spawned: &na})
			}
		}
		for _, upd := range f.UpdatedActors {
			if upd.ActorID == id {
				upd := upd
				events = append(events, ActorEvent{FrameIndex: i, Updated: &upd})
			}
		}
		for _, del := range f.DeletedActors {
			if del == id {
				events = append(events, ActorEvent{FrameIndex: i, Destroyed: true})
			}
		}
	}
	return events
}

// replayNamespace is an arbitrary fixed namespace UUID used to derive a
// stable, content-based replay id (RFC 4122 §4.3 "name-based" style): any
// fixed value works as long as it's consistent across runs, which this
// one, declared once here, is.
var replayNamespace = uuid.MustParse("6f6e8f1a-2b3c-4d5e-9f10-abcdef012345")

// ID returns a deterministic identifier derived from the header's game type
// and property names (property values are not included) via SHA-1
// (uuid.NewSHA1), not randomly generated — decoding the
// same replay twice (§8 determinism invariant) yields the same ID.
func (r *Replay) ID() uuid.UUID {
	var content []byte
	content = append(content, r.Header.GameType...)
	for _, p := range r.Header.Properties {
		content = append(content, p.Name...)
	}
	return uuid.NewSHA1(replayNamespace, content)
}
