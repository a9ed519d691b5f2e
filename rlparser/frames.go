// This file implements the frame decoder (C7, §4.4): the per-tick loop
// over actor-channel events, new-actor initialization, and the
// stream-id-bounded update path.

package rlparser

import (
	"math"

	"github.com/heatmap-gg/rlreplay/rlparser/bitio"
	"github.com/heatmap-gg/rlreplay/rlrep"
	"github.com/heatmap-gg/rlreplay/rlrep/rlattr"
	"github.com/heatmap-gg/rlreplay/rlrep/rlcore"
	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// maxFrameDelta bounds the plausible per-frame time step (§4.4 step 1):
// replays tick near 1/30s; allow generous headroom for hitches without
// accepting corrupt data as a multi-minute "frame".
const maxFrameDelta = 2.0

// hasLocationClasses / hasRotationClasses name the actor classes whose
// spawn record carries an initial Vector3i / Rotation (§4.4 "new actor").
// Matched against the class-root object path's final path component, since
// spawn records reference a class's root object directly.
var hasLocationClasses = map[string]bool{
	"Ball_TA":                     true,
	"Ball_Breakout_TA":            true,
	"Car_TA":                      true,
	"Car_Season_TA":               true,
	"CarComponent_Boost_TA":       true,
	"CarComponent_Dodge_TA":       true,
	"CarComponent_DoubleJump_TA":  true,
	"CarComponent_FlipCar_TA":     true,
	"CarComponent_Jump_TA":        true,
	"VehiclePickup_Boost_TA":      true,
	"GameEvent_Soccar_TA":         true,
	"GameEvent_SoccarPrivate_TA":  true,
	"GameEvent_SoccarSplitscreen": true,
	"GameEvent_Team_TA":           true,
	"SpecialPickup_BallVelcro_TA": true,
	"SpecialPickup_Rugby_TA":      true,
}

var hasRotationClasses = map[string]bool{
	"Ball_TA":           true,
	"Ball_Breakout_TA":  true,
	"Car_TA":            true,
	"Car_Season_TA":     true,
	"CarComponent_FlipCar_TA": true,
}

func classBaseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}

// actorState is the open-channel bookkeeping the update path looks up by
// actor id (§4.4 "Update").
type actorState struct {
	objectID int32
	classID  int32
}

// frameTrace is a bounded ring buffer of the last decoded frames, attached
// to decode errors (§9 "Error trace").
type frameTrace struct {
	frames [16]rlrep.Frame
	count  int
	next   int
}

func (t *frameTrace) push(f rlrep.Frame) {
	t.frames[t.next] = f
	t.next = (t.next + 1) % len(t.frames)
	if t.count < len(t.frames) {
		t.count++
	}
}

// recent returns the traced frames in chronological order.
func (t *frameTrace) recent() []rlrep.Frame {
	out := make([]rlrep.Frame, t.count)
	start := (t.next - t.count + len(t.frames)) % len(t.frames)
	for i := 0; i < t.count; i++ {
		out[i] = t.frames[(start+i)%len(t.frames)]
	}
	return out
}

// DecodeError wraps a frame-decode failure with the diagnostic context §9
// calls for: the frame trace, and the actor/stream-id/kind under decode.
type DecodeError struct {
	Err      error
	Trace    []rlrep.Frame
	ActorID  int32
	StreamID int32
	Kind     string
}

func (e *DecodeError) Error() string { return e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// frameDecodeConfig carries the header-derived constants C7 needs (§4.4).
type frameDecodeConfig struct {
	Version     rlcore.VersionTriplet
	MaxChannels int32
	NumFrames   int32
}

// minFrameBits is the cheapest possible frame: just the (time, delta)
// float pair with no channel events. Used to cap the untrusted NumFrames
// header property against the network stream actually available (§5, §8
// scenario 5) before it is used as a slice capacity.
const minFrameBits = 64

// decodeFrames decodes the network stream into an ordered frame sequence
// (§4.4). It stops after cfg.NumFrames frames or an early all-zero
// (time, delta) terminator, whichever comes first.
func decodeFrames(r *bitio.Reader, cat *rlrep.Catalog, cfg frameDecodeConfig) ([]rlrep.Frame, error) {
	if cfg.NumFrames < 0 || int64(cfg.NumFrames)*minFrameBits > r.RemainingBits() {
		return nil, rlerr.ListTooLarge{
			Field:     "NumFrames",
			Requested: int64(cfg.NumFrames),
			Remaining: r.RemainingBits() / 8,
		}
	}

	actors := make(map[int32]*actorState)
	frames := make([]rlrep.Frame, 0, cfg.NumFrames)
	var trace frameTrace
	var prevTime float32

	for int32(len(frames)) < cfg.NumFrames {
		time, err := r.CheckedReadF32()
		if err != nil {
			return frames, wrapDecodeErr(err, &trace, 0, 0, "")
		}
		delta, err := r.CheckedReadF32()
		if err != nil {
			return frames, wrapDecodeErr(err, &trace, 0, 0, "")
		}
		if time == 0 && delta == 0 {
			break
		}
		if math.IsNaN(float64(time)) || math.IsInf(float64(time), 0) ||
			math.IsNaN(float64(delta)) || math.IsInf(float64(delta), 0) ||
			time < prevTime || delta < 0 || delta > maxFrameDelta {
			err := rlerr.TimeOutOfRange{Frame: len(frames), Time: time, Delta: delta}
			return frames, wrapDecodeErr(err, &trace, 0, 0, "")
		}
		prevTime = time

		frame := rlrep.Frame{Time: time, Delta: delta}

		for {
			hasEvent, err := r.CheckedReadBit()
			if err != nil {
				return frames, wrapDecodeErr(err, &trace, 0, 0, "")
			}
			if !hasEvent {
				break
			}

			actorID, err := r.CheckedReadI32Max(cfg.MaxChannels)
			if err != nil {
				return frames, wrapDecodeErr(err, &trace, 0, 0, "")
			}

			active, err := r.CheckedReadBit()
			if err != nil {
				return frames, wrapDecodeErr(err, &trace, int32(actorID), 0, "")
			}
			if !active {
				delete(actors, int32(actorID))
				frame.DeletedActors = append(frame.DeletedActors, rlrep.ActorId(actorID))
				continue
			}

			isNew, err := r.CheckedReadBit()
			if err != nil {
				return frames, wrapDecodeErr(err, &trace, int32(actorID), 0, "")
			}
			if isNew {
				na, st, err := decodeNewActor(r, cat, cfg.Version, int32(actorID))
				if err != nil {
					return frames, wrapDecodeErr(err, &trace, int32(actorID), 0, "")
				}
				actors[int32(actorID)] = st
				frame.NewActors = append(frame.NewActors, na)
				continue
			}

			upd, kindName, err := decodeUpdate(r, cat, cfg.Version, actors, int32(actorID))
			if err != nil {
				return frames, wrapDecodeErr(err, &trace, int32(actorID), upd.StreamID, kindName)
			}
			frame.UpdatedActors = append(frame.UpdatedActors, upd)
		}

		frames = append(frames, frame)
		trace.push(frame)
	}

	r.AlignToByte()
	return frames, nil
}

func wrapDecodeErr(err error, trace *frameTrace, actorID, streamID int32, kind string) error {
	return &DecodeError{Err: err, Trace: trace.recent(), ActorID: actorID, StreamID: streamID, Kind: kind}
}

func decodeNewActor(r *bitio.Reader, cat *rlrep.Catalog, v rlcore.VersionTriplet, actorID int32) (rlrep.NewActor, *actorState, error) {
	na := rlrep.NewActor{ActorID: rlrep.ActorId(actorID)}

	if v.NetAtLeast(18) {
		nameID, err := r.CheckedReadI32()
		if err != nil {
			return na, nil, err
		}
		na.NameID = &nameID
	}

	// "unknown flag": discarded, semantics unconfirmed (§9 open question).
	if _, err := r.CheckedReadBit(); err != nil {
		return na, nil, err
	}

	objectID, err := r.CheckedReadI32()
	if err != nil {
		return na, nil, err
	}
	na.ObjectID = objectID

	classID, ok := cat.ClassIDForObject(objectID)
	if !ok {
		return na, nil, rlerr.UnrecognizedAttribute{ObjectID: objectID, Path: cat.ObjectName(objectID)}
	}

	base := classBaseName(cat.ObjectName(objectID))
	if hasLocationClasses[base] {
		loc := r.ReadVector3i(v)
		na.Initial.Location = &loc
	}
	if hasRotationClasses[base] {
		rot := r.ReadRotation()
		na.Initial.Rotation = &rot
	}

	return na, &actorState{objectID: objectID, classID: classID}, nil
}

// decodeUpdate also returns the name of the attribute kind it resolved,
// or "" when it failed before the kind was known.
func decodeUpdate(r *bitio.Reader, cat *rlrep.Catalog, v rlcore.VersionTriplet, actors map[int32]*actorState, actorID int32) (rlrep.UpdatedAttribute, string, error) {
	upd := rlrep.UpdatedAttribute{ActorID: rlrep.ActorId(actorID)}

	st, ok := actors[actorID]
	if !ok {
		return upd, "", rlerr.UpdatedActorNotFound{ActorID: actorID}
	}

	maxStreamID, ok := cat.MaxStreamID(st.classID)
	if !ok {
		maxStreamID = 0
	}
	streamID, err := r.CheckedReadI32Max(maxStreamID)
	if err != nil {
		return upd, "", err
	}
	upd.StreamID = streamID

	if streamID > maxStreamID {
		return upd, "", rlerr.MaxStreamIdExceeded{ClassID: st.classID, StreamID: streamID, Max: maxStreamID}
	}

	objectID, ok := cat.ResolveProperty(st.classID, streamID)
	if !ok {
		return upd, "", rlerr.MaxStreamIdExceeded{ClassID: st.classID, StreamID: streamID, Max: maxStreamID}
	}
	upd.ObjectID = objectID

	kind, ok := cat.AttributeKind(objectID)
	if !ok {
		return upd, "", rlerr.UnrecognizedAttribute{ObjectID: objectID, Path: cat.ObjectName(objectID)}
	}

	attr, err := rlattr.Decode(kind, r, v)
	if err != nil {
		return upd, kind.Name, err
	}
	upd.Attribute = attr

	return upd, kind.Name, nil
}
