// This file contains the network-stream data model produced by C7 (§3
// "Stream entities"): frames, actor lifecycle events, and the attribute
// values they carry.

package rlrep

import (
	"github.com/heatmap-gg/rlreplay/rlrep/rlattr"
	"github.com/heatmap-gg/rlreplay/rlrep/rlcore"
)

// ActorId is the 32-bit id the game assigns an actor for its channel
// lifetime.
type ActorId int32

// Trajectory is a new actor's initial position/orientation, each
// component present only if the actor's class carries it (§4.4).
type Trajectory struct {
	Location *rlcore.Vector3i
	Rotation *rlcore.Rotation
}

// NewActor records an actor spawn.
type NewActor struct {
	ActorID ActorId

	// NameID is present only when net_version >= 18.
	NameID *int32

	ObjectID int32

	Initial Trajectory
}

// UpdatedAttribute records one property update on an already-open actor.
type UpdatedAttribute struct {
	ActorID  ActorId
	StreamID int32

	// ObjectID is resolved from StreamID via the catalog at decode time
	// (§3 invariant: it must equal the class's cumulative property table
	// entry for StreamID).
	ObjectID int32

	Attribute rlattr.Attribute
}

// Frame is one tick's worth of actor lifecycle events (§3).
type Frame struct {
	// Time is the cumulative, monotonically non-decreasing stream clock.
	Time float32

	// Delta is Time - previous frame's Time (within tolerance).
	Delta float32

	NewActors     []NewActor
	UpdatedActors []UpdatedAttribute
	DeletedActors []ActorId
}
