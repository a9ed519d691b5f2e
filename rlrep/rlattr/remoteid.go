// This file contains RemoteId (§4.5 UniqueId), a tagged union over the seven
// platform identifier systems the game supports, plus the UniqueId
// attribute itself which wraps one with a trailing LocalPlayer byte.

package rlattr

import "github.com/heatmap-gg/rlreplay/rlrep/rlcore"

// RemoteSystem identifies which platform issued a RemoteId.
type RemoteSystem byte

const (
	SystemSplitscreen RemoteSystem = 0
	SystemSteam       RemoteSystem = 1
	SystemPlayStation RemoteSystem = 2
	SystemXbox        RemoteSystem = 4
	SystemSwitch      RemoteSystem = 6
	SystemPsyNet      RemoteSystem = 7
	SystemEpic        RemoteSystem = 11
)

func (s RemoteSystem) String() string {
	switch s {
	case SystemSplitscreen:
		return "Splitscreen"
	case SystemSteam:
		return "Steam"
	case SystemPlayStation:
		return "PlayStation"
	case SystemXbox:
		return "Xbox"
	case SystemSwitch:
		return "Switch"
	case SystemPsyNet:
		return "PsyNet"
	case SystemEpic:
		return "Epic"
	default:
		return "Unknown"
	}
}

// RemoteId is the decoded identifier for one of the seven platform systems
// (§4.5). Only the field(s) relevant to System are populated.
type RemoteId struct {
	System RemoteSystem

	// Splitscreen: a local player index, no further data.
	LocalIndex byte

	// Steam / PlayStation / Xbox: a 64-bit platform id.
	PlatformID rlcore.Uint64

	// PlayStation / Epic: an opaque platform-specific name string (Epic
	// carries only this).
	PlatformName string

	// Switch / PsyNet: a 64-bit online id. Unknown holds opaque trailing
	// bytes whose layout is platform-private (preserved verbatim, not
	// interpreted, per Design Note §9): 24 for Switch, 8 for PsyNet when
	// the net version is at least 10, and 8 for PlayStation.
	OnlineID rlcore.Uint64
	Unknown  []byte
}

// UniqueId is the attribute wrapping a RemoteId with the trailing
// LocalPlayer byte every system carries (§4.5).
type UniqueId struct {
	Remote      RemoteId
	LocalPlayer byte
}

func (*UniqueId) AttrKind() Kind { return KindUniqueId }
