// Package rlattr implements the attribute codec table (C6, §4.6): the
// static object-path -> Kind registry, the Attribute tagged union, and the
// per-kind decoders.
package rlattr

import "github.com/heatmap-gg/rlreplay/rlrep/rlcore"

// Kind tags which Attribute variant a given object path decodes to. It
// follows the teacher's small-fixed-vocabulary Enum pattern (repcore.Enum
// embedded in a typed struct). Every declared kind carries its name; the
// zero Kind that KindForObject returns with ok=false has an empty name,
// and an unrecognized path is a decode-time error, not a display-time one.
type Kind struct {
	rlcore.Enum
	id int
}

// ID returns the kind's small dense integer id, suitable for switch
// dispatch (Design Note §9: "a branch on a small tag, not indirect
// calls").
func (k Kind) ID() int { return k.id }

// The enumerated attribute kinds (§4.6, Design Note §9's named list).
// Declared as a package-level slice the same way the teacher declares
// Engines/Speeds, with named values for switch-readability.
var kinds = []Kind{
	{rlcore.Enum{Name: "Boolean"}, 0},
	{rlcore.Enum{Name: "Byte"}, 1},
	{rlcore.Enum{Name: "Int"}, 2},
	{rlcore.Enum{Name: "Float"}, 3},
	{rlcore.Enum{Name: "String"}, 4},
	{rlcore.Enum{Name: "Enum"}, 5}, // game enum: a flagged short index
	{rlcore.Enum{Name: "FlaggedInt"}, 6},
	{rlcore.Enum{Name: "FlaggedByte"}, 7},
	{rlcore.Enum{Name: "RigidBody"}, 8},
	{rlcore.Enum{Name: "Loadout"}, 9},
	{rlcore.Enum{Name: "Loadouts"}, 10},
	{rlcore.Enum{Name: "LoadoutOnline"}, 11},
	{rlcore.Enum{Name: "LoadoutsOnline"}, 12},
	{rlcore.Enum{Name: "TeamLoadout"}, 13},
	{rlcore.Enum{Name: "Demolish"}, 14},
	{rlcore.Enum{Name: "UniqueId"}, 15},
	{rlcore.Enum{Name: "Reservation"}, 16},
	{rlcore.Enum{Name: "PartyLeader"}, 17},
	{rlcore.Enum{Name: "PrivateMatch"}, 18},
	{rlcore.Enum{Name: "CamSettings"}, 19},
	{rlcore.Enum{Name: "AppliedDamage"}, 20},
	{rlcore.Enum{Name: "DamageState"}, 21},
	{rlcore.Enum{Name: "PlayerHistoryKey"}, 22},
	{rlcore.Enum{Name: "ReplicatedBoost"}, 23},
	{rlcore.Enum{Name: "PickupInfo"}, 24},
	{rlcore.Enum{Name: "PickupNew"}, 25},
	{rlcore.Enum{Name: "Weld"}, 26},
	{rlcore.Enum{Name: "WeldedInfo"}, 27},
	{rlcore.Enum{Name: "ExplosionData"}, 28},
	{rlcore.Enum{Name: "ExtendedExplosionData"}, 29},
	{rlcore.Enum{Name: "Title"}, 30},
	{rlcore.Enum{Name: "GameMode"}, 31},
	{rlcore.Enum{Name: "StatEvent"}, 32},
	{rlcore.Enum{Name: "MusicStinger"}, 33},
	{rlcore.Enum{Name: "ActiveActor"}, 34},
	{rlcore.Enum{Name: "RigidBodyState"}, 35},
	{rlcore.Enum{Name: "Location"}, 36},
	{rlcore.Enum{Name: "GameServerPlayerId"}, 37},
	{rlcore.Enum{Name: "SteeringWheel"}, 38},
	{rlcore.Enum{Name: "RepStatTitle"}, 39},
	{rlcore.Enum{Name: "FlaggedRepStatTitle"}, 40},
	{rlcore.Enum{Name: "NetworkResult"}, 41},
	{rlcore.Enum{Name: "TeamBadge"}, 42},
	{rlcore.Enum{Name: "GameTag"}, 43},
	{rlcore.Enum{Name: "CarColor"}, 44},
	{rlcore.Enum{Name: "Activated"}, 45},
	{rlcore.Enum{Name: "VoiceComponentInfo"}, 46},
	{rlcore.Enum{Name: "ClubColors"}, 47},
}

// Named kinds, for readable switch/registry code.
var (
	KindBoolean               = kinds[0]
	KindByte                  = kinds[1]
	KindInt                   = kinds[2]
	KindFloat                 = kinds[3]
	KindString                = kinds[4]
	KindEnum                  = kinds[5]
	KindFlaggedInt            = kinds[6]
	KindFlaggedByte           = kinds[7]
	KindRigidBody             = kinds[8]
	KindLoadout               = kinds[9]
	KindLoadouts              = kinds[10]
	KindLoadoutOnline         = kinds[11]
	KindLoadoutsOnline        = kinds[12]
	KindTeamLoadout           = kinds[13]
	KindDemolish              = kinds[14]
	KindUniqueId              = kinds[15]
	KindReservation           = kinds[16]
	KindPartyLeader           = kinds[17]
	KindPrivateMatch          = kinds[18]
	KindCamSettings           = kinds[19]
	KindAppliedDamage         = kinds[20]
	KindDamageState           = kinds[21]
	KindPlayerHistoryKey      = kinds[22]
	KindReplicatedBoost       = kinds[23]
	KindPickupInfo            = kinds[24]
	KindPickupNew             = kinds[25]
	KindWeld                  = kinds[26]
	KindWeldedInfo            = kinds[27]
	KindExplosionData         = kinds[28]
	KindExtendedExplosionData = kinds[29]
	KindTitle                 = kinds[30]
	KindGameMode              = kinds[31]
	KindStatEvent             = kinds[32]
	KindMusicStinger          = kinds[33]
	KindActiveActor           = kinds[34]
	KindRigidBodyState        = kinds[35]
	KindLocation              = kinds[36]
	KindGameServerPlayerId    = kinds[37]
	KindSteeringWheel         = kinds[38]
	KindRepStatTitle          = kinds[39]
	KindFlaggedRepStatTitle   = kinds[40]
	KindNetworkResult         = kinds[41]
	KindTeamBadge             = kinds[42]
	KindGameTag               = kinds[43]
	KindCarColor              = kinds[44]
	KindActivated             = kinds[45]
	KindVoiceComponentInfo    = kinds[46]
	KindClubColors            = kinds[47]
	KindStringAttr            = KindString
)
