// This file contains the Attribute tagged union (§3 "Attribute", Design
// Note §9 "Tagged attribute union"): one interface, ~50 concrete structs.
// The large variants are naturally heap-indirected because Attribute is an
// interface satisfied by pointer receivers for them — the same trick the
// teacher uses for repcmd.Cmd, where large command structs are boxed
// behind the interface and small ones still cost only a word-pair.

package rlattr

import "github.com/heatmap-gg/rlreplay/rlrep/rlcore"

// Attribute is satisfied by every decoded attribute value.
type Attribute interface {
	AttrKind() Kind
}

// ---- small, common variants (value types; cheap to box) ----

type Boolean bool

func (Boolean) AttrKind() Kind { return KindBoolean }

type Byte byte

func (Byte) AttrKind() Kind { return KindByte }

type Int int32

func (Int) AttrKind() Kind { return KindInt }

type Float float32

func (Float) AttrKind() Kind { return KindFloat }

type StringAttr string

func (StringAttr) AttrKind() Kind { return KindStringAttr }

// EnumAttr is a flagged short index into a game-specific enumeration
// (e.g. a team color index); the flag bit's meaning is patch-specific and
// preserved as-is rather than interpreted.
type EnumAttr struct {
	Value uint16
	Flag  bool
}

func (EnumAttr) AttrKind() Kind { return KindEnum }

// FlaggedInt is an int preceded by a presence/sign flag bit used by a
// handful of attributes (e.g. replicated timers).
type FlaggedInt struct {
	Flag  bool
	Value int32
}

func (FlaggedInt) AttrKind() Kind { return KindFlaggedInt }

// FlaggedByte is a byte preceded by a presence flag bit.
type FlaggedByte struct {
	Flag  bool
	Value byte
}

func (FlaggedByte) AttrKind() Kind { return KindFlaggedByte }

// ---- RigidBody (§4.5): the common pose attribute, dominates the union's stack footprint ----

type RigidBody struct {
	Sleeping bool
	Location rlcore.Vector3f
	Rotation rlcore.Quaternion

	// LinearVelocity / AngularVelocity are present only if !Sleeping.
	HasVelocity     bool
	LinearVelocity  rlcore.Vector3f
	AngularVelocity rlcore.Vector3f
}

func (*RigidBody) AttrKind() Kind { return KindRigidBody }

// RigidBodyState is a pre-RigidBody-rename variant kept for older replays
// whose object paths the registry maps separately (§4.6 version fan-out is
// usually handled inside one decoder, but a few early patches used a
// distinct property name entirely).
type RigidBodyState struct {
	RigidBody
}

func (*RigidBodyState) AttrKind() Kind { return KindRigidBodyState }

// ---- Loadout family ----

// LoadoutPiece is one equipped cosmetic item slot.
type LoadoutPiece struct {
	ObjectInd  int32
	PaintIndex int32
}

type Loadout struct {
	Version  byte
	Body     int32
	Decal    int32
	Wheels   int32
	RocketTrail int32
	Antenna  int32
	Topper   int32
	Unknown1 int32
	Engine   int32 // added in later patches; 0 if absent
	Pieces   []LoadoutPiece
}

func (*Loadout) AttrKind() Kind { return KindLoadout }

type Loadouts struct {
	Blue Loadout
	Red  Loadout
}

func (*Loadouts) AttrKind() Kind { return KindLoadouts }

// LoadoutOnlineItem is one online-only product instance (paint finish,
// certified stats) attached to a loadout slot.
type LoadoutOnlineItem struct {
	ObjectID   int32
	Attributes []LoadoutOnlineItemAttr
}

// LoadoutOnlineItemAttr is one "product attribute" on an online loadout
// item (e.g. a paint finish id or a certification value).
type LoadoutOnlineItemAttr struct {
	Index int32
	Value int32
}

type LoadoutOnline struct {
	Items []LoadoutOnlineItem
}

func (*LoadoutOnline) AttrKind() Kind { return KindLoadoutOnline }

type LoadoutsOnline struct {
	Blue LoadoutOnline
	Red  LoadoutOnline

	// Unknown1/Unknown2 preserve trailing fields whose meaning Design
	// Note §9 says not to guess at.
	Unknown1 bool
	Unknown2 bool
}

func (*LoadoutsOnline) AttrKind() Kind { return KindLoadoutsOnline }

// TeamLoadout pairs a blue/red Loadout the way TeamLoadout_TA objects
// replicate a match's two cosmetic presets together.
type TeamLoadout struct {
	Blue Loadout
	Red  Loadout
}

func (*TeamLoadout) AttrKind() Kind { return KindTeamLoadout }

// ---- Demolish ----

type Demolish struct {
	AttackerFlag  bool
	AttackerActor int32
	VictimFlag    bool
	VictimActor   int32
	AttackerVelocity rlcore.Vector3f
	VictimVelocity   rlcore.Vector3f
	DestroyedEventIndex int32
}

func (*Demolish) AttrKind() Kind { return KindDemolish }

// ---- Reservation / PartyLeader / PrivateMatch / CamSettings ----

type Reservation struct {
	Number    int32
	RemoteID  RemoteId
	LocalName string
	PlayerName string
	Unknown1  bool
	Unknown2  bool
	Unknown3  *byte
}

func (*Reservation) AttrKind() Kind { return KindReservation }

type PartyLeader struct {
	RemoteID RemoteId
	LocalName string
}

func (*PartyLeader) AttrKind() Kind { return KindPartyLeader }

type PrivateMatch struct {
	RemoteID RemoteId
}

func (*PrivateMatch) AttrKind() Kind { return KindPrivateMatch }

type CamSettings struct {
	FOV          float32
	Height       float32
	Angle        float32
	Distance     float32
	Stiffness    float32
	SwivelSpeed  float32
	TransitionSpeed float32 // absent on pre-transition-speed patches (0)
}

func (*CamSettings) AttrKind() Kind { return KindCamSettings }

// ---- damage / boost / pickups ----

type AppliedDamage struct {
	Index    byte
	Location rlcore.Vector3f
	Direction rlcore.Vector3f
	Damage   int32
	TotalHits int32
}

func (*AppliedDamage) AttrKind() Kind { return KindAppliedDamage }

type DamageState struct {
	DamageIndex    byte
	Direct         bool
	ActorID        int32
	Location       rlcore.Vector3f
	ApplyDamage    bool
	Damaged        bool
}

func (*DamageState) AttrKind() Kind { return KindDamageState }

type PlayerHistoryKey uint16

func (PlayerHistoryKey) AttrKind() Kind { return KindPlayerHistoryKey }

type ReplicatedBoost struct {
	Grant          byte
	BoostAmount    byte
	CountdownActive bool
	BoostActive    bool
}

func (*ReplicatedBoost) AttrKind() Kind { return KindReplicatedBoost }

type PickupInfo struct {
	InstigatorActor int32
	PickedUp        bool
	HasInstigator   bool
}

func (*PickupInfo) AttrKind() Kind { return KindPickupInfo }

type PickupNew struct {
	InstigatorActor int32
	PickedUp        byte
	HasInstigator   bool
}

func (*PickupNew) AttrKind() Kind { return KindPickupNew }

// ---- welds / explosions ----

type Weld struct {
	Active     bool
	ActorID    int32
	Offset     rlcore.Vector3f
	Mass       float32
	Rotation   rlcore.Rotation
}

func (*Weld) AttrKind() Kind { return KindWeld }

type WeldedInfo struct {
	Weld
	OffsetHasValue bool
}

func (*WeldedInfo) AttrKind() Kind { return KindWeldedInfo }

type ExplosionData struct {
	Flag     bool
	ActorID  int32
	Location rlcore.Vector3i
}

func (*ExplosionData) AttrKind() Kind { return KindExplosionData }

type ExtendedExplosionData struct {
	ExplosionData
	SecondaryActor int32
	SecondaryFlag  bool
}

func (*ExtendedExplosionData) AttrKind() Kind { return KindExtendedExplosionData }

// ---- metadata / scoreboard misc ----

type Title struct {
	Unknown1 bool
	Unknown2 bool
	Unknown3 byte
	Unknown4 byte
	Unknown5 bool
	Unknown6 bool
	TitleID  int32
}

func (*Title) AttrKind() Kind { return KindTitle }

type GameMode byte

func (GameMode) AttrKind() Kind { return KindGameMode }

type StatEvent struct {
	Unknown1 bool
	ObjectID int32
}

func (*StatEvent) AttrKind() Kind { return KindStatEvent }

type MusicStinger struct {
	Flag  bool
	Cue   uint32
	Track byte
}

func (*MusicStinger) AttrKind() Kind { return KindMusicStinger }

type ActiveActor struct {
	Active  bool
	ActorID int32
}

func (*ActiveActor) AttrKind() Kind { return KindActiveActor }

type Location struct {
	Value rlcore.Vector3i
}

func (*Location) AttrKind() Kind { return KindLocation }

type GameServerPlayerId string

func (GameServerPlayerId) AttrKind() Kind { return KindGameServerPlayerId }

type SteeringWheel struct {
	SteeringAmount float32
	UseSteeringAmount bool
}

func (*SteeringWheel) AttrKind() Kind { return KindSteeringWheel }

type RepStatTitle struct {
	Name    string
	Value   int32
}

func (*RepStatTitle) AttrKind() Kind { return KindRepStatTitle }

type FlaggedRepStatTitle struct {
	Flag  bool
	Title RepStatTitle
}

func (*FlaggedRepStatTitle) AttrKind() Kind { return KindFlaggedRepStatTitle }

type NetworkResult struct {
	Unknown1 int32
	Unknown2 int32
}

func (*NetworkResult) AttrKind() Kind { return KindNetworkResult }

type TeamBadge struct {
	UserID   rlcore.Uint64
	BadgeID  int32
}

func (*TeamBadge) AttrKind() Kind { return KindTeamBadge }

type GameTag uint32

func (GameTag) AttrKind() Kind { return KindGameTag }

type CarColor struct {
	TeamColorID  int32
	CustomColorID int32
	TeamFlag     bool
	CustomFlag   bool
}

func (*CarColor) AttrKind() Kind { return KindCarColor }

type Activated struct {
	Unknown1 int32
	Active   bool
}

func (*Activated) AttrKind() Kind { return KindActivated }

type VoiceComponentInfo struct {
	Unknown1 bool
	Unknown2 string
}

func (*VoiceComponentInfo) AttrKind() Kind { return KindVoiceComponentInfo }

type ClubColors struct {
	BlueFlag  bool
	BlueColor byte
	OrangeFlag bool
	OrangeColor byte
}

func (*ClubColors) AttrKind() Kind { return KindClubColors }
