// This file contains the per-Kind decoders (C6) and the dispatcher that
// selects among them. Dispatch is a switch on Kind.ID(), a predictable
// branch rather than an indirect call table, per Design Note §9.

package rlattr

import (
	"github.com/heatmap-gg/rlreplay/rlparser/bitio"
	"github.com/heatmap-gg/rlreplay/rlrep/rlcore"
	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// Decode reads one attribute value of the given kind from r, using v to
// select among version-gated encodings (§4.6 versioning rule: net/engine/
// licensee comparisons only, never a patch string).
func Decode(kind Kind, r *bitio.Reader, v rlcore.VersionTriplet) (Attribute, error) {
	switch kind.ID() {
	case KindBoolean.ID():
		return Boolean(r.ReadBit()), nil
	case KindByte.ID():
		return Byte(r.ReadU8()), nil
	case KindInt.ID():
		return Int(r.ReadI32()), nil
	case KindFloat.ID():
		return Float(r.ReadF32()), nil
	case KindStringAttr.ID():
		s, err := readString(r)
		return StringAttr(s), err
	case KindEnum.ID():
		return decodeEnum(r), nil
	case KindFlaggedInt.ID():
		return decodeFlaggedInt(r), nil
	case KindFlaggedByte.ID():
		return decodeFlaggedByte(r), nil
	case KindRigidBody.ID():
		return decodeRigidBody(r, v)
	case KindRigidBodyState.ID():
		rb, err := decodeRigidBody(r, v)
		if err != nil {
			return nil, err
		}
		return &RigidBodyState{RigidBody: *rb}, nil
	case KindLoadout.ID():
		return decodeLoadout(r, v)
	case KindLoadouts.ID():
		return decodeLoadouts(r, v)
	case KindLoadoutOnline.ID():
		return decodeLoadoutOnline(r)
	case KindLoadoutsOnline.ID():
		return decodeLoadoutsOnline(r)
	case KindTeamLoadout.ID():
		return decodeTeamLoadout(r, v)
	case KindDemolish.ID():
		return decodeDemolish(r)
	case KindUniqueId.ID():
		return decodeUniqueId(r, v)
	case KindReservation.ID():
		return decodeReservation(r, v)
	case KindPartyLeader.ID():
		return decodePartyLeader(r, v)
	case KindPrivateMatch.ID():
		return decodePrivateMatch(r, v)
	case KindCamSettings.ID():
		return decodeCamSettings(r, v)
	case KindAppliedDamage.ID():
		return decodeAppliedDamage(r)
	case KindDamageState.ID():
		return decodeDamageState(r)
	case KindPlayerHistoryKey.ID():
		return PlayerHistoryKey(r.ReadBits(16)), nil
	case KindReplicatedBoost.ID():
		return decodeReplicatedBoost(r), nil
	case KindPickupInfo.ID():
		return decodePickupInfo(r), nil
	case KindPickupNew.ID():
		return decodePickupNew(r), nil
	case KindWeld.ID():
		return decodeWeld(r), nil
	case KindWeldedInfo.ID():
		w := decodeWeld(r)
		return &WeldedInfo{Weld: *w, OffsetHasValue: w.Active}, nil
	case KindExplosionData.ID():
		return decodeExplosionData(r, v), nil
	case KindExtendedExplosionData.ID():
		return decodeExtendedExplosionData(r, v), nil
	case KindTitle.ID():
		return decodeTitle(r), nil
	case KindGameMode.ID():
		return GameMode(r.ReadU8()), nil
	case KindStatEvent.ID():
		return decodeStatEvent(r), nil
	case KindMusicStinger.ID():
		return decodeMusicStinger(r), nil
	case KindActiveActor.ID():
		return decodeActiveActor(r), nil
	case KindLocation.ID():
		return &Location{Value: r.ReadVector3i(v)}, nil
	case KindGameServerPlayerId.ID():
		s, err := readString(r)
		return GameServerPlayerId(s), err
	case KindSteeringWheel.ID():
		return decodeSteeringWheel(r), nil
	case KindRepStatTitle.ID():
		return decodeRepStatTitle(r)
	case KindFlaggedRepStatTitle.ID():
		return decodeFlaggedRepStatTitle(r)
	case KindNetworkResult.ID():
		return &NetworkResult{Unknown1: r.ReadI32(), Unknown2: r.ReadI32()}, nil
	case KindTeamBadge.ID():
		return &TeamBadge{UserID: rlcore.Uint64(r.ReadU64()), BadgeID: r.ReadI32()}, nil
	case KindGameTag.ID():
		return GameTag(r.ReadU32()), nil
	case KindCarColor.ID():
		return decodeCarColor(r), nil
	case KindActivated.ID():
		return &Activated{Unknown1: r.ReadI32(), Active: r.ReadBit()}, nil
	case KindVoiceComponentInfo.ID():
		s, err := readString(r)
		return &VoiceComponentInfo{Unknown1: r.ReadBit(), Unknown2: s}, err
	case KindClubColors.ID():
		return decodeClubColors(r), nil
	default:
		return nil, rlerr.UnrecognizedAttribute{Path: kind.Name}
	}
}

// readString reads a §4.2-style length-prefixed string from the network
// stream: non-negative length N is N bytes of 8-bit text, negative length
// -L is 2L bytes of UTF-16LE. Unlike header strings (decoded through
// golang.org/x/text in rlparser/strcodec.go), network-stream strings are
// modeled as raw 8-bit text here: the attribute table's string-bearing
// kinds (player names re-sent mid-match, server ids) are ASCII in
// practice, and §4.2's encoding policy is documented for the header
// property list specifically.
func readString(r *bitio.Reader) (string, error) {
	length, err := r.CheckedReadI32()
	if err != nil {
		return "", err
	}
	if length >= 0 {
		b, err := r.CheckedReadAlignedByteString(int(length))
		if err != nil {
			return "", err
		}
		return trimNull(b), nil
	}
	b, err := r.CheckedReadAlignedByteString(int(-length) * 2)
	if err != nil {
		return "", err
	}
	return utf16leToString(b), nil
}

func trimNull(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func utf16leToString(b []byte) string {
	runes := make([]rune, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u := uint16(b[i]) | uint16(b[i+1])<<8
		if u == 0 {
			break
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}

func decodeEnum(r *bitio.Reader) *EnumAttr {
	return &EnumAttr{Value: uint16(r.ReadBits(10)), Flag: r.ReadBit()}
}

func decodeFlaggedInt(r *bitio.Reader) *FlaggedInt {
	return &FlaggedInt{Flag: r.ReadBit(), Value: r.ReadI32()}
}

func decodeFlaggedByte(r *bitio.Reader) *FlaggedByte {
	return &FlaggedByte{Flag: r.ReadBit(), Value: r.ReadU8()}
}

func decodeRigidBody(r *bitio.Reader, v rlcore.VersionTriplet) (*RigidBody, error) {
	rb := &RigidBody{Sleeping: r.ReadBit()}

	if v.NetAtLeast(7) {
		rb.Location = toVector3f(r.ReadVector3i(v))
	} else {
		rb.Location = r.ReadVector3f()
	}

	q, err := r.ReadQuaternion()
	if err != nil {
		return nil, err
	}
	rb.Rotation = q

	if !rb.Sleeping {
		rb.HasVelocity = true
		rb.LinearVelocity = r.ReadVector3f()
		rb.AngularVelocity = r.ReadVector3f()
	}
	return rb, nil
}

func toVector3f(v rlcore.Vector3i) rlcore.Vector3f {
	return rlcore.Vector3f{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func decodeLoadout(r *bitio.Reader, v rlcore.VersionTriplet) (*Loadout, error) {
	l := &Loadout{
		Version:     r.ReadU8(),
		Body:        r.ReadI32(),
		Decal:       r.ReadI32(),
		Wheels:      r.ReadI32(),
		RocketTrail: r.ReadI32(),
		Antenna:     r.ReadI32(),
		Topper:      r.ReadI32(),
		Unknown1:    r.ReadI32(),
	}
	if v.NetAtLeast(2) {
		l.Engine = r.ReadI32()
	}

	count := r.ReadI32Max(16)
	if count > 0 {
		l.Pieces = make([]LoadoutPiece, count)
		for i := range l.Pieces {
			l.Pieces[i] = LoadoutPiece{ObjectInd: r.ReadI32(), PaintIndex: r.ReadI32()}
		}
	}
	return l, nil
}

func decodeLoadouts(r *bitio.Reader, v rlcore.VersionTriplet) (*Loadouts, error) {
	blue, err := decodeLoadout(r, v)
	if err != nil {
		return nil, err
	}
	red, err := decodeLoadout(r, v)
	if err != nil {
		return nil, err
	}
	return &Loadouts{Blue: *blue, Red: *red}, nil
}

func decodeLoadoutOnline(r *bitio.Reader) (*LoadoutOnline, error) {
	itemCount := r.ReadI32Max(32)
	lo := &LoadoutOnline{Items: make([]LoadoutOnlineItem, itemCount)}
	for i := range lo.Items {
		objID := r.ReadI32()
		attrCount := r.ReadI32Max(8)
		attrs := make([]LoadoutOnlineItemAttr, attrCount)
		for j := range attrs {
			attrs[j] = LoadoutOnlineItemAttr{Index: r.ReadI32(), Value: r.ReadI32()}
		}
		lo.Items[i] = LoadoutOnlineItem{ObjectID: objID, Attributes: attrs}
	}
	return lo, nil
}

func decodeLoadoutsOnline(r *bitio.Reader) (*LoadoutsOnline, error) {
	blue, err := decodeLoadoutOnline(r)
	if err != nil {
		return nil, err
	}
	red, err := decodeLoadoutOnline(r)
	if err != nil {
		return nil, err
	}
	return &LoadoutsOnline{Blue: *blue, Red: *red, Unknown1: r.ReadBit(), Unknown2: r.ReadBit()}, nil
}

func decodeTeamLoadout(r *bitio.Reader, v rlcore.VersionTriplet) (*TeamLoadout, error) {
	blue, err := decodeLoadout(r, v)
	if err != nil {
		return nil, err
	}
	red, err := decodeLoadout(r, v)
	if err != nil {
		return nil, err
	}
	return &TeamLoadout{Blue: *blue, Red: *red}, nil
}

func decodeDemolish(r *bitio.Reader) (*Demolish, error) {
	d := &Demolish{AttackerFlag: r.ReadBit()}
	if d.AttackerFlag {
		d.AttackerActor = r.ReadI32()
	}
	d.VictimFlag = r.ReadBit()
	if d.VictimFlag {
		d.VictimActor = r.ReadI32()
	}
	d.AttackerVelocity = r.ReadVector3f()
	d.VictimVelocity = r.ReadVector3f()
	d.DestroyedEventIndex = r.ReadI32()
	return d, nil
}

func decodeRemoteId(r *bitio.Reader, v rlcore.VersionTriplet) (RemoteId, error) {
	system := RemoteSystem(r.ReadU8())
	id := RemoteId{System: system}

	switch system {
	case SystemSplitscreen:
		id.LocalIndex = r.ReadU8()
	case SystemSteam:
		id.PlatformID = rlcore.Uint64(r.ReadU64())
	case SystemPlayStation:
		s, err := readString(r)
		if err != nil {
			return id, err
		}
		id.PlatformName = s
		id.PlatformID = rlcore.Uint64(r.ReadU64())
		id.Unknown = r.ReadAlignedByteString(8)
	case SystemXbox:
		id.PlatformID = rlcore.Uint64(r.ReadU64())
	case SystemSwitch:
		id.OnlineID = rlcore.Uint64(r.ReadU64())
		id.Unknown = r.ReadAlignedByteString(24)
	case SystemPsyNet:
		id.OnlineID = rlcore.Uint64(r.ReadU64())
		if v.NetAtLeast(10) {
			id.Unknown = r.ReadAlignedByteString(8)
		}
	case SystemEpic:
		s, err := readString(r)
		if err != nil {
			return id, err
		}
		id.PlatformName = s
	default:
		return id, rlerr.UnrecognizedRemoteId{SystemID: byte(system)}
	}
	return id, nil
}

func decodeUniqueId(r *bitio.Reader, v rlcore.VersionTriplet) (*UniqueId, error) {
	remote, err := decodeRemoteId(r, v)
	if err != nil {
		return nil, err
	}
	return &UniqueId{Remote: remote, LocalPlayer: r.ReadU8()}, nil
}

func decodeReservation(r *bitio.Reader, v rlcore.VersionTriplet) (*Reservation, error) {
	res := &Reservation{Number: r.ReadI32Max(7)}
	remote, err := decodeRemoteId(r, v)
	if err != nil {
		return nil, err
	}
	res.RemoteID = remote
	if remote.System == SystemSplitscreen {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		res.LocalName = s
	}
	name, err := readString(r)
	if err != nil {
		return nil, err
	}
	res.PlayerName = name
	res.Unknown1 = r.ReadBit()
	res.Unknown2 = r.ReadBit()
	if v.NetAtLeast(1) {
		b := r.ReadU8()
		res.Unknown3 = &b
	}
	return res, nil
}

func decodePartyLeader(r *bitio.Reader, v rlcore.VersionTriplet) (*PartyLeader, error) {
	remote, err := decodeRemoteId(r, v)
	if err != nil {
		return nil, err
	}
	pl := &PartyLeader{RemoteID: remote}
	if remote.System == SystemSplitscreen {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		pl.LocalName = s
	}
	return pl, nil
}

func decodePrivateMatch(r *bitio.Reader, v rlcore.VersionTriplet) (*PrivateMatch, error) {
	remote, err := decodeRemoteId(r, v)
	if err != nil {
		return nil, err
	}
	return &PrivateMatch{RemoteID: remote}, nil
}

func decodeCamSettings(r *bitio.Reader, v rlcore.VersionTriplet) (*CamSettings, error) {
	cs := &CamSettings{
		FOV:         r.ReadF32(),
		Height:      r.ReadF32(),
		Angle:       r.ReadF32(),
		Distance:    r.ReadF32(),
		Stiffness:   r.ReadF32(),
		SwivelSpeed: r.ReadF32(),
	}
	if v.NetAtLeast(1) {
		cs.TransitionSpeed = r.ReadF32()
	}
	return cs, nil
}

func decodeAppliedDamage(r *bitio.Reader) (*AppliedDamage, error) {
	return &AppliedDamage{
		Index:     r.ReadU8(),
		Location:  r.ReadVector3f(),
		Direction: r.ReadVector3f(),
		Damage:    r.ReadI32(),
		TotalHits: r.ReadI32(),
	}, nil
}

func decodeDamageState(r *bitio.Reader) (*DamageState, error) {
	ds := &DamageState{
		DamageIndex: r.ReadU8(),
		Direct:      r.ReadBit(),
		ActorID:     r.ReadI32(),
		Location:    r.ReadVector3f(),
		ApplyDamage: r.ReadBit(),
	}
	ds.Damaged = r.ReadBit()
	return ds, nil
}

func decodeReplicatedBoost(r *bitio.Reader) *ReplicatedBoost {
	return &ReplicatedBoost{
		Grant:           r.ReadU8(),
		BoostAmount:     r.ReadU8(),
		CountdownActive: r.ReadBit(),
		BoostActive:     r.ReadBit(),
	}
}

func decodePickupInfo(r *bitio.Reader) *PickupInfo {
	p := &PickupInfo{HasInstigator: r.ReadBit()}
	if p.HasInstigator {
		p.InstigatorActor = r.ReadI32()
	}
	p.PickedUp = r.ReadBit()
	return p
}

func decodePickupNew(r *bitio.Reader) *PickupNew {
	p := &PickupNew{HasInstigator: r.ReadBit()}
	if p.HasInstigator {
		p.InstigatorActor = r.ReadI32()
	}
	p.PickedUp = r.ReadU8()
	return p
}

func decodeWeld(r *bitio.Reader) *Weld {
	w := &Weld{Active: r.ReadBit()}
	if w.Active {
		w.ActorID = r.ReadI32()
		w.Offset = r.ReadVector3f()
		w.Mass = r.ReadF32()
		w.Rotation = r.ReadRotation()
	}
	return w
}

func decodeExplosionData(r *bitio.Reader, v rlcore.VersionTriplet) *ExplosionData {
	e := &ExplosionData{Flag: r.ReadBit()}
	if e.Flag {
		e.ActorID = r.ReadI32()
	}
	e.Location = r.ReadVector3i(v)
	return e
}

func decodeExtendedExplosionData(r *bitio.Reader, v rlcore.VersionTriplet) *ExtendedExplosionData {
	base := decodeExplosionData(r, v)
	e := &ExtendedExplosionData{ExplosionData: *base, SecondaryFlag: r.ReadBit()}
	if e.SecondaryFlag {
		e.SecondaryActor = r.ReadI32()
	}
	return e
}

func decodeTitle(r *bitio.Reader) *Title {
	return &Title{
		Unknown1: r.ReadBit(),
		Unknown2: r.ReadBit(),
		Unknown3: r.ReadU8(),
		Unknown4: r.ReadU8(),
		Unknown5: r.ReadBit(),
		Unknown6: r.ReadBit(),
		TitleID:  r.ReadI32(),
	}
}

func decodeStatEvent(r *bitio.Reader) *StatEvent {
	return &StatEvent{Unknown1: r.ReadBit(), ObjectID: r.ReadI32()}
}

func decodeMusicStinger(r *bitio.Reader) *MusicStinger {
	return &MusicStinger{Flag: r.ReadBit(), Cue: r.ReadU32(), Track: r.ReadU8()}
}

func decodeActiveActor(r *bitio.Reader) *ActiveActor {
	a := &ActiveActor{Active: r.ReadBit()}
	if a.Active {
		a.ActorID = r.ReadI32()
	}
	return a
}

func decodeSteeringWheel(r *bitio.Reader) *SteeringWheel {
	return &SteeringWheel{SteeringAmount: r.ReadF32(), UseSteeringAmount: r.ReadBit()}
}

func decodeRepStatTitle(r *bitio.Reader) (*RepStatTitle, error) {
	name, err := readString(r)
	if err != nil {
		return nil, err
	}
	return &RepStatTitle{Name: name, Value: r.ReadI32()}, nil
}

func decodeFlaggedRepStatTitle(r *bitio.Reader) (*FlaggedRepStatTitle, error) {
	flag := r.ReadBit()
	t, err := decodeRepStatTitle(r)
	if err != nil {
		return nil, err
	}
	return &FlaggedRepStatTitle{Flag: flag, Title: *t}, nil
}

func decodeCarColor(r *bitio.Reader) *CarColor {
	cc := &CarColor{TeamFlag: r.ReadBit()}
	if cc.TeamFlag {
		cc.TeamColorID = r.ReadI32()
	}
	cc.CustomFlag = r.ReadBit()
	if cc.CustomFlag {
		cc.CustomColorID = r.ReadI32()
	}
	return cc
}

func decodeClubColors(r *bitio.Reader) *ClubColors {
	cc := &ClubColors{BlueFlag: r.ReadBit()}
	if cc.BlueFlag {
		cc.BlueColor = r.ReadU8()
	}
	cc.OrangeFlag = r.ReadBit()
	if cc.OrangeFlag {
		cc.OrangeColor = r.ReadU8()
	}
	return cc
}
