// This file contains the object-path -> Kind registry (C6): a static table
// built once, grounded on the same flat-map-over-struct-literal style the
// teacher uses for its command opcode table. Lookup is two-stage: try the
// exact replicated-object path first, then fall back to the property name
// after the last ':' — most attribute kinds are determined entirely by the
// property's own name regardless of which class owns it.

package rlattr

// byExactPath covers the handful of objects whose attribute kind can't be
// inferred from the property name alone (names reused across unrelated
// concepts in different classes).
var byExactPath = map[string]Kind{
	"TAGame.RBActor_TA:ReplicatedRBState":                 KindRigidBody,
	"TAGame.Ball_TA:ReplicatedHitTeamNum":                 KindByte,
	"TAGame.PRI_TA:ReplicatedGameEvent":                    KindActiveActor,
	"ProjectX.GRI_X:ReplicatedGameMutatorIndex":            KindInt,
}

// byPropertyName covers the common case: the property name alone
// determines the attribute's wire shape, independent of owning class.
var byPropertyName = map[string]Kind{
	"ReplicatedRBState":                KindRigidBody,
	"ReplicatedRigidBodyState":         KindRigidBodyState,
	"Location":                         KindLocation,
	"ReplicatedLoadoutData":            KindLoadout,
	"ReplicatedLoadoutsData":           KindLoadouts,
	"ReplicatedLoadoutOnlineData":      KindLoadoutOnline,
	"ReplicatedLoadoutsOnlineData":     KindLoadoutsOnline,
	"ReplicatedTeamLoadoutData":        KindTeamLoadout,
	"ReplicatedDemolish":               KindDemolish,
	"ReplicatedDemolishGoalExplosion":  KindDemolish,
	"UniqueId":                         KindUniqueId,
	"PlayerID":                         KindUniqueId,
	"PartyLeader":                      KindPartyLeader,
	"ReservationID":                    KindReservation,
	"MatchSettings":                    KindPrivateMatch,
	"ProfileCameraSettings":            KindCamSettings,
	"ReplicatedAppliedDamage":          KindAppliedDamage,
	"ReplicatedDamageState":            KindDamageState,
	"MatchHistoryKey":                  KindPlayerHistoryKey,
	"ReplicatedBoostAmount":            KindReplicatedBoost,
	"ReplicatedPickup":                 KindPickupInfo,
	"NewReplicatedPickup":              KindPickupNew,
	"ReplicatedWeldedInfo":             KindWeldedInfo,
	"WeldedTo":                         KindWeld,
	"ReplicatedExplosionData":          KindExplosionData,
	"ReplicatedExplosionDataExtended":  KindExtendedExplosionData,
	"Title":                            KindTitle,
	"ReplicatedGameMutatorIndex":       KindGameMode,
	"StatEvent":                        KindStatEvent,
	"ReplicatedMusicStinger":           KindMusicStinger,
	"ReplicatedGameEvent":              KindActiveActor,
	"GameServerID":                     KindGameServerPlayerId,
	"ReplicatedSteeringWheel":          KindSteeringWheel,
	"RepStatTitle":                     KindRepStatTitle,
	"bMatchesRepStatTitle":             KindFlaggedRepStatTitle,
	"MatchEndedNetworkResult":          KindNetworkResult,
	"ClubID":                           KindTeamBadge,
	"GameTag":                          KindGameTag,
	"ReplicatedCarScale":               KindFloat,
	"CustomCarColor":                   KindCarColor,
	"bActivated":                       KindActivated,
	"ReplicatedVoiceComponentInfo":     KindVoiceComponentInfo,
	"ReplicatedClubColors":             KindClubColors,
	"ReplicatedOwnerTeamColor":         KindByte,
	"PlayerName":                       KindStringAttr,
	"PlayerFlags":                      KindFlaggedInt,
}

// KindForObject resolves the attribute Kind for a replicated object path
// such as "TAGame.Car_TA:Location" (§4.6). The second return is false
// when neither stage of the lookup matches, signalling an unrecognized
// attribute (rlerr.UnrecognizedAttribute at the caller).
func KindForObject(path string) (Kind, bool) {
	if k, ok := byExactPath[path]; ok {
		return k, true
	}
	name := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == ':' {
			name = path[i+1:]
			break
		}
	}
	if k, ok := byPropertyName[name]; ok {
		return k, true
	}
	return Kind{}, false
}
