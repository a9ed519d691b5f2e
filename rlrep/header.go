// This file contains the Header type, modeling §4.2 / the HeaderSection
// wire format of §6.

package rlrep

import "github.com/heatmap-gg/rlreplay/rlrep/rlcore"

// Header models a replay's header section.
type Header struct {
	// Version is the replay's engine/licensee/patch/net version triplet.
	Version rlcore.VersionTriplet

	// GameType is the header's game_type string.
	GameType string

	// Properties is the length-prefixed property tree, terminated in the
	// wire format by the "None" key (not represented here; termination is
	// a decode-time detail, not part of the data model).
	Properties PropertyList
}

// TeamSize returns the header's TeamSize property, or 0 if absent.
func (h *Header) TeamSize() int32 {
	p, ok := h.Properties.Get("TeamSize")
	if !ok || p.Kind != PropertyInt {
		return 0
	}
	return p.IntValue
}

// TeamScore returns the recorded score for the given team (0 or 1).
func (h *Header) TeamScore(team int) (int32, bool) {
	if team != 0 && team != 1 {
		return 0, false
	}
	name := "Team0Score"
	if team == 1 {
		name = "Team1Score"
	}
	p, ok := h.Properties.Get(name)
	if !ok || p.Kind != PropertyInt {
		return 0, false
	}
	return p.IntValue, true
}

// GoalInfo is one entry of the header's Goals array property.
type GoalInfo struct {
	PlayerName string
	PlayerTeam int32
	Frame      int32
}

// Goals returns the header's Goals array, decoded into GoalInfo values, or
// nil if the property is absent (e.g. no goals were scored).
func (h *Header) Goals() []GoalInfo {
	n, ok := h.Properties.Len("Goals")
	if !ok {
		return nil
	}
	goals := make([]GoalInfo, 0, n)
	for i := 0; i < n; i++ {
		idx := itoa(i)
		var g GoalInfo
		if p, ok := h.Properties.Get("Goals", idx, "PlayerName"); ok {
			g.PlayerName = p.StrValue
		}
		if p, ok := h.Properties.Get("Goals", idx, "PlayerTeam"); ok {
			g.PlayerTeam = p.IntValue
		}
		if p, ok := h.Properties.Get("Goals", idx, "frame"); ok {
			g.Frame = p.IntValue
		}
		goals = append(goals, g)
	}
	return goals
}

// itoa is a tiny non-allocating-where-possible base-10 formatter, avoiding
// a strconv import for the single-digit common case of small array
// indices.
func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}
