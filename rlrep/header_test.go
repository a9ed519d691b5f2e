package rlrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderTeamSizeDefaultsToZero(t *testing.T) {
	h := &Header{}
	assert.Equal(t, int32(0), h.TeamSize())
}

func TestHeaderTeamSize(t *testing.T) {
	h := &Header{Properties: PropertyList{
		{Name: "TeamSize", Kind: PropertyInt, IntValue: 3},
	}}
	assert.Equal(t, int32(3), h.TeamSize())
}

func TestHeaderTeamScoreRejectsBadTeamIndex(t *testing.T) {
	h := &Header{}
	_, ok := h.TeamScore(2)
	assert.False(t, ok)
}

func TestHeaderTeamScore(t *testing.T) {
	h := &Header{Properties: PropertyList{
		{Name: "Team0Score", Kind: PropertyInt, IntValue: 5},
		{Name: "Team1Score", Kind: PropertyInt, IntValue: 2},
	}}
	s0, ok := h.TeamScore(0)
	require.True(t, ok)
	assert.Equal(t, int32(5), s0)

	s1, ok := h.TeamScore(1)
	require.True(t, ok)
	assert.Equal(t, int32(2), s1)
}

func TestHeaderGoalsAbsent(t *testing.T) {
	h := &Header{}
	assert.Nil(t, h.Goals())
}

func TestHeaderGoalsDecodesEachEntry(t *testing.T) {
	goal0 := PropertyList{
		{Name: "PlayerName", Kind: PropertyStr, StrValue: "Squishy"},
		{Name: "PlayerTeam", Kind: PropertyInt, IntValue: 0},
		{Name: "frame", Kind: PropertyInt, IntValue: 412},
	}
	h := &Header{Properties: PropertyList{
		{Name: "Goals", Kind: PropertyArray, ArrayValue: []PropertyList{goal0}},
	}}

	goals := h.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "Squishy", goals[0].PlayerName)
	assert.Equal(t, int32(0), goals[0].PlayerTeam)
	assert.Equal(t, int32(412), goals[0].Frame)
}

func TestItoaSmallAndLarge(t *testing.T) {
	assert.Equal(t, "5", itoa(5))
	assert.Equal(t, "12", itoa(12))
	assert.Equal(t, "123", itoa(123))
}
