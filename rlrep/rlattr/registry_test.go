package rlattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForObjectExactPathWins(t *testing.T) {
	k, ok := KindForObject("TAGame.RBActor_TA:ReplicatedRBState")
	assert.True(t, ok)
	assert.Equal(t, KindRigidBody, k)
}

func TestKindForObjectFallsBackToPropertyName(t *testing.T) {
	k, ok := KindForObject("TAGame.Car_TA:Location")
	assert.True(t, ok)
	assert.Equal(t, KindLocation, k)
}

func TestKindForObjectNoColonUsesWholePathAsName(t *testing.T) {
	k, ok := KindForObject("UniqueId")
	assert.True(t, ok)
	assert.Equal(t, KindUniqueId, k)
}

func TestKindForObjectUnrecognizedReturnsFalse(t *testing.T) {
	_, ok := KindForObject("TAGame.Totally_TA:NotARealProperty")
	assert.False(t, ok)
}
