package rlcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtLeast(t *testing.T) {
	v := VersionTriplet{Engine: 868, Licensee: 18}
	assert.True(t, v.AtLeast(868, 18))
	assert.True(t, v.AtLeast(868, 0))
	assert.False(t, v.AtLeast(869, 18))
	assert.False(t, v.AtLeast(868, 19))
}

func TestNetAtLeast(t *testing.T) {
	v := VersionTriplet{Net: 18}
	assert.True(t, v.NetAtLeast(18))
	assert.True(t, v.NetAtLeast(10))
	assert.False(t, v.NetAtLeast(19))
}
