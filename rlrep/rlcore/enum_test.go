package rlcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumString(t *testing.T) {
	e := Enum{Name: "Soccar"}
	assert.Equal(t, "Soccar", e.String())
}

func TestUnknownEnumPreservesID(t *testing.T) {
	e := UnknownEnum(0x2a)
	assert.Contains(t, e.String(), "0x2a")
}
