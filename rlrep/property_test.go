package rlrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyListGetTopLevel(t *testing.T) {
	pl := PropertyList{
		{Name: "TeamSize", Kind: PropertyInt, IntValue: 4},
	}
	p, ok := pl.Get("TeamSize")
	assert.True(t, ok)
	assert.Equal(t, int32(4), p.IntValue)
}

func TestPropertyListGetMissing(t *testing.T) {
	pl := PropertyList{{Name: "TeamSize", Kind: PropertyInt, IntValue: 4}}
	_, ok := pl.Get("Nope")
	assert.False(t, ok)
}

func TestPropertyListGetNestedStruct(t *testing.T) {
	inner := PropertyList{{Name: "PlayerName", Kind: PropertyStr, StrValue: "Squishy"}}
	pl := PropertyList{{Name: "Goal0", Kind: PropertyStruct, StructFields: inner}}
	p, ok := pl.Get("Goal0", "PlayerName")
	assert.True(t, ok)
	assert.Equal(t, "Squishy", p.StrValue)
}

func TestPropertyListGetArrayElement(t *testing.T) {
	elem := PropertyList{{Name: "PlayerName", Kind: PropertyStr, StrValue: "Squishy"}}
	pl := PropertyList{{Name: "Goals", Kind: PropertyArray, ArrayValue: []PropertyList{elem}}}

	p, ok := pl.Get("Goals", "0", "PlayerName")
	assert.True(t, ok)
	assert.Equal(t, "Squishy", p.StrValue)
}

func TestPropertyListGetArrayOutOfRange(t *testing.T) {
	pl := PropertyList{{Name: "Goals", Kind: PropertyArray, ArrayValue: []PropertyList{}}}
	_, ok := pl.Get("Goals", "0", "PlayerName")
	assert.False(t, ok)
}

func TestPropertyListLen(t *testing.T) {
	pl := PropertyList{{Name: "Goals", Kind: PropertyArray, ArrayValue: []PropertyList{{}, {}}}}
	n, ok := pl.Len("Goals")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestPropertyListLenNotArray(t *testing.T) {
	pl := PropertyList{{Name: "TeamSize", Kind: PropertyInt, IntValue: 4}}
	_, ok := pl.Len("TeamSize")
	assert.False(t, ok)
}
