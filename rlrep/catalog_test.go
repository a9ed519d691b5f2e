package rlrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogResolvePropertyDirect(t *testing.T) {
	cat := NewCatalog(nil, []string{"TAGame.Ball_TA"})
	cat.NetCache = []NetCacheClass{
		{ClassID: 1, CacheID: 10, ParentID: 0, ParentIndex: -1, Properties: map[int32]int32{3: 30}},
	}
	cat.Finalize()

	objID, ok := cat.ResolveProperty(1, 3)
	require.True(t, ok)
	assert.Equal(t, int32(30), objID)
}

func TestCatalogResolvePropertyWalksAncestry(t *testing.T) {
	cat := NewCatalog(nil, nil)
	cat.NetCache = []NetCacheClass{
		{ClassID: 1, CacheID: 10, ParentID: 0, ParentIndex: -1, Properties: map[int32]int32{1: 11}},
		{ClassID: 2, CacheID: 20, ParentID: 10, ParentIndex: 0, Properties: map[int32]int32{2: 22}},
	}
	cat.Finalize()

	objID, ok := cat.ResolveProperty(2, 1) // inherited from class 1
	require.True(t, ok)
	assert.Equal(t, int32(11), objID)

	objID, ok = cat.ResolveProperty(2, 2) // declared directly on class 2
	require.True(t, ok)
	assert.Equal(t, int32(22), objID)

	_, ok = cat.ResolveProperty(2, 99)
	assert.False(t, ok)
}

func TestCatalogResolvePropertyTerminatesOnParentCycle(t *testing.T) {
	cat := NewCatalog(nil, nil)
	// A cycle can't arise from decodeNetCache's own construction (§4.3 step
	// 8 only links to previously declared cache ids), but ResolveProperty
	// must not assume that invariant holds for every Catalog it's handed.
	cat.NetCache = []NetCacheClass{
		{ClassID: 1, CacheID: 10, ParentID: 20, ParentIndex: 1, Properties: map[int32]int32{}},
		{ClassID: 2, CacheID: 20, ParentID: 10, ParentIndex: 0, Properties: map[int32]int32{}},
	}
	cat.Finalize()

	_, ok := cat.ResolveProperty(1, 99)
	assert.False(t, ok)
}

func TestCatalogMaxStreamIDAccumulatesAcrossAncestry(t *testing.T) {
	cat := NewCatalog(nil, nil)
	cat.NetCache = []NetCacheClass{
		{ClassID: 1, CacheID: 10, ParentID: 0, ParentIndex: -1, Properties: map[int32]int32{5: 50}},
		{ClassID: 2, CacheID: 20, ParentID: 10, ParentIndex: 0, Properties: map[int32]int32{2: 22}},
	}
	cat.Finalize()

	max, ok := cat.MaxStreamID(2)
	require.True(t, ok)
	assert.Equal(t, int32(5), max)
}

func TestCatalogAttributeKindResolvesFromRegistry(t *testing.T) {
	cat := NewCatalog(nil, []string{"TAGame.Car_TA:Location"})
	cat.Finalize()

	kind, ok := cat.AttributeKind(0)
	require.True(t, ok)
	assert.Equal(t, "Location", kind.Name)
}

func TestCatalogClassIDForObject(t *testing.T) {
	cat := NewCatalog(nil, []string{"TAGame.Ball_TA"})
	cat.Classes = []ClassDeclaration{{ObjectID: 0, ClassID: 7}}
	cat.Finalize()

	classID, ok := cat.ClassIDForObject(0)
	require.True(t, ok)
	assert.Equal(t, int32(7), classID)

	_, ok = cat.ClassIDForObject(99)
	assert.False(t, ok)
}

func TestCatalogObjectNameAndNameBoundsCheck(t *testing.T) {
	cat := NewCatalog([]string{"Alice"}, []string{"TAGame.Ball_TA"})
	assert.Equal(t, "TAGame.Ball_TA", cat.ObjectName(0))
	assert.Equal(t, "", cat.ObjectName(5))
	assert.Equal(t, "Alice", cat.Name(0))
	assert.Equal(t, "", cat.Name(-1))
}
