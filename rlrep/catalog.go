// This file contains the replay catalog (C5, §3 "Catalog entities"): the
// read-only tables built once from a replay's own name/object/class/
// net-cache sections, shared by reference with the frame decoder.

package rlrep

import "github.com/heatmap-gg/rlreplay/rlrep/rlattr"

// ClassDeclaration records that objectID is the root object of classID.
type ClassDeclaration struct {
	ObjectID int32
	ClassID  int32
}

// NetCacheClass is one node of the class→property arena (Design Note §9):
// parent links are indices into the same slice, never pointers, so the
// arena can be built from the replay's flat net_cache table in a single
// forward pass - each entry's parent_id is only ever matched against a
// cache_id from an earlier index in that same pass (§4.3 step 8's
// "previously declared"), which also rules out parent cycles.
type NetCacheClass struct {
	ClassID  int32
	CacheID  int32
	ParentID int32

	// ParentIndex is this entry's parent's index within Catalog.NetCache,
	// or -1 if this entry is a root (its parent_id didn't match any
	// previously declared cache_id, per §4.3 net_cache table rule 8).
	ParentIndex int

	// Properties maps stream_id -> object_id for properties declared
	// directly on this class (not inherited).
	Properties map[int32]int32
}

// Catalog is the read-only per-replay lookup table set (§3). It is built
// once during header+table decoding (C8) and never mutated once frame
// decoding (C7) begins.
type Catalog struct {
	Names   []string
	Objects []string

	// Classes lists which objects are class roots.
	Classes []ClassDeclaration

	// NetCache is the flat class→property arena.
	NetCache []NetCacheClass

	// netCacheByClassID indexes NetCache by ClassID for ResolveProperty
	// and MaxStreamID, built once in Finalize.
	netCacheByClassID map[int32]int

	// objectIDByClassID maps a class id to the object id that is its root
	// (the "class" in the §4.4 "object path determines the class" sense).
	objectIDByClassID map[int32]int32
	classIDByObjectID map[int32]int32

	// objectAttr maps object_id -> AttributeKind, built by walking Objects
	// through the static registry (rlattr.KindForObject), §4.3.
	objectAttr map[int32]rlattr.Kind

	// maxStreamID memoizes, per class, the highest stream_id across the
	// class and its ancestors (used to bound read_i32_max in the update
	// path, §4.4).
	maxStreamID map[int32]int32
}

// NewCatalog builds an empty Catalog around the given names/objects. Call
// Finalize once Classes and NetCache have been populated.
func NewCatalog(names, objects []string) *Catalog {
	return &Catalog{
		Names:   names,
		Objects: objects,
	}
}

// Finalize indexes Classes and NetCache for lookup, and builds
// ObjectIndToAttribute by walking Objects through the static registry.
// Must be called once, after Classes and NetCache are fully populated.
func (c *Catalog) Finalize() {
	c.netCacheByClassID = make(map[int32]int, len(c.NetCache))
	for i, nc := range c.NetCache {
		c.netCacheByClassID[nc.ClassID] = i
	}

	c.objectIDByClassID = make(map[int32]int32, len(c.Classes))
	c.classIDByObjectID = make(map[int32]int32, len(c.Classes))
	for _, cd := range c.Classes {
		c.objectIDByClassID[cd.ClassID] = cd.ObjectID
		c.classIDByObjectID[cd.ObjectID] = cd.ClassID
	}

	c.objectAttr = make(map[int32]rlattr.Kind, len(c.Objects))
	for objID, path := range c.Objects {
		if kind, ok := rlattr.KindForObject(path); ok {
			c.objectAttr[int32(objID)] = kind
		}
	}

	c.maxStreamID = make(map[int32]int32, len(c.NetCache))
	for _, nc := range c.NetCache {
		c.maxStreamID[nc.ClassID] = c.computeMaxStreamID(nc.ClassID)
	}
}

// ObjectName returns the object path for objectID, or "" if out of range.
func (c *Catalog) ObjectName(objectID int32) string {
	if objectID < 0 || int(objectID) >= len(c.Objects) {
		return ""
	}
	return c.Objects[objectID]
}

// Name returns the name for nameID, or "" if out of range.
func (c *Catalog) Name(nameID int32) string {
	if nameID < 0 || int(nameID) >= len(c.Names) {
		return ""
	}
	return c.Names[nameID]
}

// AttributeKind returns the attribute kind for objectID, resolved at
// Finalize time via the static registry.
func (c *Catalog) AttributeKind(objectID int32) (rlattr.Kind, bool) {
	k, ok := c.objectAttr[objectID]
	return k, ok
}

// ClassIDForObject returns the class id whose root object is objectID.
func (c *Catalog) ClassIDForObject(objectID int32) (int32, bool) {
	id, ok := c.classIDByObjectID[objectID]
	return id, ok
}

// ResolveProperty resolves stream_id to an object_id for classID, walking
// the class's own properties, then its ancestors' (Design Note §9,
// "Cyclic / inherited class table"). ok is false if no entry in the
// class's ancestry declares streamID.
func (c *Catalog) ResolveProperty(classID, streamID int32) (objectID int32, ok bool) {
	idx, found := c.netCacheByClassID[classID]
	if !found {
		return 0, false
	}
	seen := map[int]bool{}
	for idx >= 0 && !seen[idx] {
		seen[idx] = true
		nc := c.NetCache[idx]
		if objID, has := nc.Properties[streamID]; has {
			return objID, true
		}
		idx = nc.ParentIndex
	}
	return 0, false
}

// MaxStreamID returns the highest stream_id across classID and its
// ancestors, memoized at Finalize time.
func (c *Catalog) MaxStreamID(classID int32) (int32, bool) {
	v, ok := c.maxStreamID[classID]
	return v, ok
}

func (c *Catalog) computeMaxStreamID(classID int32) int32 {
	idx, found := c.netCacheByClassID[classID]
	if !found {
		return 0
	}
	var max int32
	seen := map[int]bool{}
	for idx >= 0 && !seen[idx] {
		seen[idx] = true
		nc := c.NetCache[idx]
		for streamID := range nc.Properties {
			if streamID > max {
				max = streamID
			}
		}
		idx = nc.ParentIndex
	}
	return max
}
