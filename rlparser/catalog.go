// This file builds a rlrep.Catalog from a replay's own packages/objects/
// names/class_index/net_cache tables (C5 construction, §4.3 steps 6-8),
// as opposed to rlrep.Catalog's pure lookup logic, which this only calls
// into via Finalize.

package rlparser

import (
	"github.com/heatmap-gg/rlreplay/rlrep"
)

// decodeStringArray reads a §4.3 length-prefixed array of strings.
func decodeStringArray(sr *sliceReader, field string) ([]string, error) {
	count, err := sr.i32()
	if err != nil {
		return nil, err
	}
	if err := sr.checkListLen(field, count, 4); err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := range out {
		s, err := sr.str()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// decodeClassIndex reads the class_index table (§4.3 step 7): pairs of
// (object path, class_id). The object path is resolved against objects to
// find its object_id; entries whose path has no match in objects are
// dropped (a tolerant read, since §9's open questions already flag several
// trailing-data edge cases as unconfirmed — an unmatched class_index entry
// is the same shape of "don't guess" situation).
func decodeClassIndex(sr *sliceReader, objects []string) ([]rlrep.ClassDeclaration, error) {
	count, err := sr.i32()
	if err != nil {
		return nil, err
	}
	if err := sr.checkListLen("class_index", count, 8); err != nil {
		return nil, err
	}

	byName := make(map[string]int32, len(objects))
	for i, name := range objects {
		byName[name] = int32(i)
	}

	decls := make([]rlrep.ClassDeclaration, 0, count)
	for i := int32(0); i < count; i++ {
		name, err := sr.str()
		if err != nil {
			return nil, err
		}
		classID, err := sr.i32()
		if err != nil {
			return nil, err
		}
		if objID, ok := byName[name]; ok {
			decls = append(decls, rlrep.ClassDeclaration{ObjectID: objID, ClassID: classID})
		}
	}
	return decls, nil
}

// decodeNetCache reads the net_cache table (§4.3 step 8): a flat list of
// (class_id, parent_id, cache_id, properties) entries, reconstructed here
// into the ParentIndex arena Design Note §9 describes — parent links are
// resolved by matching parent_id against a previously declared cache_id;
// unmatched means the entry is a root (ParentIndex = -1).
//
// Each entry's leading i32 is the class id (the same numbering
// ClassDeclaration.ClassID uses), not a separate object reference: a
// class's net-cache entry and its class_index declaration share one id
// space, which is what lets ResolveProperty index NetCache by ClassID
// directly.
func decodeNetCache(sr *sliceReader) ([]rlrep.NetCacheClass, error) {
	count, err := sr.i32()
	if err != nil {
		return nil, err
	}
	if err := sr.checkListLen("net_cache", count, 12); err != nil {
		return nil, err
	}

	classes := make([]rlrep.NetCacheClass, count)
	cacheIDIndex := make(map[int32]int, count)

	for i := int32(0); i < count; i++ {
		classID, err := sr.i32()
		if err != nil {
			return nil, err
		}
		parentID, err := sr.i32()
		if err != nil {
			return nil, err
		}
		cacheID, err := sr.i32()
		if err != nil {
			return nil, err
		}

		propCount, err := sr.i32()
		if err != nil {
			return nil, err
		}
		if err := sr.checkListLen("net_cache.properties", propCount, 8); err != nil {
			return nil, err
		}
		props := make(map[int32]int32, propCount)
		for j := int32(0); j < propCount; j++ {
			streamID, err := sr.i32()
			if err != nil {
				return nil, err
			}
			propObjID, err := sr.i32()
			if err != nil {
				return nil, err
			}
			props[streamID] = propObjID
		}

		classes[i] = rlrep.NetCacheClass{
			ClassID:     classID,
			CacheID:     cacheID,
			ParentID:    parentID,
			ParentIndex: -1,
			Properties:  props,
		}
		// Resolve against cacheIDIndex before this entry's own cacheID is
		// added to it, so parent_id only ever matches a previously declared
		// cache_id (§4.3 step 8) and never a later or equal table index -
		// ruling out forward references and parent cycles by construction.
		if idx, ok := cacheIDIndex[parentID]; ok {
			classes[i].ParentIndex = idx
		}
		cacheIDIndex[cacheID] = int(i)
	}

	return classes, nil
}

// buildCatalog assembles a finalized rlrep.Catalog from the decoded body
// tables (§4.3 step order: packages/objects/names, then class_index, then
// net_cache — packages is not part of the catalog; the assembler keeps it
// only on the Replay).
func buildCatalog(objects, names []string, classes []rlrep.ClassDeclaration, netCache []rlrep.NetCacheClass) *rlrep.Catalog {
	cat := rlrep.NewCatalog(names, objects)
	cat.Classes = classes
	cat.NetCache = netCache
	cat.Finalize()
	return cat
}
