// This file contains the header property tree data model (§4.2): a
// length-prefixed, typed key/value tree terminated by the key "None".

package rlrep

import "github.com/heatmap-gg/rlreplay/rlrep/rlcore"

// PropertyKind tags which variant of Property is populated.
type PropertyKind byte

const (
	PropertyArray PropertyKind = iota
	PropertyBool
	PropertyByte
	PropertyFloat
	PropertyInt
	PropertyQWord
	PropertyName
	PropertyStr
	PropertyStruct
)

// Property is a single entry of the header's property tree.
type Property struct {
	Name string
	Kind PropertyKind

	ArrayValue []PropertyList

	BoolValue bool

	// A byte property is either {ByteKind, ByteValue} (an enum name/value
	// pair) or, for "OnlinePlatform_*"-style byte properties, the platform
	// name alone in ByteKind with ByteValue left empty.
	ByteKind  string
	ByteValue string

	FloatValue float32
	IntValue   int32
	QWordValue rlcore.Uint64
	StrValue   string

	StructKind   string
	StructFields PropertyList
}

// PropertyList is an ordered list of properties (ordering matters: it is
// the order the replay recorded them in, and §8 requires decoding the same
// bytes twice to yield byte-identical output).
type PropertyList []Property

// Get walks a dotted/indexed path of property and struct-field names,
// e.g. Get("Team0Score") or Get("Goals", "0", "PlayerName"). Array indices
// are path segments that parse as a non-negative integer. This is a
// convenience over re-walking the raw tree by hand for every lookup (see
// SPEC_FULL.md C4, the Header.PIDPlayers precedent this follows).
func (pl PropertyList) Get(path ...string) (Property, bool) {
	if len(path) == 0 {
		return Property{}, false
	}

	for _, p := range pl {
		if p.Name != path[0] {
			continue
		}
		if len(path) == 1 {
			return p, true
		}
		switch p.Kind {
		case PropertyStruct:
			return p.StructFields.Get(path[1:]...)
		case PropertyArray:
			idx, ok := parseIndex(path[1])
			if !ok || idx < 0 || idx >= len(p.ArrayValue) {
				return Property{}, false
			}
			if len(path) == 2 {
				// An array element is itself a property list; synthesize
				// a struct-shaped Property so callers have something to
				// return when asking for the element itself.
				return Property{Name: path[1], Kind: PropertyStruct, StructFields: p.ArrayValue[idx]}, true
			}
			return p.ArrayValue[idx].Get(path[2:]...)
		default:
			return Property{}, false
		}
	}
	return Property{}, false
}

// Len returns the number of elements in an array property at path, or
// (0, false) if path doesn't resolve to an array.
func (pl PropertyList) Len(path ...string) (int, bool) {
	p, ok := pl.Get(path...)
	if !ok || p.Kind != PropertyArray {
		return 0, false
	}
	return len(p.ArrayValue), true
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
