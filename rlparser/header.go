// This file contains the header decoder (C4, §4.2): header_size/header_crc
// framing, the (engine, licensee, [net_version]) version triplet, game_type,
// and the length-prefixed property tree terminated by the key "None".

package rlparser

import (
	"github.com/heatmap-gg/rlreplay/rlrep"
	"github.com/heatmap-gg/rlreplay/rlrep/rlcore"
	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

const (
	propKindArray  = "ArrayProperty"
	propKindBool   = "BoolProperty"
	propKindByte   = "ByteProperty"
	propKindFloat  = "FloatProperty"
	propKindInt    = "IntProperty"
	propKindInt64  = "Int64Property"
	propKindQWord  = "QWordProperty"
	propKindName   = "NameProperty"
	propKindStr    = "StrProperty"
	propKindStruct = "StructProperty"

	propListTerminator = "None"

	// onlinePlatformSentinelPrefix marks ByteProperty entries whose second
	// string (the value) is never present on the wire; only the platform
	// name itself is written.
	onlinePlatformSentinelPrefix = "OnlinePlatform_"
)

// decodeHeader reads the header body only (version fields, game_type,
// property list; the header_size/header_crc framing is read by the caller)
// from headerBody, which must start
// at the first byte following the header_crc field. headerBody is the
// exact slice CRC-verified against header_crc by the caller.
func decodeHeader(headerBody []byte) (*rlrep.Header, error) {
	sr := newSliceReader(headerBody)

	engine, err := sr.u32()
	if err != nil {
		return nil, err
	}
	licensee, err := sr.u32()
	if err != nil {
		return nil, err
	}

	v := rlcore.VersionTriplet{Engine: engine, Licensee: licensee}
	if v.AtLeast(868, 18) {
		net, err := sr.u32()
		if err != nil {
			return nil, err
		}
		v.Net = net
	}

	gameType, err := sr.str()
	if err != nil {
		return nil, err
	}

	props, err := decodePropertyList(sr)
	if err != nil {
		return nil, err
	}

	return &rlrep.Header{Version: v, GameType: gameType, Properties: props}, nil
}

// decodePropertyList reads a length-prefixed property tree terminated by
// the key "None" (§4.2).
func decodePropertyList(sr *sliceReader) (rlrep.PropertyList, error) {
	var list rlrep.PropertyList
	for {
		name, err := sr.str()
		if err != nil {
			return nil, err
		}
		if name == propListTerminator {
			return list, nil
		}

		p, err := decodeProperty(sr, name)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
}

func decodeProperty(sr *sliceReader, name string) (rlrep.Property, error) {
	kind, err := sr.str()
	if err != nil {
		return rlrep.Property{}, err
	}
	size, err := sr.u64()
	if err != nil {
		return rlrep.Property{}, err
	}

	p := rlrep.Property{Name: name}

	switch kind {
	case propKindBool:
		if size != 1 {
			return rlrep.Property{}, rlerr.UnexpectedProperty{Name: name, Size: int(size)}
		}
		b, err := sr.byte()
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyBool
		p.BoolValue = b != 0

	case propKindByte:
		k, err := sr.str()
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyByte
		p.ByteKind = k
		if !hasPrefix(k, onlinePlatformSentinelPrefix) {
			v, err := sr.str()
			if err != nil {
				return rlrep.Property{}, err
			}
			p.ByteValue = v
		}

	case propKindFloat:
		if size != 4 {
			return rlrep.Property{}, rlerr.UnexpectedProperty{Name: name, Size: int(size)}
		}
		f, err := sr.f32()
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyFloat
		p.FloatValue = f

	case propKindInt:
		if size != 4 {
			return rlrep.Property{}, rlerr.UnexpectedProperty{Name: name, Size: int(size)}
		}
		i, err := sr.i32()
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyInt
		p.IntValue = i

	case propKindInt64, propKindQWord:
		if size != 8 {
			return rlrep.Property{}, rlerr.UnexpectedProperty{Name: name, Size: int(size)}
		}
		q, err := sr.u64()
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyQWord
		p.QWordValue = rlcore.Uint64(q)

	case propKindName, propKindStr:
		s, err := sr.str()
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyStr
		p.StrValue = s

	case propKindStruct:
		structKind, err := sr.str()
		if err != nil {
			return rlrep.Property{}, err
		}
		fields, err := decodePropertyList(sr)
		if err != nil {
			return rlrep.Property{}, err
		}
		p.Kind = rlrep.PropertyStruct
		p.StructKind = structKind
		p.StructFields = fields

	case propKindArray:
		count, err := sr.i32()
		if err != nil {
			return rlrep.Property{}, err
		}
		if err := sr.checkListLen("Property."+name, count, 1); err != nil {
			return rlrep.Property{}, err
		}
		arr := make([]rlrep.PropertyList, count)
		for i := range arr {
			fields, err := decodePropertyList(sr)
			if err != nil {
				return rlrep.Property{}, err
			}
			arr[i] = fields
		}
		p.Kind = rlrep.PropertyArray
		p.ArrayValue = arr

	default:
		return rlrep.Property{}, rlerr.UnknownPropertyKind{Kind: kind}
	}

	return p, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
