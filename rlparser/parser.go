// Package rlparser implements the Rocket League replay decoder: header
// decode (C4), catalog construction (C5), and the network-stream frame
// decoder (C6/C7), assembled by Parse/ParseFile (C8) the way the teacher's
// repparser.Parse/ParseFile assemble SC:BW's sections.
package rlparser

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/heatmap-gg/rlreplay/rlparser/bitio"
	"github.com/heatmap-gg/rlreplay/rlparser/crcsum"
	"github.com/heatmap-gg/rlreplay/rlrep"
)

// CrcPolicy selects when header/body CRCs are verified (§6 configuration).
type CrcPolicy byte

const (
	// CrcAlways verifies both spans up front.
	CrcAlways CrcPolicy = iota
	// CrcOnError verifies only after a decode failure, to disambiguate
	// corruption from an unsupported patch.
	CrcOnError
	// CrcNever skips verification entirely.
	CrcNever
)

// NetworkPolicy selects how network-stream decode failures are handled
// (§6 configuration).
type NetworkPolicy byte

const (
	// NetworkAlways decodes the network stream and surfaces any error.
	NetworkAlways NetworkPolicy = iota
	// NetworkIgnoreOnError returns the replay with its header and body
	// tables but no frames if network decode fails; a failure in the body
	// tables is still returned as an error.
	NetworkIgnoreOnError
	// NetworkNever skips network decoding entirely.
	NetworkNever
)

// Config holds parser configuration (§6), mirroring the teacher's
// repparser.Config{Commands, MapData, Debug} shape.
type Config struct {
	Crc     CrcPolicy
	Network NetworkPolicy

	_ struct{} // prevent unkeyed literals
}

// DefaultConfig verifies CRCs up front and always decodes the network
// stream.
func DefaultConfig() Config {
	return Config{Crc: CrcAlways, Network: NetworkAlways}
}

// ErrParsing is returned when parsing panics (corrupt input or an
// implementation bug), mirroring the teacher's ErrParsing sentinel.
var ErrParsing = fmt.Errorf("rlreplay: parsing")

// ParseFile parses a replay from disk using DefaultConfig.
func ParseFile(name string) (*rlrep.Replay, error) {
	return ParseFileConfig(name, DefaultConfig())
}

// ParseFileConfig parses a replay from disk using cfg.
func ParseFileConfig(name string, cfg Config) (*rlrep.Replay, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, cfg)
}

// Parse parses a replay from an in-memory byte slice using DefaultConfig.
func Parse(data []byte) (*rlrep.Replay, error) {
	return ParseConfig(data, DefaultConfig())
}

// ParseConfig parses a replay from an in-memory byte slice using cfg.
func ParseConfig(data []byte, cfg Config) (r *rlrep.Replay, err error) {
	return parseProtected(data, cfg)
}

// parseProtected calls parse, but recovers a panic (out-of-bounds reads
// from malformed input, or an implementation bug) into ErrParsing, the
// same shape as the teacher's repparser.parseProtected.
func parseProtected(data []byte, cfg Config) (r *rlrep.Replay, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("rlreplay: parsing error: %v", rec)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("rlreplay: stack: %s", buf[:n])
			err = ErrParsing
		}
	}()
	return parse(data, cfg)
}

func parse(data []byte, cfg Config) (*rlrep.Replay, error) {
	sr := newSliceReader(data)

	headerSize, err := sr.u32()
	if err != nil {
		return nil, err
	}
	headerCrc, err := sr.u32()
	if err != nil {
		return nil, err
	}
	headerBody, err := sr.bytes(int(headerSize))
	if err != nil {
		return nil, err
	}

	if cfg.Crc == CrcAlways {
		if err := crcsum.VerifyHeader(headerBody, headerCrc); err != nil {
			return nil, err
		}
	}

	header, err := decodeHeader(headerBody)
	if err != nil {
		if cfg.Crc == CrcOnError {
			if cerr := crcsum.VerifyHeader(headerBody, headerCrc); cerr != nil {
				return nil, cerr
			}
		}
		return nil, err
	}

	bodySize, err := sr.u32()
	if err != nil {
		return nil, err
	}
	bodyCrc, err := sr.u32()
	if err != nil {
		return nil, err
	}
	bodyBytes, err := sr.bytes(int(bodySize))
	if err != nil {
		return nil, err
	}

	if cfg.Crc == CrcAlways {
		if err := crcsum.VerifyBody(bodyBytes, bodyCrc); err != nil {
			return nil, err
		}
	}

	rep := &rlrep.Replay{Header: *header}

	if err := decodeBody(bodyBytes, rep, cfg); err != nil {
		if cfg.Crc == CrcOnError {
			if cerr := crcsum.VerifyBody(bodyBytes, bodyCrc); cerr != nil {
				return nil, cerr
			}
		}
		// rep.Catalog is set only after every body table has decoded, so a
		// failure with it set came from the frame decoder.
		if cfg.Network == NetworkIgnoreOnError && rep.Catalog != nil {
			return rep, nil
		}
		return nil, err
	}

	return rep, nil
}

// decodeBody reads the ordered body tables of §4.3 and, per cfg.Network,
// hands the network-stream bytes and catalog to the frame decoder.
func decodeBody(data []byte, rep *rlrep.Replay, cfg Config) error {
	sr := newSliceReader(data)

	levels, err := decodeStringArray(sr, "levels")
	if err != nil {
		return err
	}
	rep.Levels = levels

	keyframes, err := decodeKeyframes(sr)
	if err != nil {
		return err
	}
	rep.Keyframes = keyframes

	streamLen, err := sr.u32()
	if err != nil {
		return err
	}
	streamBytes, err := sr.bytes(int(streamLen))
	if err != nil {
		return err
	}

	debugLog, err := decodeDebugLog(sr)
	if err != nil {
		return err
	}
	rep.DebugLog = debugLog

	tickMarks, err := decodeTickMarks(sr)
	if err != nil {
		return err
	}
	rep.TickMarks = tickMarks

	packages, err := decodeStringArray(sr, "packages")
	if err != nil {
		return err
	}
	rep.Packages = packages

	objects, err := decodeStringArray(sr, "objects")
	if err != nil {
		return err
	}
	rep.Objects = objects

	names, err := decodeStringArray(sr, "names")
	if err != nil {
		return err
	}
	rep.Names = names

	classes, err := decodeClassIndex(sr, objects)
	if err != nil {
		return err
	}
	rep.ClassIndex = classes

	netCache, err := decodeNetCache(sr)
	if err != nil {
		return err
	}
	rep.NetCache = netCache

	// Trailer bytes, if any, are tolerated but not interpreted (§9 open
	// question).

	cat := buildCatalog(objects, names, classes, netCache)
	rep.Catalog = cat

	if cfg.Network == NetworkNever {
		return nil
	}

	cfgC7 := frameDecodeConfig{
		Version:     rep.Header.Version,
		MaxChannels: maxChannelsFromProps(rep.Header.Properties),
		NumFrames:   numFramesFromProps(rep.Header.Properties),
	}

	br := bitio.New(streamBytes)
	frames, err := decodeFrames(br, cat, cfgC7)
	if err != nil {
		return err
	}
	rep.SetFrames(frames)
	return nil
}

// maxChannelsFromProps reads the header's MaxChannels property (falling
// back to a generous default if the replay predates the property being
// recorded).
func maxChannelsFromProps(props rlrep.PropertyList) int32 {
	if p, ok := props.Get("MaxChannels"); ok && p.Kind == rlrep.PropertyInt {
		return p.IntValue
	}
	return 1023
}

// numFramesFromProps reads the header's NumFrames property, used to bound
// frame decoding (§4.4 termination). The value is untrusted and not
// bounds-checked here; decodeFrames caps it against the network stream's
// actual remaining size before using it as a capacity (§5).
func numFramesFromProps(props rlrep.PropertyList) int32 {
	if p, ok := props.Get("NumFrames"); ok && p.Kind == rlrep.PropertyInt {
		return p.IntValue
	}
	return 0
}

func decodeKeyframes(sr *sliceReader) ([]rlrep.Keyframe, error) {
	count, err := sr.i32()
	if err != nil {
		return nil, err
	}
	if err := sr.checkListLen("keyframes", count, 12); err != nil {
		return nil, err
	}
	out := make([]rlrep.Keyframe, count)
	for i := range out {
		t, err := sr.f32()
		if err != nil {
			return nil, err
		}
		frame, err := sr.i32()
		if err != nil {
			return nil, err
		}
		pos, err := sr.i32()
		if err != nil {
			return nil, err
		}
		out[i] = rlrep.Keyframe{Time: t, Frame: frame, Position: pos}
	}
	return out, nil
}

func decodeDebugLog(sr *sliceReader) ([]rlrep.DebugLogEntry, error) {
	count, err := sr.i32()
	if err != nil {
		return nil, err
	}
	if err := sr.checkListLen("debug_log", count, 12); err != nil {
		return nil, err
	}
	out := make([]rlrep.DebugLogEntry, count)
	for i := range out {
		frame, err := sr.i32()
		if err != nil {
			return nil, err
		}
		user, err := sr.str()
		if err != nil {
			return nil, err
		}
		text, err := sr.str()
		if err != nil {
			return nil, err
		}
		out[i] = rlrep.DebugLogEntry{Frame: frame, User: user, Text: text}
	}
	return out, nil
}

func decodeTickMarks(sr *sliceReader) ([]rlrep.TickMark, error) {
	count, err := sr.i32()
	if err != nil {
		return nil, err
	}
	if err := sr.checkListLen("tick_marks", count, 8); err != nil {
		return nil, err
	}
	out := make([]rlrep.TickMark, count)
	for i := range out {
		desc, err := sr.str()
		if err != nil {
			return nil, err
		}
		frame, err := sr.i32()
		if err != nil {
			return nil, err
		}
		out[i] = rlrep.TickMark{Description: desc, Frame: frame}
	}
	return out, nil
}
