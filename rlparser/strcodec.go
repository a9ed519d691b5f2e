// This file contains the header string decoder (C2, §4.2 string-encoding
// policy), generalizing the teacher's koreanString helper (EUC-KR via
// golang.org/x/text) to the two encodings the replay header actually uses.

package rlparser

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// decodeLengthPrefixedString reads a §4.2 length-prefixed string starting
// at data[0] (a little-endian i32 length) and returns the decoded string
// plus the remainder of data after it. A non-negative length N means N
// bytes of null-terminated Windows-1252; a negative length -L means 2L
// bytes of null-terminated UTF-16LE.
func decodeLengthPrefixedString(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", nil, rlerr.InsufficientData{Context: "string length", Need: 4, Have: len(data)}
	}
	length := int32(binary.LittleEndian.Uint32(data))
	rest := data[4:]

	if length >= 0 {
		n := int(length)
		if n > len(rest) {
			return "", nil, rlerr.InsufficientData{Context: "windows-1252 string", Need: n, Have: len(rest)}
		}
		s, err := decodeWindows1252(trimTrailingNull(rest[:n]))
		if err != nil {
			return "", nil, err
		}
		return s, rest[n:], nil
	}

	n := int(-length) * 2
	if n > len(rest) {
		return "", nil, rlerr.InsufficientData{Context: "utf-16le string", Need: n, Have: len(rest)}
	}
	s, err := decodeUTF16LE(trimTrailingNullUTF16(rest[:n]))
	if err != nil {
		return "", nil, err
	}
	return s, rest[n:], nil
}

func trimTrailingNull(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == 0 {
		return b[:len(b)-1]
	}
	return b
}

func trimTrailingNullUTF16(b []byte) []byte {
	if len(b) >= 2 && b[len(b)-1] == 0 && b[len(b)-2] == 0 {
		return b[:len(b)-2]
	}
	return b
}

func decodeWindows1252(b []byte) (string, error) {
	s, err := transform.String(charmap.Windows1252.NewDecoder(), string(b))
	if err != nil {
		return "", rlerr.InvalidString{Encoding: "windows-1252", Bytes: append([]byte(nil), b...)}
	}
	return s, nil
}

func decodeUTF16LE(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := transform.String(dec, string(b))
	if err != nil {
		return "", rlerr.InvalidString{Encoding: "utf-16le", Bytes: append([]byte(nil), b...)}
	}
	return s, nil
}
