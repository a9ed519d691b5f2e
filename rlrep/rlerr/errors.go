// Package rlerr defines the typed error kinds of §7: every place the
// decoder can refuse to continue returns one of these, never a panic. They
// are plain value types so callers can match on them with errors.As.
package rlerr

import "fmt"

// InsufficientData reports a reader underrun: fewer bits/bytes remained
// than the operation needed.
type InsufficientData struct {
	Context string
	Need    int
	Have    int
}

func (e InsufficientData) Error() string {
	return fmt.Sprintf("rlreplay: insufficient data (%s): need %d, have %d", e.Context, e.Need, e.Have)
}

// Span names which CRC-covered region a CrcMismatch refers to.
type Span int

const (
	SpanHeader Span = iota
	SpanBody
)

func (s Span) String() string {
	if s == SpanHeader {
		return "header"
	}
	return "body"
}

// CrcMismatch reports that a computed checksum didn't match the replay's
// recorded one.
type CrcMismatch struct {
	Span     Span
	Expected uint32
	Actual   uint32
}

func (e CrcMismatch) Error() string {
	return fmt.Sprintf("rlreplay: crc mismatch in %s: expected %#x, got %#x", e.Span, e.Expected, e.Actual)
}

// UnexpectedProperty reports a header property whose declared size didn't
// match its kind's natural width.
type UnexpectedProperty struct {
	Name string
	Size int
}

func (e UnexpectedProperty) Error() string {
	return fmt.Sprintf("rlreplay: unexpected property size for %q: %d", e.Name, e.Size)
}

// UnknownPropertyKind reports a header property tag this module doesn't
// recognize.
type UnknownPropertyKind struct {
	Kind string
}

func (e UnknownPropertyKind) Error() string {
	return fmt.Sprintf("rlreplay: unknown property kind %q", e.Kind)
}

// InvalidString reports a length-prefixed string whose bytes didn't decode
// cleanly under the declared encoding.
type InvalidString struct {
	Encoding string
	Bytes    []byte
}

func (e InvalidString) Error() string {
	return fmt.Sprintf("rlreplay: invalid %s string (%d bytes)", e.Encoding, len(e.Bytes))
}

// TimeOutOfRange reports an implausible per-frame (time, delta) pair.
type TimeOutOfRange struct {
	Frame int
	Time  float32
	Delta float32
}

func (e TimeOutOfRange) Error() string {
	return fmt.Sprintf("rlreplay: time out of range at frame %d: time=%v delta=%v", e.Frame, e.Time, e.Delta)
}

// MaxStreamIdExceeded reports a stream id read from the network stream
// that exceeds the class's highest known stream id.
type MaxStreamIdExceeded struct {
	ClassID  int32
	StreamID int32
	Max      int32
}

func (e MaxStreamIdExceeded) Error() string {
	return fmt.Sprintf("rlreplay: stream id %d exceeds max %d for class %d", e.StreamID, e.Max, e.ClassID)
}

// UnrecognizedAttribute reports an object path with no entry in the static
// attribute-kind registry.
type UnrecognizedAttribute struct {
	ObjectID int32
	Path     string
}

func (e UnrecognizedAttribute) Error() string {
	return fmt.Sprintf("rlreplay: unrecognized attribute for object %d (%s)", e.ObjectID, e.Path)
}

// UnrecognizedRemoteId reports a UniqueId system byte outside the known
// set.
type UnrecognizedRemoteId struct {
	SystemID uint8
}

func (e UnrecognizedRemoteId) Error() string {
	return fmt.Sprintf("rlreplay: unrecognized remote id system %#x", e.SystemID)
}

// QuaternionOutOfRange reports a 2-bit "largest component" selector
// outside [0,3].
type QuaternionOutOfRange struct {
	Selector uint8
}

func (e QuaternionOutOfRange) Error() string {
	return fmt.Sprintf("rlreplay: quaternion selector out of range: %d", e.Selector)
}

// ListTooLarge is a defensive cap: a length-prefixed list claimed more
// elements than the remaining bytes could possibly contain.
type ListTooLarge struct {
	Field     string
	Requested int64
	Remaining int64
}

func (e ListTooLarge) Error() string {
	return fmt.Sprintf("rlreplay: %s requested %d elements, only %d bytes remain", e.Field, e.Requested, e.Remaining)
}

// UpdatedActorNotFound reports an update referencing an actor id with no
// open channel.
type UpdatedActorNotFound struct {
	ActorID int32
}

func (e UpdatedActorNotFound) Error() string {
	return fmt.Sprintf("rlreplay: updated actor not found: %d", e.ActorID)
}
