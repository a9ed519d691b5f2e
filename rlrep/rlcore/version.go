// This file contains the version triplet threaded through attribute
// decoding so codecs can branch on engine/licensee/net version instead of
// a patch string (see Design Note "Version fan-out").

package rlcore

// VersionTriplet identifies the replay's engine build, used to select
// among the handful of wire-format variants a given AttributeKind has had
// across patches. Net is read from the header when (Engine, Licensee) is
// at least (868, 18) and is what attribute codecs should prefer comparing against, since
// it tracks network-protocol changes directly instead of indirectly via
// engine/licensee numbers that don't always move together.
type VersionTriplet struct {
	// Engine is the game engine version (major.minor equivalent).
	Engine uint32

	// Licensee is the licensee (publisher-side) version.
	Licensee uint32

	// Patch is the patch version. The header decoder does not set it (the
	// header's one optional version field is read into Net), so it is zero
	// in decoded replays.
	Patch uint32

	// Net is the network protocol version, read directly from the header
	// when present (Engine >= 868 && Licensee >= 18), else 0.
	Net uint32
}

// AtLeast reports whether this version triplet is at or beyond the given
// engine/licensee pair, the comparison the header uses to decide whether a
// patch_version / net_version field is present at all.
func (v VersionTriplet) AtLeast(engine, licensee uint32) bool {
	return v.Engine >= engine && v.Licensee >= licensee
}

// NetAtLeast reports whether the network protocol version is at least the
// given value. Attribute codecs should prefer this over comparing Patch,
// per the §4.6 versioning rule: net-version gates are forward-compatible
// with patches this module has never seen, patch-string gates are not.
func (v VersionTriplet) NetAtLeast(net uint32) bool {
	return v.Net >= net
}
