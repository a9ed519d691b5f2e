// This file contains the bit-packed geometric primitive readers of §4.5,
// shared by the frame decoder's new-actor trajectory fields (C7) and the
// RigidBody attribute codec (C6). They live beside the cursor they read
// from rather than in rlcore (which only holds the plain value types)
// because they are decode logic, not data.
package bitio

import "github.com/heatmap-gg/rlreplay/rlrep/rlcore"

// ReadVector3i reads a quantized vector (§4.5 Vector3i).
func (r *Reader) ReadVector3i(v rlcore.VersionTriplet) rlcore.Vector3i {
	var numBits uint8
	var bias int64

	if v.NetAtLeast(7) {
		numBits = uint8(r.ReadI32Max(19)) + 2
		bias = int64(1) << (numBits + 1)
	} else {
		numBits = 20
		bias = 0x40000
	}

	dx := int64(r.ReadBits(numBits + 2))
	dy := int64(r.ReadBits(numBits + 2))
	dz := int64(r.ReadBits(numBits + 2))

	return rlcore.Vector3i{
		X: int32(dx - bias),
		Y: int32(dy - bias),
		Z: int32(dz - bias),
	}
}

// ReadVector3f reads three raw f32 components.
func (r *Reader) ReadVector3f() rlcore.Vector3f {
	return rlcore.Vector3f{X: r.ReadF32(), Y: r.ReadF32(), Z: r.ReadF32()}
}

// ReadRotation reads three optional signed-8 angle steps, each preceded by
// a presence bit (§4.5 Rotation).
func (r *Reader) ReadRotation() rlcore.Rotation {
	var rot rlcore.Rotation
	if r.ReadBit() {
		v := int8(r.ReadU8())
		rot.Pitch = &v
	}
	if r.ReadBit() {
		v := int8(r.ReadU8())
		rot.Yaw = &v
	}
	if r.ReadBit() {
		v := int8(r.ReadU8())
		rot.Roll = &v
	}
	return rot
}

// quaternionComponentBits is the fixed-point width of each transmitted
// quaternion component (§4.5).
const quaternionComponentBits = 18

// ReadQuaternion reads a compressed unit quaternion: a 2-bit selector
// naming the omitted largest component, then three 18-bit fixed-point
// components, reconstructing the fourth (§4.5).
func (r *Reader) ReadQuaternion() (rlcore.Quaternion, error) {
	selector := uint8(r.ReadBits(2))
	a := rlcore.DequantizeQuaternionComponent(uint32(r.ReadBits(quaternionComponentBits)), quaternionComponentBits)
	b := rlcore.DequantizeQuaternionComponent(uint32(r.ReadBits(quaternionComponentBits)), quaternionComponentBits)
	c := rlcore.DequantizeQuaternionComponent(uint32(r.ReadBits(quaternionComponentBits)), quaternionComponentBits)
	return rlcore.ReconstructQuaternion(selector, a, b, c)
}
