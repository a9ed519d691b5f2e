// This file contains the bit-packed geometric primitives shared by several
// attribute codecs (§4.5): quantized vectors, optional-axis rotations, and
// the compressed unit quaternion used by RigidBody.

package rlcore

import (
	"math"

	"github.com/heatmap-gg/rlreplay/rlrep/rlerr"
)

// Vector3i is a quantized 3D vector as carried by actor spawn locations,
// the Location and ExplosionData attributes, and RigidBody locations when
// the net version is at least 7. Components are already debiased
// (component - bias has been applied by the decoder).
type Vector3i struct {
	X, Y, Z int32
}

// Vector3f is an unquantized 3D vector (three raw f32 reads).
type Vector3f struct {
	X, Y, Z float32
}

// Rotation is three optional signed-8 angle steps. A nil field means the
// corresponding presence bit was 0 in the stream.
type Rotation struct {
	Pitch *int8
	Yaw   *int8
	Roll  *int8
}

// sqrtHalf is the bound of each compressed quaternion component's
// fixed-point range: [-sqrt(2)/2, sqrt(2)/2].
const sqrtHalf = math.Sqrt2 / 2

// Quaternion is a unit quaternion. Three of its four components are
// transmitted as 18-bit fixed-point values in [-sqrt(2)/2, sqrt(2)/2]; the
// fourth (the component with the largest absolute value) is reconstructed
// so that X²+Y²+Z²+W²=1.
type Quaternion struct {
	X, Y, Z, W float32
}

// DequantizeQuaternionComponent maps an 18-bit unsigned fixed-point sample
// back to a float in [-sqrt(2)/2, sqrt(2)/2].
func DequantizeQuaternionComponent(bits uint32, numBits uint8) float32 {
	maxVal := float32((uint64(1) << numBits) - 1)
	// [0, maxVal] -> [-sqrtHalf, sqrtHalf]
	return (float32(bits)/maxVal)*(2*sqrtHalf) - sqrtHalf
}

// ReconstructQuaternion rebuilds the omitted "largest" component from the
// other three, given the 2-bit selector (0=X, 1=Y, 2=Z, 3=W) that names
// which component was omitted.
func ReconstructQuaternion(selector uint8, a, b, c float32) (Quaternion, error) {
	sumSq := a*a + b*b + c*c
	if sumSq > 1 {
		// Clamp instead of producing NaN: floating point quantization can
		// push the sum fractionally over 1.
		sumSq = 1
	}
	d := float32(math.Sqrt(float64(1 - sumSq)))

	switch selector {
	case 0:
		return Quaternion{X: d, Y: a, Z: b, W: c}, nil
	case 1:
		return Quaternion{X: a, Y: d, Z: b, W: c}, nil
	case 2:
		return Quaternion{X: a, Y: b, Z: d, W: c}, nil
	case 3:
		return Quaternion{X: a, Y: b, Z: c, W: d}, nil
	default:
		return Quaternion{}, rlerr.QuaternionOutOfRange{Selector: selector}
	}
}
