package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationSampler draws unit quaternions for object orientations.
// The engine treats the sampler as a black box so callers can substitute a
// fixed or recorded source in tests.
type RotationSampler interface {
	// Sample returns n unit quaternions.
	Sample(n int) []mgl64.Quat
}

// UniformSampler draws rotations uniformly over SO(3) using Shoemake's
// subgroup algorithm.
type UniformSampler struct {
	rng *rand.Rand
}

// NewUniformSampler creates a UniformSampler backed by rng.
func NewUniformSampler(rng *rand.Rand) *UniformSampler {
	return &UniformSampler{rng: rng}
}

// Sample returns n uniformly distributed unit quaternions.
func (s *UniformSampler) Sample(n int) []mgl64.Quat {
	quats := make([]mgl64.Quat, n)
	for i := range quats {
		u1 := s.rng.Float64()
		u2 := s.rng.Float64() * 2 * math.Pi
		u3 := s.rng.Float64() * 2 * math.Pi
		a := math.Sqrt(1 - u1)
		b := math.Sqrt(u1)
		quats[i] = mgl64.Quat{
			W: b * math.Cos(u3),
			V: mgl64.Vec3{a * math.Sin(u2), a * math.Cos(u2), b * math.Sin(u3)},
		}
	}
	return quats
}

// YawQuat returns the quaternion for a pure rotation of angle radians about
// the world z axis. Objects rotated this way stay upright.
func YawQuat(angle float64) mgl64.Quat {
	return mgl64.Quat{
		W: math.Cos(angle / 2),
		V: mgl64.Vec3{0, 0, math.Sin(angle / 2)},
	}
}
