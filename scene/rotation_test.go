package scene

import (
	"math"
	"testing"
)

func TestUniformSampler_UnitNorm(t *testing.T) {
	sampler := NewUniformSampler(testRNG(42))

	for _, q := range sampler.Sample(100) {
		norm := math.Sqrt(q.W*q.W + q.V.X()*q.V.X() + q.V.Y()*q.V.Y() + q.V.Z()*q.V.Z())
		if math.Abs(norm-1) > 1e-9 {
			t.Fatalf("quaternion %v has norm %f, want 1", q, norm)
		}
	}
}

func TestUniformSampler_Deterministic(t *testing.T) {
	first := NewUniformSampler(testRNG(7)).Sample(5)
	second := NewUniformSampler(testRNG(7)).Sample(5)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sample %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestUniformSampler_SampleZero(t *testing.T) {
	got := NewUniformSampler(testRNG(1)).Sample(0)
	if len(got) != 0 {
		t.Errorf("Sample(0): got %d quaternions, want 0", len(got))
	}
}

func TestYawQuat_RotatesAboutZ(t *testing.T) {
	// A yaw quaternion must keep z components zero and stay unit length.
	for _, angle := range []float64{0, math.Pi / 4, math.Pi, 3 * math.Pi / 2} {
		q := YawQuat(angle)
		if q.V.X() != 0 || q.V.Y() != 0 {
			t.Errorf("angle %f: x/y components non-zero: %v", angle, q)
		}
		if math.Abs(q.Norm()-1) > 1e-9 {
			t.Errorf("angle %f: norm %f, want 1", angle, q.Norm())
		}
	}
}
