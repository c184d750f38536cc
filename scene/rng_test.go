package scene

import (
	"math"
	"testing"
)

func TestLayoutKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewLayoutKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewLayoutKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same key+name produces the same sequence
	rng1 := NewPartitionedRNG(NewLayoutKey(42))
	rng2 := NewPartitionedRNG(NewLayoutKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemPositions).Float64()
		v2 := rng2.ForSubsystem(SubsystemPositions).Float64()
		if v1 != v2 {
			t.Errorf("value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// Drawing from one subsystem must not affect another
	rngA := NewPartitionedRNG(NewLayoutKey(42))
	rngB := NewPartitionedRNG(NewLayoutKey(42))

	// Drain 10 values from A's models subsystem only
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemModels).Float64()
	}

	// A's positions stream must still match B's untouched positions stream
	for i := 0; i < 5; i++ {
		a := rngA.ForSubsystem(SubsystemPositions).Float64()
		b := rngB.ForSubsystem(SubsystemPositions).Float64()
		if a != b {
			t.Errorf("value %d: isolation broken: %v != %v", i, a, b)
		}
	}
}

func TestPartitionedRNG_SubsystemsDiffer(t *testing.T) {
	rng := NewPartitionedRNG(NewLayoutKey(42))

	a := rng.ForSubsystem(SubsystemPositions).Float64()
	b := rng.ForSubsystem(SubsystemModels).Float64()
	c := rng.ForSubsystem(SubsystemOrientations).Float64()

	if a == b || b == c || a == c {
		t.Errorf("subsystem streams coincide: %v %v %v", a, b, c)
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewLayoutKey(42))

	first := rng.ForSubsystem(SubsystemPositions)
	second := rng.ForSubsystem(SubsystemPositions)

	if first != second {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	rng := NewPartitionedRNG(NewLayoutKey(12345))
	if rng.Key() != LayoutKey(12345) {
		t.Errorf("Key() = %v, want 12345", rng.Key())
	}
}

func TestFnv1a64_Deterministic(t *testing.T) {
	if fnv1a64("positions") != fnv1a64("positions") {
		t.Error("fnv1a64 not deterministic")
	}
}

func TestFnv1a64_NoCollisionAcrossSubsystems(t *testing.T) {
	names := []string{SubsystemPositions, SubsystemModels, SubsystemOrientations, ""}
	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}
