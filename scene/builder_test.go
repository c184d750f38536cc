package scene

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clutter-sim/clutter-sim/scene/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.NewStatic(map[string][]string{
		"apple": {"agveuv", "omzprq"},
		"bowl":  {"ajzltc"},
		"empty": {},
	})
}

func testPositions(n int) []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, n)
	for i := range positions {
		positions[i] = mgl64.Vec3{float64(i), 0, 0.85}
	}
	return positions
}

func TestBuildObjects_OnePositionPerObject(t *testing.T) {
	// GIVEN counts [2 1] over categories [apple bowl] and 3 positions
	objects, skipped := BuildObjects(
		[]string{"apple", "bowl"}, []int{2, 1}, testPositions(3),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{})

	// THEN each object consumed the next position in order
	require.Len(t, objects, 3)
	assert.Empty(t, skipped)
	for i, obj := range objects {
		assert.Equal(t, float64(i), obj.Position[0], "object %d", i)
		assert.Equal(t, DatasetObjectType, obj.Type)
		assert.False(t, obj.FixedBase)
	}
}

func TestBuildObjects_NamingRestartsPerCategory(t *testing.T) {
	objects, _ := BuildObjects(
		[]string{"apple", "bowl"}, []int{2, 2}, testPositions(4),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{})

	require.Len(t, objects, 4)
	wantNames := []string{"apple_1", "apple_2", "bowl_1", "bowl_2"}
	for i, obj := range objects {
		assert.Equal(t, wantNames[i], obj.Name)
	}
}

func TestBuildObjects_NamesUniqueWithinBatch(t *testing.T) {
	objects, _ := BuildObjects(
		[]string{"apple", "bowl"}, []int{5, 5}, testPositions(10),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{})

	seen := make(map[string]bool)
	for _, obj := range objects {
		key := fmt.Sprintf("%s/%s", obj.Category, obj.Name)
		if seen[key] {
			t.Errorf("duplicate name %q", key)
		}
		seen[key] = true
	}
}

func TestBuildObjects_ScenarioE_EmptyCategorySkipped(t *testing.T) {
	// GIVEN a category without catalog models between two valid ones
	objects, skipped := BuildObjects(
		[]string{"apple", "empty", "bowl"}, []int{2, 3, 1}, testPositions(6),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{})

	// THEN only its objects are dropped and the others are unaffected
	require.Len(t, objects, 3)
	assert.Equal(t, map[string]int{"empty": 3}, skipped)
	assert.Equal(t, "apple", objects[0].Category)
	assert.Equal(t, "apple", objects[1].Category)
	assert.Equal(t, "bowl", objects[2].Category)
}

func TestBuildObjects_SkipDoesNotConsumePosition(t *testing.T) {
	objects, _ := BuildObjects(
		[]string{"empty", "bowl"}, []int{2, 1}, testPositions(3),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{})

	require.Len(t, objects, 1)
	// The bowl gets the first position, not the third.
	assert.Equal(t, 0.0, objects[0].Position[0])
}

func TestBuildObjects_StopsWhenPositionsExhausted(t *testing.T) {
	// Defensive: counts promise more objects than positions exist
	objects, _ := BuildObjects(
		[]string{"apple"}, []int{5}, testPositions(2),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{})

	assert.Len(t, objects, 2)
}

func TestBuildObjects_DeterministicModelSelection(t *testing.T) {
	// GIVEN random_models off
	objects, _ := BuildObjects(
		[]string{"apple"}, []int{3}, testPositions(3),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{RandomModels: false})

	// THEN every object uses the first model in catalog order
	for _, obj := range objects {
		assert.Equal(t, "agveuv", obj.Model)
	}
}

func TestBuildObjects_RandomModelsFromCatalog(t *testing.T) {
	objects, _ := BuildObjects(
		[]string{"apple"}, []int{20}, testPositions(20),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{RandomModels: true})

	valid := map[string]bool{"agveuv": true, "omzprq": true}
	for _, obj := range objects {
		if !valid[obj.Model] {
			t.Fatalf("model %q not in catalog", obj.Model)
		}
	}
}

func TestBuildObjects_AxisAlignedIsPureYaw(t *testing.T) {
	// GIVEN axis_aligned orientations
	objects, _ := BuildObjects(
		[]string{"apple"}, []int{10}, testPositions(10),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{AxisAligned: true})

	// THEN quaternions are (0, 0, sin(a/2), cos(a/2)) and unit length
	for _, obj := range objects {
		q := obj.Orientation
		assert.Zero(t, q[0])
		assert.Zero(t, q[1])
		norm := math.Sqrt(q[2]*q[2] + q[3]*q[3])
		assert.InDelta(t, 1.0, norm, 1e-9)
	}
}

func TestBuildObjects_FullRotationIsUnit(t *testing.T) {
	objects, _ := BuildObjects(
		[]string{"apple"}, []int{10}, testPositions(10),
		testCatalog(), NewUniformSampler(testRNG(1)), testRNG(2), testRNG(3),
		BuildParams{AxisAligned: false})

	for _, obj := range objects {
		q := obj.Orientation
		norm := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
		assert.InDelta(t, 1.0, norm, 1e-9)
	}
}
