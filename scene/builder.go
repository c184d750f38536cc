package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/clutter-sim/clutter-sim/scene/catalog"
)

// DatasetObjectType tags descriptors backed by a catalog asset. The
// simulator's object-instantiation API dispatches on this tag.
const DatasetObjectType = "DatasetObject"

// ObjectConfig describes one placeable object. Ownership transfers to the
// caller on return; the engine keeps no reference after generation.
type ObjectConfig struct {
	Type      string `yaml:"type"`
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Model     string `yaml:"model"`
	FixedBase bool   `yaml:"fixed_base"`

	Position    [3]float64 `yaml:"position"`
	Orientation [4]float64 `yaml:"orientation"` // x, y, z, w
}

// BuildParams controls model and orientation selection.
type BuildParams struct {
	// RandomModels selects a uniformly random model per object; otherwise the
	// first model in catalog order is used.
	RandomModels bool

	// AxisAligned restricts orientations to yaw so objects stay upright.
	AxisAligned bool
}

// BuildObjects maps per-category counts onto positions, producing one
// descriptor per (category, position) pair.
//
// Counts are expanded into a flat category sequence preserving category
// order; the flat sequence and the position sequence are walked in lockstep,
// one position per object. If positions run out the walk stops early — that
// cannot happen after ReconcileCounts, but running short is never an error.
//
// A category for which the catalog has no models is skipped object-by-object
// (logged, position not consumed); the batch may come back shorter than
// requested. The second return value counts skips per category.
//
// Names are "{category}_{i}" with i 1-based and restarting per category, so
// a name is unique within the batch.
// Model selection draws from modelRNG, orientation sampling from orientRNG;
// keeping the streams apart means toggling one option cannot perturb the
// other's draws.
func BuildObjects(categories []string, counts []int, positions []mgl64.Vec3,
	cat catalog.Catalog, sampler RotationSampler, modelRNG, orientRNG *rand.Rand, params BuildParams) ([]ObjectConfig, map[string]int) {

	objects := make([]ObjectConfig, 0, len(positions))
	skipped := make(map[string]int)
	posIdx := 0

	for ci, category := range categories {
		if ci >= len(counts) {
			break
		}
		for i := 0; i < counts[ci]; i++ {
			if posIdx >= len(positions) {
				logrus.Warnf("ran out of positions after %d objects, stopping early", len(objects))
				return objects, skipped
			}

			models := cat.Models(category)
			if len(models) == 0 {
				logrus.Warnf("category %q has no models in catalog, skipping", category)
				skipped[category]++
				continue
			}

			model := models[0]
			if params.RandomModels {
				model = models[modelRNG.Intn(len(models))]
			}

			pos := positions[posIdx]
			posIdx++

			objects = append(objects, ObjectConfig{
				Type:        DatasetObjectType,
				Name:        fmt.Sprintf("%s_%d", category, i+1),
				Category:    category,
				Model:       model,
				FixedBase:   false,
				Position:    [3]float64{pos.X(), pos.Y(), pos.Z()},
				Orientation: sampleOrientation(sampler, orientRNG, params.AxisAligned),
			})
		}
	}

	return objects, skipped
}

// sampleOrientation returns an orientation as [x, y, z, w]. Axis-aligned
// orientations are a pure yaw (0, 0, sin(a/2), cos(a/2)); otherwise the
// sampler provides a uniform rotation over SO(3).
func sampleOrientation(sampler RotationSampler, rng *rand.Rand, axisAligned bool) [4]float64 {
	if axisAligned {
		angle := rng.Float64() * 2 * math.Pi
		return [4]float64{0, 0, math.Sin(angle / 2), math.Cos(angle / 2)}
	}
	q := sampler.Sample(1)[0]
	return [4]float64{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}
