package scene

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clutter-sim/clutter-sim/scene/catalog"
)

// Engine generates clutter-object batches for a scene. All collaborators
// are injected: the engine holds no global simulator handle and never
// mutates the configurations it is given.
type Engine struct {
	catalog catalog.Catalog
	sampler RotationSampler
	rng     *PartitionedRNG
}

// NewEngine creates an Engine with the default uniform rotation sampler.
func NewEngine(cat catalog.Catalog, seed int64) *Engine {
	rng := NewPartitionedRNG(NewLayoutKey(seed))
	return &Engine{
		catalog: cat,
		sampler: NewUniformSampler(rng.ForSubsystem(SubsystemOrientations)),
		rng:     rng,
	}
}

// NewEngineWithSampler creates an Engine with a caller-provided rotation
// sampler.
func NewEngineWithSampler(cat catalog.Catalog, sampler RotationSampler, seed int64) *Engine {
	return &Engine{
		catalog: cat,
		sampler: sampler,
		rng:     NewPartitionedRNG(NewLayoutKey(seed)),
	}
}

// Generate runs the full layout pipeline for the scene's clutter section:
// allocate counts across categories, generate grid positions, reconcile the
// allocation against real capacity, and build object descriptors.
//
// Configuration failures (missing clutter section, table absent from the
// objects list, invalid parameters) return a nil batch and the error; they
// are not fatal to the caller, which may proceed with an uncluttered scene.
// All other degradations (degenerate geometry, empty catalog categories)
// produce a shorter batch and are recorded on the Report.
func (e *Engine) Generate(cfg *SceneConfig) ([]ObjectConfig, *Report, error) {
	surface, err := cfg.TableSurface()
	if err != nil {
		return nil, nil, err
	}
	spec := cfg.RandomTableObjects
	if len(spec.Categories) == 0 {
		return nil, nil, ErrNoCategories
	}
	params := spec.params()

	report := &Report{
		BatchID:           uuid.NewString(),
		SkippedByCategory: map[string]int{},
	}
	report.Columns, report.Rows = surface.GridDims(params.gridSize)
	report.TotalCells = report.Columns * report.Rows

	counts := AllocateCounts(spec.Categories, spec.NumObjects)
	report.RequestedObjects = SumCounts(counts)

	positions := GeneratePositions(surface, params.gridSize, params.occupancyRate,
		e.rng.ForSubsystem(SubsystemPositions))
	report.AvailablePositions = len(positions)
	if len(positions) == 0 {
		logrus.Warnf("no valid positions generated on table %q", spec.TableName)
		return nil, report, nil
	}

	counts = ReconcileCounts(counts, len(positions), params.autoSupplement)
	adjusted := SumCounts(counts)
	report.Truncated = adjusted < report.RequestedObjects
	report.Supplemented = adjusted > report.RequestedObjects

	objects, skipped := BuildObjects(spec.Categories, counts, positions,
		e.catalog, e.sampler,
		e.rng.ForSubsystem(SubsystemModels), e.rng.ForSubsystem(SubsystemOrientations),
		BuildParams{RandomModels: params.randomModels, AxisAligned: params.axisAligned})
	report.SkippedByCategory = skipped
	report.PlacedObjects = len(objects)

	logrus.Infof("generated %d/%d objects on table %q (grid %dx%d, %d positions)",
		len(objects), adjusted, spec.TableName, report.Columns, report.Rows, len(positions))
	return objects, report, nil
}
