// Package scene provides the procedural table-clutter layout engine.
//
// # Reading Guide
//
// Start with these three files to understand the layout pipeline:
//   - surface.go: the placement substrate and its derived grid geometry
//   - engine.go: the generation pipeline (allocate, place, reconcile, build)
//   - builder.go: ObjectConfig, the descriptor handed to the simulator
//
// # Architecture
//
// The engine is a pure in-process computation: it reads an immutable scene
// configuration and a seeded random source and returns a batch of object
// descriptors plus a Report describing what was actually produced. It never
// touches simulator state; materializing descriptors into live objects is
// the runtime package's job.
//
// Pipeline stages, each a standalone function with its own tests:
//   - AllocateCounts (allocate.go): split a requested object count across categories
//   - GeneratePositions (grid.go): jittered, collision-free grid points on the surface
//   - ReconcileCounts (reconcile.go): fit the allocation to the grid's real capacity
//   - BuildObjects (builder.go): map (category, position) pairs to descriptors
//
// External collaborators are injected, never reached through globals:
//   - catalog.Catalog: asset category/model lookups
//   - RotationSampler: uniform random rotations
//   - PartitionedRNG: deterministic per-subsystem random streams
package scene
