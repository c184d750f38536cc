// Package runtime materializes layout-engine output into a live simulation
// and manages the resulting objects across environment resets.
//
// The physics/rendering backend is consumed through the narrow Simulator
// interface; nothing in this package knows which simulator is behind it.
// The pause/play protocol around object mutation lives here: the engine
// itself assumes it is called in a quiescent (non-stepping) context.
package runtime

import (
	"github.com/clutter-sim/clutter-sim/scene"
)

// ObjectID identifies a live object inside the simulator.
type ObjectID string

// Observation is one per-step snapshot handed to a policy. The RGB frame and
// proprioceptive state are opaque to this package.
type Observation struct {
	RGB     []byte
	Proprio []float64
}

// Action is a flat robot action vector.
type Action []float64

// Simulator is the surface of the physics/rendering backend this package
// needs. Implementations wrap the real simulator process; FakeSimulator in
// the tests records calls instead.
type Simulator interface {
	// Playing reports whether physics is currently stepping.
	Playing() bool

	// Pause stops physics stepping. Object mutation must happen while paused.
	Pause()

	// Play resumes physics stepping.
	Play()

	// StepPhysics advances physics by one step, letting freshly placed
	// objects settle.
	StepPhysics()

	// AddObject instantiates a descriptor and returns its live identifier.
	AddObject(cfg scene.ObjectConfig) (ObjectID, error)

	// RemoveObjects deletes live objects in one batch.
	RemoveObjects(ids []ObjectID) error

	// Step applies an action and advances the simulation.
	Step(action Action) error

	// Observe captures the current observation.
	Observe() (Observation, error)
}
