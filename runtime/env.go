package runtime

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/clutter-sim/clutter-sim/scene"
)

// Environment binds a scene configuration, a layout engine, and a simulator.
// It owns the lifecycle of dynamically placed clutter objects: each episode
// gets a fresh layout, and the previous batch is removed on reset.
type Environment struct {
	cfg    *scene.SceneConfig
	engine *scene.Engine
	sim    Simulator

	dynamic    []ObjectID
	lastReport *scene.Report
}

// NewEnvironment creates an Environment. The configuration is caller-owned
// and never mutated.
func NewEnvironment(cfg *scene.SceneConfig, engine *scene.Engine, sim Simulator) *Environment {
	return &Environment{cfg: cfg, engine: engine, sim: sim}
}

// Populate generates a clutter batch and materializes it into the simulator.
// Physics is paused while objects are added and resumed afterwards, followed
// by a single settling step.
//
// A configuration error from the engine is logged and the scene proceeds
// uncluttered; per-object instantiation failures are logged and skipped.
// The returned Report describes what was actually placed.
func (e *Environment) Populate() (*scene.Report, error) {
	objects, report, err := e.engine.Generate(e.cfg)
	if err != nil {
		logrus.Warnf("no clutter objects generated, proceeding with bare scene: %v", err)
		report = &scene.Report{}
	}
	e.lastReport = report
	if len(objects) == 0 {
		return report, nil
	}

	wasPlaying := e.sim.Playing()
	if wasPlaying {
		e.sim.Pause()
	}

	added := 0
	for _, obj := range objects {
		id, err := e.sim.AddObject(obj)
		if err != nil {
			logrus.Warnf("adding object %q failed, skipping: %v", obj.Name, err)
			continue
		}
		e.dynamic = append(e.dynamic, id)
		added++
	}

	if wasPlaying {
		e.sim.Play()
		e.sim.StepPhysics()
	}

	logrus.Infof("materialized %d/%d clutter objects", added, len(objects))
	return report, nil
}

// Clear removes all tracked dynamic objects in one batch. Physics is paused
// around the removal and restored afterwards.
func (e *Environment) Clear() error {
	if len(e.dynamic) == 0 {
		return nil
	}

	wasPlaying := e.sim.Playing()
	if wasPlaying {
		e.sim.Pause()
	}

	err := e.sim.RemoveObjects(e.dynamic)
	e.dynamic = nil

	if wasPlaying {
		e.sim.Play()
	}
	if err != nil {
		return fmt.Errorf("removing dynamic objects: %w", err)
	}
	return nil
}

// Reset clears the previous clutter batch and populates a fresh one, giving
// each episode a new randomized layout.
func (e *Environment) Reset() (*scene.Report, error) {
	if err := e.Clear(); err != nil {
		return nil, err
	}
	return e.Populate()
}

// DynamicObjects returns the identifiers of the currently tracked clutter
// objects.
func (e *Environment) DynamicObjects() []ObjectID {
	return append([]ObjectID(nil), e.dynamic...)
}

// LastReport returns the report of the most recent Populate, or nil before
// the first one.
func (e *Environment) LastReport() *scene.Report {
	return e.lastReport
}

// Step applies an action to the underlying simulator.
func (e *Environment) Step(action Action) error {
	return e.sim.Step(action)
}

// Observe captures the current observation from the underlying simulator.
func (e *Environment) Observe() (Observation, error) {
	return e.sim.Observe()
}

// ErrNoEnvironments is returned by the episode runners when called with an
// empty environment list.
var ErrNoEnvironments = errors.New("no environments")
