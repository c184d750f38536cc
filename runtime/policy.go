package runtime

import (
	"fmt"
)

// Policy maps a batch of observations to a batch of actions. Implementations
// wrap an external inference backend (for example a vision-language model
// served out of process); this package treats them as an opaque batch
// function and imposes no model semantics.
type Policy interface {
	Act(obs []Observation) ([]Action, error)
}

// RunEpisode resets env and drives observe -> act -> step for horizon steps.
func RunEpisode(env *Environment, policy Policy, horizon int) error {
	return RunBatchedEpisode([]*Environment{env}, policy, horizon)
}

// RunBatchedEpisode drives several environments in lockstep for horizon
// steps, batching all observations into a single policy call per step. This
// is the vectorized-rollout shape batch-inference backends expect: one
// forward pass serves every environment.
func RunBatchedEpisode(envs []*Environment, policy Policy, horizon int) error {
	if len(envs) == 0 {
		return ErrNoEnvironments
	}

	for i, env := range envs {
		if _, err := env.Reset(); err != nil {
			return fmt.Errorf("resetting environment %d: %w", i, err)
		}
	}

	obs := make([]Observation, len(envs))
	for t := 0; t < horizon; t++ {
		for i, env := range envs {
			o, err := env.Observe()
			if err != nil {
				return fmt.Errorf("step %d: observing environment %d: %w", t, i, err)
			}
			obs[i] = o
		}

		actions, err := policy.Act(obs)
		if err != nil {
			return fmt.Errorf("step %d: policy inference: %w", t, err)
		}
		if len(actions) != len(envs) {
			return fmt.Errorf("step %d: policy returned %d actions for %d environments",
				t, len(actions), len(envs))
		}

		for i, env := range envs {
			if err := env.Step(actions[i]); err != nil {
				return fmt.Errorf("step %d: stepping environment %d: %w", t, i, err)
			}
		}
	}
	return nil
}
