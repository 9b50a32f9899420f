// Package rl holds the environment-facing abstractions, the tabular
// Q-learning policies and the episode runner.
package rl

// State is a discrete observation. The Hash is the only key the
// Q-table ever sees, so it must be a stable, pure encoding.
type State interface {
	Hash() string
}

// StepInfo carries per-step diagnostics that do not influence learning.
type StepInfo struct {
	// Ate is set when the step landed on the food cell.
	Ate bool
	// Timeout is set when the episode ended on the stalling cutoff
	// rather than a collision.
	Timeout bool
}

// Environment is a simulated episodic task with a fixed discrete
// action set indexed [0, NumActions).
type Environment interface {
	Reset() State
	Step(action int) (State, float64, bool, StepInfo)
	NumActions() int
}
