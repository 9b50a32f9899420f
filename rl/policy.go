package rl

import "math/rand"

// Policy selects actions for states and optionally learns from
// transitions. When explore is false the policy must be deterministic
// and read-only, so evaluation runs are reproducible.
type Policy interface {
	SelectAction(state State, explore bool) int
	Update(state State, action int, reward float64, nextState State, done bool)
	SetEpsilon(epsilon float64)
}

// RandomPolicy picks uniformly among the actions. Used by the demo
// mode; it never learns.
type RandomPolicy struct {
	actions int
	rng     *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy(actions int, seed int64) *RandomPolicy {
	return &RandomPolicy{
		actions: actions,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) SelectAction(State, bool) int {
	return r.rng.Intn(r.actions)
}

func (r *RandomPolicy) Update(State, int, float64, State, bool) {}

func (r *RandomPolicy) SetEpsilon(float64) {}
