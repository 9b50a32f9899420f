package rl

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// QTablePolicy is an epsilon-greedy tabular Q-learning agent. The
// table is a sparse map from state hash to a fixed-size slice of
// action values; unseen states implicitly hold all zeroes.
type QTablePolicy struct {
	actions int
	alpha   float64
	gamma   float64
	epsilon float64
	table   map[string][]float64
	rng     *rand.Rand
}

var _ Policy = &QTablePolicy{}

func NewQTablePolicy(actions int, alpha, gamma float64, seed int64) (*QTablePolicy, error) {
	if actions < 1 {
		return nil, fmt.Errorf("qtable: need at least one action, got %d", actions)
	}
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("qtable: learning rate %v outside (0,1]", alpha)
	}
	if gamma < 0 || gamma > 1 {
		return nil, fmt.Errorf("qtable: discount %v outside [0,1]", gamma)
	}
	return &QTablePolicy{
		actions: actions,
		alpha:   alpha,
		gamma:   gamma,
		table:   make(map[string][]float64),
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// SelectAction is epsilon-greedy while exploring and pure greedy
// otherwise. Ties break on the lowest action index so that greedy
// selection is deterministic.
func (q *QTablePolicy) SelectAction(state State, explore bool) int {
	if explore && q.rng.Float64() < q.epsilon {
		return q.rng.Intn(q.actions)
	}
	return argmax(q.lookup(state.Hash()))
}

// Update applies the one-step Q-learning rule. A terminal transition
// contributes no bootstrap value.
func (q *QTablePolicy) Update(state State, action int, reward float64, nextState State, done bool) {
	if action < 0 || action >= q.actions {
		panic(fmt.Sprintf("qtable: action %d outside [0,%d)", action, q.actions))
	}
	vals := q.ensure(state.Hash())
	target := reward
	if !done {
		target += q.gamma * maxOf(q.lookup(nextState.Hash()))
	}
	vals[action] += q.alpha * (target - vals[action])
}

func (q *QTablePolicy) SetEpsilon(epsilon float64) { q.epsilon = epsilon }

func (q *QTablePolicy) Epsilon() float64 { return q.epsilon }

// States returns the number of distinct states visited so far.
func (q *QTablePolicy) States() int { return len(q.table) }

// Values returns a copy of the stored action values for a state hash,
// all zeroes if the state was never updated.
func (q *QTablePolicy) Values(hash string) []float64 {
	vals := make([]float64, q.actions)
	copy(vals, q.lookup(hash))
	return vals
}

// lookup reads without mutating the table, so greedy action selection
// stays side-effect free.
func (q *QTablePolicy) lookup(hash string) []float64 {
	if vals, ok := q.table[hash]; ok {
		return vals
	}
	return make([]float64, q.actions)
}

func (q *QTablePolicy) ensure(hash string) []float64 {
	vals, ok := q.table[hash]
	if !ok {
		vals = make([]float64, q.actions)
		q.table[hash] = vals
	}
	return vals
}

func argmax(vals []float64) int {
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}
	return best
}

func maxOf(vals []float64) float64 {
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// checkpoint is the serialized form of the table. encoding/json emits
// the shortest float64 representation that parses back to the same
// bits, so a save/load round trip is exact.
type checkpoint struct {
	Actions int                  `json:"actions"`
	QTable  map[string][]float64 `json:"qtable"`
}

// Save writes the full table to path, creating parent directories.
func (q *QTablePolicy) Save(path string) error {
	data, err := json.MarshalIndent(checkpoint{Actions: q.actions, QTable: q.table}, "", "  ")
	if err != nil {
		return fmt.Errorf("qtable: marshaling checkpoint: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("qtable: creating checkpoint dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("qtable: writing checkpoint: %w", err)
	}
	return nil
}

// Load replaces the table with the checkpoint at path. A missing or
// malformed file is an error; starting fresh is the caller's explicit
// decision, never a silent fallback.
func (q *QTablePolicy) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("qtable: reading checkpoint: %w", err)
	}
	var cp checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return fmt.Errorf("qtable: corrupt checkpoint %s: %w", path, err)
	}
	if cp.Actions != q.actions {
		return fmt.Errorf("qtable: checkpoint has %d actions, want %d", cp.Actions, q.actions)
	}
	table := cp.QTable
	if table == nil {
		table = make(map[string][]float64)
	}
	for hash, vals := range table {
		if len(vals) != q.actions {
			return fmt.Errorf("qtable: corrupt checkpoint %s: state %q has %d values, want %d",
				path, hash, len(vals), q.actions)
		}
	}
	q.table = table
	return nil
}
