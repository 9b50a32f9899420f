// Package snake implements the grid environment: board simulation,
// collision and food logic, reward shaping and the compact state
// encoding consumed by the tabular agent.
package snake

import (
	"fmt"
	"math/rand"

	"snake-rl/rl"
)

// Reward scheme. Eating dominates: no step cost or shaping is applied
// on an eating step.
const (
	RewardEat     = 10.0
	RewardDeath   = -10.0
	RewardStep    = -0.01
	RewardCloser  = 0.05
	RewardFarther = -0.02
)

const initialLength = 2

// Config holds the environment parameters. It is validated by the CLI
// layer; NewEnv re-checks and fails loudly on violations.
type Config struct {
	Size     int // board side, cells are [0,Size)x[0,Size)
	MaxSteps int // stalling cutoff per episode
	Seed     int64
}

// Env owns the board state. Randomness comes exclusively from the
// seeded generator injected at construction, so two environments with
// the same seed and action sequence are bit-identical.
type Env struct {
	size     int
	maxSteps int
	rng      *rand.Rand

	dir      Direction
	body     []Point // tail first, head last
	food     Point
	steps    int
	prevDist int
}

var _ rl.Environment = &Env{}

func NewEnv(cfg Config) (*Env, error) {
	if cfg.Size < 3 {
		return nil, fmt.Errorf("snake: grid size %d too small, need at least 3", cfg.Size)
	}
	if cfg.MaxSteps < 1 {
		return nil, fmt.Errorf("snake: max steps must be at least 1, got %d", cfg.MaxSteps)
	}
	e := &Env{
		size:     cfg.Size,
		maxSteps: cfg.MaxSteps,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
	e.Reset()
	return e, nil
}

// Reset reinitializes the snake to its fixed starting position (length
// 2, heading right, head at the board center), places food on a free
// cell and returns the initial encoded state.
func (e *Env) Reset() rl.State {
	mid := e.size / 2
	e.dir = Right
	e.body = []Point{{X: mid - 1, Y: mid}, {X: mid, Y: mid}}
	e.steps = 0
	e.placeFood()
	e.prevDist = e.head().Manhattan(e.food)
	return e.encode()
}

// Step advances the simulation by one action. It returns the next
// encoded state, the reward, whether the episode ended, and step
// diagnostics. An action outside [0,NumActions) is a contract
// violation and panics.
func (e *Env) Step(action int) (rl.State, float64, bool, rl.StepInfo) {
	if action < 0 || action >= NumActions {
		panic(fmt.Sprintf("snake: action %d outside [0,%d)", action, NumActions))
	}

	e.dir = e.dir.rotated(turn(action))
	newHead := e.head().Add(e.dir.Delta())

	// Collision ends the episode with the position unchanged. The tail
	// cell is exempt unless the snake eats, since it vacates this step.
	willEat := newHead == e.food
	if e.outOfBounds(newHead) || e.onBody(newHead, !willEat) {
		return e.encode(), RewardDeath, true, rl.StepInfo{}
	}

	e.body = append(e.body, newHead)
	var reward float64
	info := rl.StepInfo{Ate: willEat}
	done := false

	if willEat {
		reward = RewardEat
		if !e.placeFood() {
			// Board is full: nothing left to chase.
			done = true
		}
		e.prevDist = newHead.Manhattan(e.food)
	} else {
		e.body = e.body[1:]
		reward = RewardStep
		dist := newHead.Manhattan(e.food)
		if dist < e.prevDist {
			reward += RewardCloser
		} else if dist > e.prevDist {
			reward += RewardFarther
		}
		e.prevDist = dist
	}

	e.steps++
	if e.steps >= e.maxSteps && !done {
		// Stalling cutoff: same reward as a collision, only the info
		// flag tells them apart.
		return e.encode(), RewardDeath, true, rl.StepInfo{Ate: willEat, Timeout: true}
	}

	return e.encode(), reward, done, info
}

func (e *Env) NumActions() int { return NumActions }

// Board accessors, used by the renderer and tests.

func (e *Env) Size() int          { return e.size }
func (e *Env) Head() Point        { return e.head() }
func (e *Env) Food() Point        { return e.food }
func (e *Env) Heading() Direction { return e.dir }
func (e *Env) Steps() int         { return e.steps }
func (e *Env) Length() int        { return len(e.body) }

// Body returns a copy of the snake cells, tail first.
func (e *Env) Body() []Point {
	body := make([]Point, len(e.body))
	copy(body, e.body)
	return body
}

func (e *Env) head() Point {
	return e.body[len(e.body)-1]
}

func (e *Env) outOfBounds(p Point) bool {
	return p.X < 0 || p.X >= e.size || p.Y < 0 || p.Y >= e.size
}

// onBody reports whether p overlaps the snake. With excludeTail set the
// tail cell is skipped because it moves out of the way this step.
func (e *Env) onBody(p Point, excludeTail bool) bool {
	cells := e.body
	if excludeTail {
		cells = cells[1:]
	}
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

// placeFood picks a free cell uniformly at random. It reports false
// when no free cell remains.
func (e *Env) placeFood() bool {
	free := make([]Point, 0, e.size*e.size-len(e.body))
	for y := 0; y < e.size; y++ {
		for x := 0; x < e.size; x++ {
			p := Point{X: x, Y: y}
			if !e.onBody(p, false) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		e.food = Point{X: -1, Y: -1}
		return false
	}
	e.food = free[e.rng.Intn(len(free))]
	return true
}

// danger reports whether moving one cell in the heading rotated by rel
// quarter turns would collide next step.
func (e *Env) danger(rel int) bool {
	next := e.head().Add(e.dir.rotated(rel).Delta())
	return e.outOfBounds(next) || e.onBody(next, true)
}

func (e *Env) encode() State {
	head := e.head()
	return State{
		DangerLeft:  e.danger(-1),
		DangerFront: e.danger(0),
		DangerRight: e.danger(1),
		FoodDX:      sign(e.food.X - head.X),
		FoodDY:      sign(e.food.Y - head.Y),
		Dir:         e.dir,
	}
}
