package snake

import "fmt"

// Point is a cell on the board. X grows rightwards, Y grows downwards.
type Point struct {
	X int
	Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Manhattan returns the L1 distance between two cells.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is a compass heading, cyclically ordered so that turning
// left or right is an index rotation mod 4.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var dirDeltas = [4]Point{
	{X: 0, Y: -1}, // Up
	{X: 1, Y: 0},  // Right
	{X: 0, Y: 1},  // Down
	{X: -1, Y: 0}, // Left
}

// Delta returns the unit movement of the heading.
func (d Direction) Delta() Point {
	return dirDeltas[d]
}

// rotated returns the heading rotated by rel quarter turns, where
// -1 is a left turn and +1 a right turn.
func (d Direction) rotated(rel int) Direction {
	return Direction((int(d) + rel + 4) % 4)
}

// Actions are relative to the current heading, never absolute.
const (
	TurnLeft = iota
	Straight
	TurnRight

	NumActions = 3
)

// turn maps an action to a heading rotation.
func turn(action int) int {
	switch action {
	case TurnLeft:
		return -1
	case TurnRight:
		return 1
	default:
		return 0
	}
}

// State is the compact encoding the Q-table is keyed by: three danger
// flags for the relative moves, the sign of the food offset from the
// head, and the current heading. It is a pure function of the board;
// the full snake position never reaches the agent.
type State struct {
	DangerLeft  bool
	DangerFront bool
	DangerRight bool
	FoodDX      int // -1, 0 or 1
	FoodDY      int // -1, 0 or 1
	Dir         Direction
}

// Hash renders the state tuple as a stable string key.
func (s State) Hash() string {
	return fmt.Sprintf("%d|%d|%d|%d|%d|%d",
		b2i(s.DangerLeft), b2i(s.DangerFront), b2i(s.DangerRight),
		s.FoodDX, s.FoodDY, s.Dir)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
