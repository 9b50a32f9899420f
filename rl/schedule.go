package rl

import "fmt"

// EpsilonSchedule interpolates the exploration rate linearly from
// Start at episode 0 down to End at the final episode. The curve is
// monotonically non-increasing by construction.
type EpsilonSchedule struct {
	Start    float64
	End      float64
	Episodes int
}

func NewEpsilonSchedule(start, end float64, episodes int) (*EpsilonSchedule, error) {
	if end < 0 || start < end {
		return nil, fmt.Errorf("schedule: need epsStart >= epsEnd >= 0, got %v and %v", start, end)
	}
	if episodes < 1 {
		return nil, fmt.Errorf("schedule: need at least one episode, got %d", episodes)
	}
	return &EpsilonSchedule{Start: start, End: end, Episodes: episodes}, nil
}

// At returns the exploration rate for a zero-based episode index.
func (s *EpsilonSchedule) At(episode int) float64 {
	// The last episode, and a single-episode run, sit exactly at the
	// end rate; interpolating there would leave rounding residue.
	if episode >= s.Episodes-1 {
		return s.End
	}
	frac := float64(episode) / float64(s.Episodes-1)
	return s.Start - (s.Start-s.End)*frac
}
