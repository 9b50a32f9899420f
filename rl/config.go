package rl

import "fmt"

// Config is the full training configuration surface. The CLI layer
// validates it before the core runs; the core constructors re-check
// their own slices of it.
type Config struct {
	Grid     int
	Episodes int
	MaxSteps int
	Seed     int64
	Alpha    float64
	Gamma    float64
	EpsStart float64
	EpsEnd   float64
	Tag      string
}

func (c *Config) Validate() error {
	if c.Grid < 3 {
		return fmt.Errorf("config: grid size %d too small, need at least 3", c.Grid)
	}
	if c.Episodes < 1 {
		return fmt.Errorf("config: need at least one episode, got %d", c.Episodes)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("config: max steps must be at least 1, got %d", c.MaxSteps)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("config: learning rate %v outside (0,1]", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("config: discount %v outside [0,1]", c.Gamma)
	}
	if c.EpsEnd < 0 || c.EpsStart < c.EpsEnd {
		return fmt.Errorf("config: need epsStart >= epsEnd >= 0, got %v and %v", c.EpsStart, c.EpsEnd)
	}
	return nil
}
