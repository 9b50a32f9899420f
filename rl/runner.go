package rl

import "context"

// Renderer is the draw-frame capability the runner invokes after each
// step. The simulation never depends on it; the no-op implementation
// keeps training headless.
type Renderer interface {
	Frame(Environment)
	Close()
}

type noopRenderer struct{}

func (noopRenderer) Frame(Environment) {}
func (noopRenderer) Close()            {}

func NoopRenderer() Renderer { return noopRenderer{} }

// EpisodeResult summarizes one episode.
type EpisodeResult struct {
	Episode int
	Score   int // food eaten
	Steps   int
	Reward  float64 // summed over the episode
	Timeout bool    // ended on the stalling cutoff, not a collision
}

// TrainResult aggregates a training run.
type TrainResult struct {
	Scores      []int
	BestScore   int
	BestEpisode int
	Interrupted bool
}

// EvalResult aggregates a greedy-policy evaluation run.
type EvalResult struct {
	Scores []int
	Steps  []int
}

// Runner drives the environment and policy through episodes. It owns
// both exclusively; there is a single thread of control.
type Runner struct {
	env      Environment
	policy   Policy
	renderer Renderer
}

func NewRunner(env Environment, policy Policy, renderer Renderer) *Runner {
	if renderer == nil {
		renderer = NoopRenderer()
	}
	return &Runner{env: env, policy: policy, renderer: renderer}
}

// RunEpisode plays one episode to termination. With train set, every
// transition updates the policy; otherwise the policy is frozen and
// acts greedily. The environment owns the step cutoff, so the loop
// always terminates.
func (r *Runner) RunEpisode(train bool) EpisodeResult {
	state := r.env.Reset()
	r.renderer.Frame(r.env)

	var res EpisodeResult
	for {
		action := r.policy.SelectAction(state, train)
		nextState, reward, done, info := r.env.Step(action)
		if train {
			r.policy.Update(state, action, reward, nextState, done)
		}
		r.renderer.Frame(r.env)

		res.Steps++
		res.Reward += reward
		if info.Ate {
			res.Score++
		}
		if done {
			res.Timeout = info.Timeout
			return res
		}
		state = nextState
	}
}

// Train runs the configured number of episodes with the exploration
// rate following the schedule. Cancelling the context stops between
// episodes, never mid-update, so the policy is always left at a safe
// point. The progress callback, if set, is invoked after each episode.
func (r *Runner) Train(ctx context.Context, episodes int, schedule *EpsilonSchedule,
	progress func(epsilon float64, res EpisodeResult)) *TrainResult {

	result := &TrainResult{
		Scores:      make([]int, 0, episodes),
		BestScore:   -1,
		BestEpisode: -1,
	}
	for ep := 0; ep < episodes; ep++ {
		select {
		case <-ctx.Done():
			result.Interrupted = true
			return result
		default:
		}

		epsilon := schedule.At(ep)
		r.policy.SetEpsilon(epsilon)

		res := r.RunEpisode(true)
		res.Episode = ep
		result.Scores = append(result.Scores, res.Score)
		if res.Score > result.BestScore {
			result.BestScore = res.Score
			result.BestEpisode = ep
		}
		if progress != nil {
			progress(epsilon, res)
		}
	}
	return result
}

// Evaluate runs greedy-policy episodes with no learning.
func (r *Runner) Evaluate(episodes int) *EvalResult {
	result := &EvalResult{
		Scores: make([]int, 0, episodes),
		Steps:  make([]int, 0, episodes),
	}
	for ep := 0; ep < episodes; ep++ {
		res := r.RunEpisode(false)
		result.Scores = append(result.Scores, res.Score)
		result.Steps = append(result.Steps, res.Steps)
	}
	return result
}
