package report

import (
	"gonum.org/v1/gonum/stat"

	"snake-rl/rl"
)

// TrainSummary is the structured record written once at the end of a
// training run.
type TrainSummary struct {
	Episodes int     `json:"episodes"`
	Grid     int     `json:"grid"`
	Alpha    float64 `json:"alpha"`
	Gamma    float64 `json:"gamma"`
	EpsStart float64 `json:"eps_start"`
	EpsEnd   float64 `json:"eps_end"`
	MaxSteps int     `json:"max_steps"`
	Seed     int64   `json:"seed"`

	MeanScore   float64 `json:"mean_score"`
	StdScore    float64 `json:"std_score"`
	Last100Mean float64 `json:"last100_mean"`
	BestScore   int     `json:"best_score"`
	BestEpisode int     `json:"best_episode"`
}

func NewTrainSummary(cfg *rl.Config, result *rl.TrainResult) TrainSummary {
	scores := toFloats(result.Scores)
	summary := TrainSummary{
		Episodes:    cfg.Episodes,
		Grid:        cfg.Grid,
		Alpha:       cfg.Alpha,
		Gamma:       cfg.Gamma,
		EpsStart:    cfg.EpsStart,
		EpsEnd:      cfg.EpsEnd,
		MaxSteps:    cfg.MaxSteps,
		Seed:        cfg.Seed,
		BestScore:   result.BestScore,
		BestEpisode: result.BestEpisode,
	}
	if len(scores) > 0 {
		summary.MeanScore = stat.Mean(scores, nil)
		summary.StdScore = stat.PopStdDev(scores, nil)
		summary.Last100Mean = stat.Mean(lastN(scores, 100), nil)
	}
	return summary
}

// EvalReport is the structured record of a greedy-policy evaluation.
type EvalReport struct {
	Checkpoint string `json:"checkpoint"`
	Episodes   int    `json:"episodes"`
	Grid       int    `json:"grid"`
	Seed       int64  `json:"seed"`

	MeanScore float64 `json:"mean_score"`
	StdScore  float64 `json:"std_score"`
	MinScore  int     `json:"min_score"`
	MaxScore  int     `json:"max_score"`
}

func NewEvalReport(checkpoint string, grid int, seed int64, result *rl.EvalResult) EvalReport {
	report := EvalReport{
		Checkpoint: checkpoint,
		Episodes:   len(result.Scores),
		Grid:       grid,
		Seed:       seed,
	}
	if len(result.Scores) == 0 {
		return report
	}
	scores := toFloats(result.Scores)
	report.MeanScore = stat.Mean(scores, nil)
	report.StdScore = stat.PopStdDev(scores, nil)
	report.MinScore = result.Scores[0]
	report.MaxScore = result.Scores[0]
	for _, s := range result.Scores {
		if s < report.MinScore {
			report.MinScore = s
		}
		if s > report.MaxScore {
			report.MaxScore = s
		}
	}
	return report
}

// MovingAverage returns the running mean over a trailing window.
func MovingAverage(xs []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(xs))
	sum := 0.0
	for i, x := range xs {
		sum += x
		if i >= window {
			sum -= xs[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

func toFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

func lastN(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}
