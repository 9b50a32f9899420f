package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"snake-rl/report"
	"snake-rl/rl"
	"snake-rl/snake"
	"snake-rl/ui"
)

func TrainCommand() *cobra.Command {
	var episodes int
	var alpha, gamma, epsStart, epsEnd float64
	var tag, policyName, checkpoint string
	var temperature float64

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-table and write run artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &rl.Config{
				Grid:     grid,
				Episodes: episodes,
				MaxSteps: maxSteps,
				Seed:     seed,
				Alpha:    alpha,
				Gamma:    gamma,
				EpsStart: epsStart,
				EpsEnd:   epsEnd,
				Tag:      tag,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runTrain(cfg, policyName, temperature, checkpoint)
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 2500, "Number of training episodes")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "Learning rate in (0,1]")
	cmd.Flags().Float64Var(&gamma, "gamma", 0.90, "Discount factor in [0,1]")
	cmd.Flags().Float64Var(&epsStart, "eps-start", 1.0, "Exploration rate at episode 0")
	cmd.Flags().Float64Var(&epsEnd, "eps-end", 0.001, "Exploration rate at the final episode")
	cmd.Flags().StringVarP(&tag, "tag", "t", "main", "Tag appended to the run folder name")
	cmd.Flags().StringVar(&policyName, "policy", "egreedy", "Exploration policy: egreedy or softmax")
	cmd.Flags().Float64Var(&temperature, "temperature", 1.0, "Softmax temperature (softmax policy only)")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "Resume from an existing Q-table checkpoint")
	return cmd
}

func runTrain(cfg *rl.Config, policyName string, temperature float64, checkpoint string) error {
	runDir, err := report.MakeRunDir(runsRoot, cfg.Tag)
	if err != nil {
		return err
	}
	if err := report.SaveJSON(filepath.Join(runDir, "config.json"), cfg); err != nil {
		return err
	}

	env, err := snake.NewEnv(snake.Config{Size: cfg.Grid, MaxSteps: cfg.MaxSteps, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	table, err := rl.NewQTablePolicy(env.NumActions(), cfg.Alpha, cfg.Gamma, cfg.Seed)
	if err != nil {
		return err
	}
	if checkpoint != "" {
		// Resuming is explicit; a missing or corrupt checkpoint is
		// fatal rather than silently starting fresh.
		if err := table.Load(checkpoint); err != nil {
			return err
		}
	}

	var policy rl.Policy
	switch policyName {
	case "egreedy":
		policy = table
	case "softmax":
		policy = rl.NewSoftMaxPolicy(table, temperature, uint64(cfg.Seed))
	default:
		return fmt.Errorf("unknown policy %q, want egreedy or softmax", policyName)
	}

	schedule, err := rl.NewEpsilonSchedule(cfg.EpsStart, cfg.EpsEnd, cfg.Episodes)
	if err != nil {
		return err
	}

	renderer := rl.NoopRenderer()
	if render {
		renderer = ui.NewRenderer("Snake Q-learning (training)", cfg.Grid, renderCellPx, fps, frameSkip)
	}
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	progress := report.NewProgress(cfg.Episodes)
	window := make([]int, 0, 100)
	windowSum := 0
	best := 0
	runner := rl.NewRunner(env, policy, renderer)
	result := runner.Train(ctx, cfg.Episodes, schedule, func(epsilon float64, res rl.EpisodeResult) {
		window = append(window, res.Score)
		windowSum += res.Score
		if len(window) > 100 {
			windowSum -= window[0]
			window = window[1:]
		}
		if res.Score > best {
			best = res.Score
		}
		progress.Update(res.Episode, epsilon, float64(windowSum)/float64(len(window)), best, table.States())
	})
	progress.Stop()

	if result.Interrupted {
		fmt.Printf("interrupted after %d episodes, writing artifacts\n", len(result.Scores))
	}

	// The table is only written here, at a safe point, never
	// mid-update.
	ckpt := filepath.Join(runDir, "qtable.json")
	if err := table.Save(ckpt); err != nil {
		return err
	}
	if err := report.SaveScoresCSV(filepath.Join(runDir, "scores.csv"), result.Scores); err != nil {
		return err
	}
	summary := report.NewTrainSummary(cfg, result)
	if err := report.SaveJSON(filepath.Join(runDir, "metrics.json"), summary); err != nil {
		return err
	}
	if err := report.PlotScores(result.Scores, 100, filepath.Join(runDir, "score_plot.png")); err != nil {
		return err
	}

	fmt.Printf("[run-dir]    %s\n", runDir)
	fmt.Printf("[checkpoint] %s\n", ckpt)
	fmt.Printf("[metrics]    mean=%.2f last100=%.2f best=%d@%d\n",
		summary.MeanScore, summary.Last100Mean, summary.BestScore, summary.BestEpisode)
	return nil
}
