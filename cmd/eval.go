package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"snake-rl/report"
	"snake-rl/rl"
	"snake-rl/snake"
	"snake-rl/ui"
)

func EvalCommand() *cobra.Command {
	var episodes int
	var checkpoint, out string
	var latest bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a saved Q-table with a frozen greedy policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkpoint == "" && !latest {
				return fmt.Errorf("need --checkpoint or --latest")
			}
			if checkpoint == "" {
				runDir, err := report.LatestRunDir(runsRoot)
				if err != nil {
					return err
				}
				checkpoint = filepath.Join(runDir, "qtable.json")
			}
			return runEval(checkpoint, episodes, out)
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 100, "Number of greedy evaluation episodes")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "Q-table checkpoint to evaluate")
	cmd.Flags().BoolVar(&latest, "latest", false, "Evaluate the checkpoint of the most recent run")
	cmd.Flags().StringVar(&out, "out", "", "Report path (defaults to eval.json next to the checkpoint)")
	return cmd
}

func runEval(checkpoint string, episodes int, out string) error {
	if episodes < 1 {
		return fmt.Errorf("need at least one evaluation episode, got %d", episodes)
	}
	env, err := snake.NewEnv(snake.Config{Size: grid, MaxSteps: maxSteps, Seed: seed})
	if err != nil {
		return err
	}
	table, err := rl.NewQTablePolicy(env.NumActions(), 1, 1, seed)
	if err != nil {
		return err
	}
	// Nothing to evaluate without a readable table.
	if err := table.Load(checkpoint); err != nil {
		return err
	}

	renderer := rl.NoopRenderer()
	if render {
		renderer = ui.NewRenderer("Snake (evaluation)", grid, renderCellPx, fps, frameSkip)
	}
	defer renderer.Close()

	runner := rl.NewRunner(env, table, renderer)
	result := runner.Evaluate(episodes)

	evalReport := report.NewEvalReport(checkpoint, grid, seed, result)
	if out == "" {
		out = filepath.Join(filepath.Dir(checkpoint), "eval.json")
	}
	if err := report.SaveJSON(out, evalReport); err != nil {
		return err
	}

	fmt.Printf("[eval] %s -> mean=%.2f std=%.2f min=%d max=%d\n",
		out, evalReport.MeanScore, evalReport.StdScore, evalReport.MinScore, evalReport.MaxScore)
	return nil
}
