// Package cmd wires the CLI: flag parsing and validation live here,
// the core packages assume a valid configuration.
package cmd

import "github.com/spf13/cobra"

var (
	grid      int
	seed      int64
	maxSteps  int
	runsRoot  string
	render    bool
	fps       int
	frameSkip int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "snake-rl",
		Short:         "Train and evaluate a tabular Q-learning agent on grid Snake",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().IntVarP(&grid, "grid", "g", 12, "Side of the square board (at least 3)")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed")
	rootCommand.PersistentFlags().IntVar(&maxSteps, "max-steps", 600, "Step cutoff per episode")
	rootCommand.PersistentFlags().StringVarP(&runsRoot, "save", "s", "artifacts/runs", "Root folder for run artifacts")
	rootCommand.PersistentFlags().BoolVar(&render, "render", false, "Draw the board to a window")
	rootCommand.PersistentFlags().IntVar(&fps, "fps", 20, "Target frames per second when rendering")
	rootCommand.PersistentFlags().IntVar(&frameSkip, "frame-skip", 2, "Draw every n-th frame when rendering")
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(EvalCommand())
	rootCommand.AddCommand(DemoCommand())
	return rootCommand
}

const renderCellPx = 32
