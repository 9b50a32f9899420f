package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snake-rl/rl"
	"snake-rl/snake"
	"snake-rl/ui"
)

func DemoCommand() *cobra.Command {
	var episodes int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Watch a random policy play, no learning",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := snake.NewEnv(snake.Config{Size: grid, MaxSteps: maxSteps, Seed: seed})
			if err != nil {
				return err
			}
			renderer := ui.NewRenderer("Snake demo", grid, renderCellPx, fps, frameSkip)
			defer renderer.Close()

			runner := rl.NewRunner(env, rl.NewRandomPolicy(env.NumActions(), seed), renderer)
			for ep := 0; ep < episodes; ep++ {
				res := runner.RunEpisode(false)
				fmt.Printf("episode %d: score=%d steps=%d\n", ep+1, res.Score, res.Steps)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 1, "Number of demo episodes")
	return cmd
}
