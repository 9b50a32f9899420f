package main

import (
	"fmt"
	"os"

	"snake-rl/cmd"
)

func main() {
	rootCommand := cmd.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
