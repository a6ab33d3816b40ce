// Command jbatoolkit prints the toolkit board and encodes week seconds
package main

import (
	"context"
	"os"
	"os/signal"
	_ "time/tzdata"

	"jbatoolkit/internal/cli"
	"jbatoolkit/internal/modkit"
	"jbatoolkit/internal/platform/config"
	"jbatoolkit/internal/platform/logger"
)

func main() {
	// logs go to stderr so command output stays pipeable
	logger.Init(logger.ForCLI())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRoot(func() (modkit.Deps, error) {
		return modkit.LoadDeps(config.New())
	})
	if err := root.ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
