package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/command/expand"
	"github.com/lwmacct/260831-go-pkg-bashsub/internal/command/glob"
)

func main() {
	app := &cli.Command{
		Name:  "bashsub",
		Usage: "Shell 参数展开工具",
		Commands: []*cli.Command{
			expand.Command,
			glob.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
