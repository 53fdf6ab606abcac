// Package glob 提供通配符到正则的翻译命令。
package glob

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/command"
)

// Command 通配符翻译命令
var Command = &cli.Command{
	Name:      "glob",
	Usage:     "将通配符模式翻译为正则表达式",
	ArgsUsage: "pattern [candidate...]",
	Action:    action,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "greedy",
			Value: command.Defaults.Glob.Greedy,
			Usage: "'*' 翻译为贪婪量词",
		},
	},
}
