// Package expand 提供 Shell 参数展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/command"
)

// Command 展开命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "对文本执行 Shell 参数展开",
	ArgsUsage: "[template...]",
	Action:    action,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Value: command.Defaults.Expand.Strict,
			Usage: "严格模式：引用未设置变量报错",
		},
		&cli.BoolFlag{
			Name:  "no-env",
			Value: command.Defaults.Expand.NoEnv,
			Usage: "不从进程环境读取变量",
		},
		&cli.StringFlag{
			Name:  "vars-file",
			Value: command.Defaults.Expand.VarsFile,
			Usage: "变量文件路径 (YAML/JSON)",
		},
		&cli.StringMapFlag{
			Name:    "var",
			Aliases: []string{"v"},
			Usage:   "额外变量 (name=value，可重复)",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "模板文件路径，'-' 为标准输入",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Expand.Output,
			Usage:   "输出文件路径，空为标准输出",
		},
	},
}
