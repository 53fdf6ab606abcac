// Package command 提供展开与通配符翻译的命令行功能。
package command

import "github.com/lwmacct/260831-go-pkg-bashsub/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
