// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 按 [Paths] 顺序查找首个命中文件
//  3. 环境变量 - BASHSUB_ 前缀
//  4. CLI flags - 仅用户显式设置的 flag
//
// 配置文件在解析前会经过一次 Shell 参数展开，
// 因此文件里可以写 ${HOME}/vars.yaml 这类引用。
package config

// Config 应用配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"展开命令配置"`
	Glob   GlobConfig   `json:"glob" desc:"通配符翻译配置"`
}

// ExpandConfig 展开命令配置。
type ExpandConfig struct {
	Strict   bool   `json:"strict" desc:"严格模式：引用未设置变量报错"`
	NoEnv    bool   `json:"no-env" desc:"不从进程环境读取变量"`
	VarsFile string `json:"vars-file" desc:"变量文件路径 (YAML/JSON)"`
	Output   string `json:"output" desc:"输出文件路径，空为标准输出"`
}

// GlobConfig 通配符翻译配置。
type GlobConfig struct {
	Greedy bool `json:"greedy" desc:"'*' 翻译为贪婪量词"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			Strict: false,
			NoEnv:  false,
		},
		Glob: GlobConfig{
			Greedy: true,
		},
	}
}
