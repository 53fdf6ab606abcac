package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/bashsub"
)

// appName 决定默认配置文件名与环境变量前缀。
const appName = "bashsub"

// envBindings 环境变量到配置 key 的映射。
var envBindings = map[string]string{
	"BASHSUB_EXPAND_STRICT":    "expand.strict",
	"BASHSUB_EXPAND_NO_ENV":    "expand.no-env",
	"BASHSUB_EXPAND_VARS_FILE": "expand.vars-file",
	"BASHSUB_EXPAND_OUTPUT":    "expand.output",
	"BASHSUB_GLOB_GREEDY":      "glob.greedy",
}

// flagBindings 显式设置的 CLI flag 对配置的覆盖。
//
// flag 名对不同子命令可能未定义，cli.Command.IsSet 对未定义的
// flag 返回 false，因此同一张表对所有子命令都安全。
var flagBindings = []struct {
	flag  string
	apply func(*Config, *cli.Command)
}{
	{"strict", func(c *Config, cmd *cli.Command) { c.Expand.Strict = cmd.Bool("strict") }},
	{"no-env", func(c *Config, cmd *cli.Command) { c.Expand.NoEnv = cmd.Bool("no-env") }},
	{"vars-file", func(c *Config, cmd *cli.Command) { c.Expand.VarsFile = cmd.String("vars-file") }},
	{"output", func(c *Config, cmd *cli.Command) { c.Expand.Output = cmd.String("output") }},
	{"greedy", func(c *Config, cmd *cli.Command) { c.Glob.Greedy = cmd.Bool("greedy") }},
}

// Paths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.bashsub.yaml - 当前目录应用配置
//  2. ~/.bashsub.yaml - 用户主目录配置
//  3. /etc/bashsub/config.yaml - 系统级配置
func Paths() []string {
	paths := []string{"." + appName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}

	return append(paths, "/etc/"+appName+"/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// cmd 可为 nil，此时跳过 CLI flag 覆盖。
// 配置文件内容先经过 Shell 参数展开再解析，展开变量来自进程环境。
func Load(cmd *cli.Command) (*Config, error) {
	return load(cmd, Paths())
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad(cmd *cli.Command) *Config {
	cfg, err := Load(cmd)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}

	return cfg
}

func load(cmd *cli.Command, paths []string) (*Config, error) {
	cfg := DefaultConfig()
	merged := map[string]any{}

	// 2️⃣ 加载配置文件 (按顺序搜索，找到第一个即停止)
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		expanded, err := bashsub.Substitute(bashsub.Environ(), string(content))
		if err != nil {
			return nil, fmt.Errorf("expand config file %s: %w", path, err)
		}

		fileMap, err := parseConfigBytes(path, []byte(expanded))
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(merged, fileMap)

		slog.Debug("Loaded config from file", "path", path)

		break
	}

	// 3️⃣ 环境变量绑定
	for envKey, configPath := range envBindings {
		if val := os.Getenv(envKey); val != "" {
			setByPath(merged, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}

	if err := decodeConfigMap(merged, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 4️⃣ CLI flags (最高优先级，仅当用户明确指定时)
	if cmd != nil {
		for _, binding := range flagBindings {
			if cmd.IsSet(binding.flag) {
				binding.apply(&cfg, cmd)
			}
		}
	}

	return &cfg, nil
}

// parseConfigBytes 按扩展名解析 YAML 或 JSON 配置内容。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	out := map[string]any{}
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &out)
	} else {
		err = yamlv3.Unmarshal(content, &out)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)

				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// decodeConfigMap 将合并后的 map 解码到配置结构体。
//
// WeaklyTypedInput 让环境变量的字符串值 ("true"、"1") 能落到 bool 字段。
func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
