package expand

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/config"
	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/bashsub"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	vars, err := collectVars(cmd, cfg)
	if err != nil {
		return err
	}

	templates, err := collectTemplates(cmd)
	if err != nil {
		return err
	}

	var opts []bashsub.Option
	if cfg.Expand.Strict {
		opts = append(opts, bashsub.WithStrict())
	}
	sub := bashsub.New(vars, opts...)

	var out strings.Builder
	for _, tmpl := range templates {
		result, err := sub.Substitute(tmpl)
		if err != nil {
			return err
		}
		out.WriteString(result)
		out.WriteByte('\n')
	}

	return writeOutput(cfg.Expand.Output, out.String())
}

// collectVars 按优先级合并变量来源：进程环境 → 变量文件 → --var。
func collectVars(cmd *cli.Command, cfg *config.Config) (map[string]string, error) {
	vars := map[string]string{}
	if !cfg.Expand.NoEnv {
		vars = bashsub.Environ()
	}

	if path := cfg.Expand.VarsFile; path != "" {
		fileVars, err := loadVarsFile(path)
		if err != nil {
			return nil, err
		}
		for name, value := range fileVars {
			vars[name] = value
		}
		slog.Debug("Loaded vars file", "path", path, "count", len(fileVars))
	}

	for name, value := range cmd.StringMap("var") {
		vars[name] = value
	}

	return vars, nil
}

// loadVarsFile 读取 YAML/JSON 变量文件为扁平的 name→value 映射。
//
// 标量值（数字、布尔）弱类型转换为字符串，嵌套结构视为格式错误。
func loadVarsFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is user-provided on purpose
	if err != nil {
		return nil, fmt.Errorf("read vars file %s: %w", path, err)
	}

	raw := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse vars file %s: %w", path, err)
	}

	vars := map[string]string{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &vars,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("vars file %s must be a flat name→value map: %w", path, err)
	}

	return vars, nil
}

// collectTemplates 收集待展开文本：--file 优先，其次位置参数，最后标准输入。
func collectTemplates(cmd *cli.Command) ([]string, error) {
	if path := cmd.String("file"); path != "" {
		content, err := readTemplateFile(path)
		if err != nil {
			return nil, err
		}

		return []string{strings.TrimSuffix(content, "\n")}, nil
	}

	if cmd.Args().Len() > 0 {
		return cmd.Args().Slice(), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return []string{strings.TrimSuffix(string(content), "\n")}, nil
}

func readTemplateFile(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(content), nil
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is user-provided on purpose
	if err != nil {
		return "", fmt.Errorf("read template file %s: %w", path, err)
	}

	return string(content), nil
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Print(content)

		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // result file is not sensitive
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	slog.Debug("Wrote output file", "path", path, "bytes", len(content))

	return nil
}
