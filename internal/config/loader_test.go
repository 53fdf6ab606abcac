package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	// 路径都不存在时返回默认配置
	cfg, err := load(nil, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeTempConfig(t, ".bashsub.yaml", `
expand:
  strict: true
  vars-file: vars.yaml
`)

	cfg, err := load(nil, []string{path})
	require.NoError(t, err)
	assert.True(t, cfg.Expand.Strict)
	assert.Equal(t, "vars.yaml", cfg.Expand.VarsFile)
	// 文件未提及的字段保持默认值
	assert.True(t, cfg.Glob.Greedy)
}

func TestLoad_ConfigFileJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"glob": {"greedy": false}}`)

	cfg, err := load(nil, []string{path})
	require.NoError(t, err)
	assert.False(t, cfg.Glob.Greedy)
}

func TestLoad_ConfigFileExpansion(t *testing.T) {
	// 配置值本身支持 Shell 参数展开
	t.Setenv("BASHSUB_TEST_OUT", "/tmp/result.txt")
	path := writeTempConfig(t, ".bashsub.yaml", `
expand:
  output: ${BASHSUB_TEST_OUT:-default.txt}
`)

	cfg, err := load(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/result.txt", cfg.Expand.Output)
}

func TestLoad_FirstFileWins(t *testing.T) {
	first := writeTempConfig(t, "a.yaml", "expand: {output: first}")
	second := writeTempConfig(t, "b.yaml", "expand: {output: second}")

	cfg, err := load(nil, []string{first, second})
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Expand.Output)
}

func TestLoad_EnvBindings(t *testing.T) {
	t.Setenv("BASHSUB_EXPAND_STRICT", "true")
	t.Setenv("BASHSUB_GLOB_GREEDY", "false")

	cfg, err := load(nil, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)
	assert.True(t, cfg.Expand.Strict)
	assert.False(t, cfg.Glob.Greedy)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, ".bashsub.yaml", "expand: {output: from-file}")
	t.Setenv("BASHSUB_EXPAND_OUTPUT", "from-env")

	cfg, err := load(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Expand.Output)
}

func TestLoad_FlagOverrides(t *testing.T) {
	t.Setenv("BASHSUB_EXPAND_STRICT", "true")

	var cfg *Config
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict"},
			&cli.StringFlag{Name: "output"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = load(cmd, nil)

			return err
		},
	}

	// 显式 flag 覆盖环境变量
	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--strict=false", "--output", "out.txt"}))
	require.NotNil(t, cfg)
	assert.False(t, cfg.Expand.Strict)
	assert.Equal(t, "out.txt", cfg.Expand.Output)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeTempConfig(t, ".bashsub.yaml", "expand: [not a map")

	_, err := load(nil, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_BadExpansionFails(t *testing.T) {
	path := writeTempConfig(t, ".bashsub.yaml", "expand: {output: '${BROKEN'}")

	_, err := load(nil, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expand config file")
}

func TestPaths(t *testing.T) {
	paths := Paths()
	require.NotEmpty(t, paths)
	assert.Equal(t, ".bashsub.yaml", paths[0])
	assert.Equal(t, "/etc/bashsub/config.yaml", paths[len(paths)-1])
}
