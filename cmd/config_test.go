package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/gocalc/cmd"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, cmd.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := cmd.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "> ", cfg.REPL.Prompt)
	assert.False(t, cfg.REPL.History)
	assert.Equal(t, int64(10000), cfg.Eval.MaxDepth)
	assert.Equal(t, int64(-1), cfg.Eval.Precision)
	assert.Equal(t, cmd.FormatText, cfg.Batch.Format)
	assert.Equal(t, cmd.ColorAuto, cfg.Output.Color)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `
[eval]
precision = 4

[batch]
format = "msgpack"
`)

	cfg, err := cmd.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cfg.Eval.Precision)
	assert.Equal(t, cmd.FormatMsgpack, cfg.Batch.Format)
	assert.Equal(t, "> ", cfg.REPL.Prompt)
	assert.Equal(t, int64(4), cfg.Batch.Jobs)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		message string
	}{
		{"malformed", "[eval\n", "failed to parse TOML"},
		{"unknown key", "[eval]\nprecison = 3\n", "unknown keys: eval.precison"},
		{"unknown table", "[server]\nport = 1\n", "unknown keys: server"},
		{"negative depth", "[eval]\nmax_depth = -5\n", "[eval].max_depth"},
		{"bad precision", "[eval]\nprecision = -3\n", "[eval].precision"},
		{"zero jobs", "[batch]\njobs = 0\n", "[batch].jobs"},
		{"bad format", "[batch]\nformat = \"json\"\n", "[batch].format"},
		{"bad color", "[output]\ncolor = \"always\"\n", "[output].color"},
		{"wrong type", "[eval]\nprecision = \"high\"\n", "failed to parse TOML"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := cmd.LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := cmd.FindConfig(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestConfigFileAppliesToEval(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "[eval]\nprecision = 2\n")

	code, stdout, stderr := runApp(t, "", "--config", path, "eval", "1 / 3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "0.33\n", stdout)

	code, stdout, stderr = runApp(t, "", "--config", path, "--precision", "4", "eval", "1 / 3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "0.3333\n", stdout)
}
