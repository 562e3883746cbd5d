package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/leonardinius/gocalc/internal/solver"
)

// ConfigFileName is looked up from the working directory upwards when no
// --config flag is given.
const ConfigFileName = "gocalc.toml"

// DefaultJobs is the batch concurrency when neither config nor flag set it.
const DefaultJobs = 4

const (
	FormatText    = "text"
	FormatMsgpack = "msgpack"

	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Eval   EvalConfig   `toml:"eval"`
	Batch  BatchConfig  `toml:"batch"`
	Output OutputConfig `toml:"output"`
}

type REPLConfig struct {
	Prompt string `toml:"prompt"`
	// History keeps an in-memory readline history for the session.
	History bool `toml:"history"`
}

type EvalConfig struct {
	MaxDepth  int64 `toml:"max_depth"`
	Precision int64 `toml:"precision"`
}

type BatchConfig struct {
	Jobs   int64  `toml:"jobs"`
	Format string `toml:"format"`
}

type OutputConfig struct {
	Color string `toml:"color"`
}

func DefaultConfig() Config {
	return Config{
		REPL:   REPLConfig{Prompt: "> ", History: false},
		Eval:   EvalConfig{MaxDepth: solver.DefaultMaxDepth, Precision: solver.DefaultPrecision},
		Batch:  BatchConfig{Jobs: DefaultJobs, Format: FormatText},
		Output: OutputConfig{Color: ColorAuto},
	}
}

// LoadConfig decodes path over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig walks from startDir to the filesystem root looking for
// ConfigFileName.
func FindConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// ResolveConfig loads path when given, else the nearest ConfigFileName,
// else the defaults.
func ResolveConfig(path string) (Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	found, ok, err := FindConfig(".")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return DefaultConfig(), nil
	}
	return LoadConfig(found)
}

func (c Config) Validate() error {
	if c.Eval.MaxDepth < 0 {
		return fmt.Errorf("[eval].max_depth must not be negative, got %d", c.Eval.MaxDepth)
	}
	if c.Eval.Precision < solver.DefaultPrecision {
		return fmt.Errorf("[eval].precision must be -1 or more, got %d", c.Eval.Precision)
	}
	if c.Batch.Jobs < 1 {
		return fmt.Errorf("[batch].jobs must be positive, got %d", c.Batch.Jobs)
	}
	switch c.Batch.Format {
	case FormatText, FormatMsgpack:
	default:
		return fmt.Errorf("[batch].format must be %q or %q, got %q", FormatText, FormatMsgpack, c.Batch.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if _, err := c.maxDepth(); err != nil {
		return err
	}
	if _, err := c.precision(); err != nil {
		return err
	}
	if _, err := c.jobs(); err != nil {
		return err
	}
	return nil
}

func (c Config) maxDepth() (int, error) {
	n, err := safecast.Conv[int](c.Eval.MaxDepth)
	if err != nil {
		return 0, fmt.Errorf("[eval].max_depth: %w", err)
	}
	return n, nil
}

func (c Config) precision() (int, error) {
	n, err := safecast.Conv[int](c.Eval.Precision)
	if err != nil {
		return 0, fmt.Errorf("[eval].precision: %w", err)
	}
	return n, nil
}

func (c Config) jobs() (int, error) {
	n, err := safecast.Conv[int](c.Batch.Jobs)
	if err != nil {
		return 0, fmt.Errorf("[batch].jobs: %w", err)
	}
	return n, nil
}

// colorize resolves the color setting. "auto" colours only a terminal
// that has not opted out via NO_COLOR.
func (c Config) colorize(isTerminal bool) bool {
	switch c.Output.Color {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return isTerminal && !color.NoColor
	}
}
