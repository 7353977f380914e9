package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override, e.g. MAZE_GRID_WIDTH.
	EnvPrefix = "MAZE_"

	// ConfigEnvVar names an explicit config file and wins over search paths.
	ConfigEnvVar = "MAZE_CONFIG"
)

// Loader merges configuration sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
	used        string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the config file search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix replaces the environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader returns a Loader searching mazegen.yaml and
// config/mazegen.yaml.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{"mazegen.yaml", "config/mazegen.yaml"},
		envPrefix:   EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges, in increasing priority:
//  1. defaults
//  2. the first existing config file (optional)
//  3. environment variables
//
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigFile returns the file merged by the last Load, or "" if none.
func (l *Loader) ConfigFile() string {
	return l.used
}

// Defaults returns the built-in settings as flat koanf keys.
func Defaults() map[string]any {
	return map[string]any{
		"grid.width":  20,
		"grid.height": 15,
		"grid.seed":   0,

		"animation.enabled":   false,
		"animation.speed":     50.0,
		"animation.max_speed": 100.0,
		"animation.timeout":   time.Duration(0),

		"solve.enabled":     true,
		"solve.source":      -1,
		"solve.destination": -1,

		"render.format":    "ascii",
		"render.output":    "-",
		"render.cell_side": 20,
		"render.decorate":  true,

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"metrics.enabled": false,
		"metrics.listen":  ":9090",
		"metrics.path":    "/metrics",
	}
}

// loadConfigFile merges the file named by ConfigEnvVar, else the first
// search path that exists. A missing file is not an error; a named file
// that is missing is.
func (l *Loader) loadConfigFile() error {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return l.loadFile(path)
	}

	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err == nil {
			return l.loadFile(path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	return nil
}

func (l *Loader) loadFile(path string) error {
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	l.used = path

	return nil
}

// loadEnv maps MAZE_SECTION_FIELD_NAME to section.field_name: the first
// underscore separates the section, the rest belong to the field.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, any) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}

		return strings.Replace(key, "_", ".", 1), value
	}), nil)
}
