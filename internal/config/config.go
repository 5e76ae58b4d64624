package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// supportedLogLevels lists the accepted logging.level values.
var supportedLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	Onboarding OnboardingConfig `toml:"onboarding"`
	Tasks      TasksConfig      `toml:"tasks"`
	Keys       KeyConfig        `toml:"keys"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

// DevFileConfig controls the dev-mode log file sink. An empty Dir means the platform log directory.
type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type OnboardingConfig struct {
	Enabled bool `toml:"enabled"`
}

type TasksConfig struct {
	Seed                bool `toml:"seed"`
	SimilarityThreshold int  `toml:"similarity_threshold"`
}

// KeyConfig holds optional key overrides. Blank values keep the built-in bindings.
type KeyConfig struct {
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	FocusInput string `toml:"focus_input"`
	Copy       string `toml:"copy"`
	Next       string `toml:"next"`
	Back       string `toml:"back"`
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
			},
		},
		Onboarding: OnboardingConfig{
			Enabled: true,
		},
		Tasks: TasksConfig{
			Seed:                true,
			SimilarityThreshold: 2,
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if !slices.Contains(supportedLogLevels, level) {
		return fmt.Errorf("invalid logging.level: %q (expected one of %s)", c.Logging.Level, strings.Join(supportedLogLevels, ", "))
	}
	if c.Tasks.SimilarityThreshold < 0 {
		return errors.New("tasks.similarity_threshold must be >= 0")
	}
	return nil
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
