package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"

	"linearx/errs"
)

const (
	EnvConfigPath    = "LINEAR_CONFIG_PATH"
	EnvLogLevel      = "LINEAR_LOG_LEVEL"
	EnvArrayCapacity = "LINEAR_ARRAY_CAPACITY"
)

const (
	defaultLogLevel      = "info"
	defaultArrayCapacity = 8
)

type Config struct {
	LogLevel      string   `yaml:"log_level"`
	ArrayCapacity int      `yaml:"array_capacity"`
	Values        []int    `yaml:"values"`
	Queue         []string `yaml:"queue"`
}

func NewConfig() *Config {
	return &Config{
		LogLevel:      defaultLogLevel,
		ArrayCapacity: defaultArrayCapacity,
		Values:        []int{3, 7, 6, -2},
		Queue:         []string{"apply", "orange", "kiwi"},
	}
}

// Load starts from NewConfig, loads the given env files (".env" when none is
// given, a missing file is fine), applies the YAML file named by
// LINEAR_CONFIG_PATH if set, then the LINEAR_* environment overrides.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := NewConfig()
	if path := os.Getenv(EnvConfigPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvArrayCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errs.InvalidArgument("config.Load", "%s=%q", EnvArrayCapacity, v)
		}
		cfg.ArrayCapacity = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ArrayCapacity < 0 {
		return errs.InvalidArgument("config.Validate", "array capacity %d", c.ArrayCapacity)
	}
	return nil
}
