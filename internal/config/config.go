package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/aoc.yaml"

const (
	defaultYear          = 2022
	defaultInputDir      = "data"
	defaultLogLevel      = "info"
	defaultTotalSpace    = 70000000
	defaultRequiredFree  = 30000000
	defaultSmallDirLimit = 100000
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		panic(fmt.Sprintf("failed to register loglevel validation: %v", err))
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}

// Load reads the YAML config at path, falling back to AOC_CONFIG_PATH and
// then DefaultPath. A missing file at the default location yields the
// built-in defaults. Environment overrides are applied before validation.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("AOC_CONFIG_PATH")
	}
	if path == "" {
		path = DefaultPath
		explicit = false
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// run on defaults
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Year == 0 {
		cfg.Year = defaultYear
	}
	if cfg.InputDir == "" {
		cfg.InputDir = defaultInputDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Disk.TotalSpace == 0 {
		cfg.Disk.TotalSpace = defaultTotalSpace
	}
	if cfg.Disk.RequiredFree == 0 {
		cfg.Disk.RequiredFree = defaultRequiredFree
	}
	if cfg.Disk.SmallDirLimit == 0 {
		cfg.Disk.SmallDirLimit = defaultSmallDirLimit
	}
}

func applyEnv(cfg *Config) error {
	cfg.InputDir = getEnv("AOC_INPUT_DIR", cfg.InputDir)
	cfg.LogLevel = getEnv("AOC_LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("AOC_LENIENT"); v != "" {
		lenient, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AOC_LENIENT %q: %w", v, err)
		}
		cfg.Lenient = lenient
	}

	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	first := verrs[0]
	return fmt.Errorf("invalid config: %s fails %q (value %v)", first.Namespace(), first.Tag(), first.Value())
}
