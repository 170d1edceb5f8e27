package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"AOC_CONFIG_PATH", "AOC_INPUT_DIR", "AOC_LOG_LEVEL", "AOC_LENIENT"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `year: 2022
input_dir: puzzles
lenient: true
log_level: debug
disk:
  total_space: 1000
  required_free: 400
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.InputDir != "puzzles" {
		t.Errorf("Expected input_dir 'puzzles', got '%s'", cfg.InputDir)
	}
	if !cfg.Lenient {
		t.Error("Expected lenient=true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log_level 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.Disk.TotalSpace != 1000 || cfg.Disk.RequiredFree != 400 {
		t.Errorf("Expected disk 1000/400, got %d/%d", cfg.Disk.TotalSpace, cfg.Disk.RequiredFree)
	}
	// not set in the file
	if cfg.Disk.SmallDirLimit != defaultSmallDirLimit {
		t.Errorf("Expected default small_dir_limit, got %d", cfg.Disk.SmallDirLimit)
	}
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "input_dir: from-env\n")
	t.Setenv("AOC_CONFIG_PATH", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.InputDir != "from-env" {
		t.Errorf("Expected input_dir 'from-env', got '%s'", cfg.InputDir)
	}
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	clearEnv(t)

	// no configs/ directory next to the package tests
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults when %s is missing, got: %v", DefaultPath, err)
	}
	if cfg.Year != defaultYear || cfg.InputDir != defaultInputDir || cfg.LogLevel != defaultLogLevel {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	clearEnv(t)

	_, err := Load("/nonexistent/path/aoc.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `disk:
  total_space: 10
    wrong_level
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "input_dir: puzzles\nlenient: false\n")
	t.Setenv("AOC_INPUT_DIR", "/tmp/aoc")
	t.Setenv("AOC_LOG_LEVEL", "warn")
	t.Setenv("AOC_LENIENT", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.InputDir != "/tmp/aoc" {
		t.Errorf("Expected input_dir '/tmp/aoc', got '%s'", cfg.InputDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log_level 'warn', got '%s'", cfg.LogLevel)
	}
	if !cfg.Lenient {
		t.Error("Expected AOC_LENIENT to switch lenient on")
	}
}

func TestLoad_BadLenientEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AOC_LENIENT", "sometimes")

	_, err := Load(writeConfig(t, "year: 2022\n"))
	if err == nil {
		t.Fatal("Expected error for unparsable AOC_LENIENT")
	}
	if !strings.Contains(err.Error(), "AOC_LENIENT") {
		t.Errorf("Expected error to name AOC_LENIENT, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: "LogLevel",
		},
		{
			name:    "year too early",
			mutate:  func(c *Config) { c.Year = 2000 },
			wantErr: "Year",
		},
		{
			name:    "required exceeds total",
			mutate:  func(c *Config) { c.Disk.RequiredFree = c.Disk.TotalSpace + 1 },
			wantErr: "RequiredFree",
		},
		{
			name:    "empty input dir",
			mutate:  func(c *Config) { c.InputDir = "" },
			wantErr: "InputDir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected validation error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %s, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestLogLevelValidation_Registered(t *testing.T) {
	if err := validate.Var("debug", "loglevel"); err != nil {
		t.Errorf("Expected 'debug' to pass loglevel validation, got: %v", err)
	}
	if err := validate.Var("loud", "loglevel"); err == nil {
		t.Error("Expected 'loud' to fail loglevel validation")
	}
}
