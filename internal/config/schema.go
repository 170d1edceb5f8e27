package config

// Config is the runtime configuration of the puzzle runner.
type Config struct {
	Year     int        `yaml:"year" validate:"gte=2015"`
	InputDir string     `yaml:"input_dir" validate:"required"`
	Lenient  bool       `yaml:"lenient"`
	LogLevel string     `yaml:"log_level" validate:"loglevel"`
	Disk     DiskConfig `yaml:"disk"`
}

// DiskConfig overrides the device figures used by the filesystem puzzle.
type DiskConfig struct {
	TotalSpace    uint64 `yaml:"total_space" validate:"gt=0"`
	RequiredFree  uint64 `yaml:"required_free" validate:"gt=0,ltefield=TotalSpace"`
	SmallDirLimit uint64 `yaml:"small_dir_limit" validate:"gt=0"`
}
