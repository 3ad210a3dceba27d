package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ai-need-analyzer/internal/logger"

	"github.com/spf13/viper"
)

// DefaultDataFile is the survey workbook shipped alongside the executable.
const DefaultDataFile = "인공지능기술_AI필요성.xlsx"

// EnvPrefix prefixes environment overrides, e.g. AINEED_LOG_LEVEL.
const EnvPrefix = "AINEED"

// Config represents the application configuration
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Window WindowConfig `mapstructure:"window"`
	Chart  ChartConfig  `mapstructure:"chart"`
	Font   FontConfig   `mapstructure:"font"`
	Log    LogConfig    `mapstructure:"log"`
}

// DataConfig locates the survey workbook
type DataConfig struct {
	File string `mapstructure:"file"` // Absolute after Load
}

// WindowConfig sizes the main window
type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// ChartConfig sizes rendered charts in pixels
type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// FontConfig selects a TrueType font for widgets and charts.
// An empty path means "use the first platform candidate that exists".
type FontConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// Load reads the configuration from configPath, or from config.yaml next to
// the executable or in the working directory when configPath is empty.
// A missing file falls back to defaults; a malformed one is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	baseDir := executableDir()
	if configPath == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(baseDir)
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Data.File = resolvePath(baseDir, cfg.Data.File)
	if cfg.Font.Path != "" {
		cfg.Font.Path = resolvePath(baseDir, cfg.Font.Path)
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.file", DefaultDataFile)

	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 450)

	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 500)

	v.SetDefault("font.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatConsole)
}

// Validate rejects values the application cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.File) == "" {
		return errors.New("data.file must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

// resolvePath anchors a relative path to baseDir when the file exists
// there, and to the working directory otherwise.
func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if baseDir != "" {
		candidate := filepath.Join(baseDir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
