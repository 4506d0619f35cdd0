// Package config loads demo settings from flags, BATTGAUGE_* environment
// variables and an optional TOML file.
package config

import (
	"battgauge/gauge"
	"battgauge/logger"
	"battgauge/source"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BATTGAUGE"
	FileName  = "battgauge"

	DefaultSteps    = 100
	DefaultInterval = 2 * time.Second
	DefaultLocale   = "en"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	MinVoltage  float64       `mapstructure:"min_voltage"`
	MaxVoltage  float64       `mapstructure:"max_voltage"`
	Segments    int           `mapstructure:"segments"`
	Orientation string        `mapstructure:"orientation"`
	Steps       int           `mapstructure:"steps"`
	Source      string        `mapstructure:"source"`
	Interval    time.Duration `mapstructure:"interval"`
	Locale      string        `mapstructure:"locale"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFile     string        `mapstructure:"log_file"`
	CellWidth   float64       `mapstructure:"cell_width"`
	CellHeight  float64       `mapstructure:"cell_height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("min_voltage", gauge.DefaultMinVoltage)
	v.SetDefault("max_voltage", gauge.DefaultMaxVoltage)
	v.SetDefault("segments", gauge.DefaultSegments)
	v.SetDefault("orientation", gauge.Horizontal.String())
	v.SetDefault("steps", DefaultSteps)
	v.SetDefault("source", source.Manual)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("log_level", logger.DefaultLevel)
	v.SetDefault("log_file", logger.DefaultFile())
	v.SetDefault("cell_width", 4.0)
	v.SetDefault("cell_height", 8.0)
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"min-voltage": "min_voltage",
	"max-voltage": "max_voltage",
	"segments":    "segments",
	"orientation": "orientation",
	"steps":       "steps",
	"source":      "source",
	"interval":    "interval",
	"locale":      "locale",
	"log-level":   "log_level",
	"log-file":    "log_file",
	"cell-width":  "cell_width",
	"cell-height": "cell_height",
}

// RegisterFlags adds the gauge flags shared by every command.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.Float64("min-voltage", gauge.DefaultMinVoltage, "lower bound of the voltage range")
	flags.Float64("max-voltage", gauge.DefaultMaxVoltage, "upper bound of the voltage range")
	flags.Int("segments", gauge.DefaultSegments, "number of fill segments")
	flags.String("orientation", gauge.Horizontal.String(), "horizontal or vertical")
	flags.String("log-level", logger.DefaultLevel, "trace, debug, info, warn or error")
}

// RegisterDemoFlags adds the flags of the interactive demo.
func RegisterDemoFlags(flags *pflag.FlagSet) {
	flags.Int("steps", DefaultSteps, "slider positions between min and max voltage")
	flags.String("source", source.Manual, "voltage source: manual, system or simulated")
	flags.Duration("interval", DefaultInterval, "source polling interval")
	flags.String("locale", DefaultLocale, "locale of the voltage label")
	flags.String("log-file", logger.DefaultFile(), "log file of the interactive demo")
	flags.Float64("cell-width", 4, "gauge pixels per terminal column")
	flags.Float64("cell-height", 8, "gauge pixels per terminal row")
}

// Load merges flags over environment over the config file over defaults.
// An explicit path must exist; otherwise battgauge.toml is looked up in the
// working directory and the user config directory.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || path != "" {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Wrapf(err, "failed to bind flag %s", name)
				}
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the demo cannot run with. An empty or inverted
// voltage range is allowed; the gauge renders it as empty.
func (c *Config) Validate() error {
	if c.Segments <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "segments must be positive, got %d", c.Segments)
	}
	if c.Steps <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "steps must be positive, got %d", c.Steps)
	}
	if c.Interval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "interval must be positive, got %s", c.Interval)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight)
	}
	if _, err := gauge.ParseOrientation(c.Orientation); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

func (c *Config) GaugeOrientation() gauge.Orientation {
	orientation, err := gauge.ParseOrientation(c.Orientation)
	if err != nil {
		return gauge.Horizontal
	}
	return orientation
}

// NewGauge builds a gauge with the configured range, segments and
// orientation.
func (c *Config) NewGauge() *gauge.Gauge {
	return gauge.New(c.MinVoltage, c.MaxVoltage, c.Segments, c.GaugeOrientation())
}
