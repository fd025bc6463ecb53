// Package config loads the histdate command configuration.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/modularhistory/histdate"
	"github.com/modularhistory/histdate/format"
)

// Config holds the full command configuration.
type Config struct {
	// ReferenceYear is the present year for years-before-present arithmetic.
	// 0 means the current year.
	ReferenceYear int            `yaml:"reference_year" mapstructure:"reference_year"`
	Timeline      TimelineConfig `yaml:"timeline" mapstructure:"timeline"`
	Log           LogConfig      `yaml:"log" mapstructure:"log"`
}

// TimelineConfig configures timeline blob encoding.
type TimelineConfig struct {
	Compression string `yaml:"compression" mapstructure:"compression"`
	BigEndian   bool   `yaml:"big_endian" mapstructure:"big_endian"`
	KeyNames    bool   `yaml:"key_names" mapstructure:"key_names"`
}

// LogConfig configures the global zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from defaults, an optional histdate.yaml and HISTDATE_*
// environment variables, in increasing priority.
//
// A non-empty path names the config file explicitly; it must then exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("histdate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HISTDATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("reference_year", 0)
	v.SetDefault("timeline.compression", "zstd")
	v.SetDefault("timeline.big_endian", false)
	v.SetDefault("timeline.key_names", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	if c.ReferenceYear < 0 || c.ReferenceYear > 9999 {
		return eris.Errorf("config: reference_year %d out of range", c.ReferenceYear)
	}

	if _, err := c.Timeline.CompressionType(); err != nil {
		return err
	}

	return nil
}

// RefYear returns the configured reference year, or the current year when unset.
func (c *Config) RefYear() int {
	if c.ReferenceYear == 0 {
		return histdate.CurrentYear()
	}

	return c.ReferenceYear
}

// CompressionType parses the configured compression name.
func (c TimelineConfig) CompressionType() (format.CompressionType, error) {
	comp, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return 0, eris.Wrap(err, "config: timeline.compression")
	}

	return comp, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
