// Package config loads caseconv settings from CASECONV_* environment
// variables and an optional YAML file.
package config

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/mcoffin/caseconv/caseerrors"
	"github.com/mcoffin/caseconv/casing"
	"github.com/mcoffin/caseconv/converter"
)

// EnvPrefix is prepended to every key to form its environment variable,
// e.g. CASECONV_TARGET.
const EnvPrefix = "CASECONV"

// Config keys.
const (
	KeyConfig       = "config"
	KeyTarget       = "target"
	KeyFormat       = "format"
	KeyWorkers      = "workers"
	KeyMaxInputSize = "max_input_size"
	KeyMaxBatch     = "max_batch"
	KeyLogLevel     = "log_level"
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml"}

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	// Target is the default target convention.
	Target casing.Type
	// Format is the default output format, one of Formats.
	Format string
	// Workers bounds concurrent conversions in a batch.
	Workers int
	// MaxInputSize is the largest accepted identifier in bytes. Zero disables the limit.
	MaxInputSize int
	// MaxBatch is the largest accepted batch. Zero disables the limit.
	MaxBatch int
	// LogLevel is the minimum level logged.
	LogLevel slog.Level
	// File is the config file that was read, if any.
	File string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Target:       casing.TypeKebab,
		Format:       "text",
		Workers:      converter.DefaultWorkers,
		MaxInputSize: converter.DefaultMaxInputSize,
		MaxBatch:     converter.DefaultMaxBatch,
		LogLevel:     slog.LevelInfo,
	}
}

// Load reads settings from the environment and, when path is non-empty or
// CASECONV_CONFIG is set, from a YAML file. Environment variables take
// precedence over the file. Invalid values log a warning and keep the
// default; only an unreadable config file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if path == "" {
		path = v.GetString(KeyConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, &caseerrors.ConfigError{
				Option:  KeyConfig,
				Value:   path,
				Message: "reading config file",
				Cause:   err,
			}
		}
	}

	def := Default()
	cfg := &Config{
		Target:       getTarget(v, def.Target),
		Format:       getFormat(v, def.Format),
		Workers:      getInt(v, KeyWorkers, def.Workers, 1),
		MaxInputSize: getInt(v, KeyMaxInputSize, def.MaxInputSize, 0),
		MaxBatch:     getInt(v, KeyMaxBatch, def.MaxBatch, 0),
		LogLevel:     getLevel(v, def.LogLevel),
		File:         path,
	}
	return cfg, nil
}

// ConverterOptions returns the converter options these settings imply.
// The caller still chooses the source mode.
func (c *Config) ConverterOptions() []converter.Option {
	return []converter.Option{
		converter.WithTargetCase(c.Target),
		converter.WithWorkers(c.Workers),
		converter.WithMaxInputSize(c.MaxInputSize),
		converter.WithMaxBatch(c.MaxBatch),
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyTarget, def.Target.String())
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyWorkers, def.Workers)
	v.SetDefault(KeyMaxInputSize, def.MaxInputSize)
	v.SetDefault(KeyMaxBatch, def.MaxBatch)
	v.SetDefault(KeyLogLevel, strings.ToLower(def.LogLevel.String()))
}

func getTarget(v *viper.Viper, fallback casing.Type) casing.Type {
	s := v.GetString(KeyTarget)
	t, err := casing.ParseType(s)
	if err != nil {
		slog.Warn("invalid case type setting, using default", "key", KeyTarget, "value", s, "default", fallback.String())
		return fallback
	}
	return t
}

func getFormat(v *viper.Viper, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat)))
	if !slices.Contains(Formats, s) {
		slog.Warn("invalid format setting, using default", "key", KeyFormat, "value", s, "default", fallback)
		return fallback
	}
	return s
}

func getInt(v *viper.Viper, key string, fallback, floor int) int {
	s := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(s)
	if err != nil || n < floor {
		slog.Warn("invalid int setting, using default", "key", key, "value", s, "default", fallback)
		return fallback
	}
	return n
}

func getLevel(v *viper.Viper, fallback slog.Level) slog.Level {
	s := strings.TrimSpace(v.GetString(KeyLogLevel))
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		slog.Warn("invalid log level setting, using default", "key", KeyLogLevel, "value", s, "default", fallback.String())
		return fallback
	}
	return level
}
