// Package config loads server configuration from an optional YAML file and
// CHARGEN_ environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. CHARGEN_SERVER_PORT
const EnvPrefix = "CHARGEN"

// Reference data sources
const (
	SourceText  = "text"
	SourceYAML  = "yaml"
	SourceDnD5e = "dnd5e"
)

// ServerConfig holds gRPC listener settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// RedisConfig holds Redis connection settings. Several endpoints select
// cluster mode.
type RedisConfig struct {
	Endpoints []string `mapstructure:"endpoints"`
	Password  string   `mapstructure:"password"`
	DB        int      `mapstructure:"db"`
	PoolSize  int      `mapstructure:"pool_size"`
	UseTLS    bool     `mapstructure:"use_tls"`
}

// ReferenceConfig selects where races and occupations come from
type ReferenceConfig struct {
	// Source is one of text, yaml or dnd5e
	Source          string        `mapstructure:"source"`
	RacesPath       string        `mapstructure:"races_path"`
	OccupationsPath string        `mapstructure:"occupations_path"`
	YAMLPath        string        `mapstructure:"yaml_path"`
	APIBaseURL      string        `mapstructure:"api_base_url"`
	APITimeout      time.Duration `mapstructure:"api_timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	LoadTimeout     time.Duration `mapstructure:"load_timeout"`
}

// CreationConfig holds character creation rules
type CreationConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	MaxLevel   int           `mapstructure:"max_level"`
}

// ExportConfig holds sheet export settings
type ExportConfig struct {
	// FontPath points at a TrueType font used for PDF sheets. Without one
	// the PDF falls back to a core font and English labels.
	FontPath string `mapstructure:"font_path"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is one of debug, info, warn or error
	Level string `mapstructure:"level"`
	// Format is json or console
	Format string `mapstructure:"format"`
}

// Config is the top-level server configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Creation  CreationConfig  `mapstructure:"creation"`
	Export    ExportConfig    `mapstructure:"export"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	if len(c.Redis.Endpoints) == 0 {
		vb.RequiredField("redis.endpoints")
	}
	for i, ep := range c.Redis.Endpoints {
		if strings.TrimSpace(ep) == "" {
			vb.Fieldf("redis.endpoints", "entry %d is empty", i)
		}
	}
	if c.Redis.PoolSize < 0 {
		vb.Field("redis.pool_size", "must not be negative")
	}

	errors.ValidateEnum("reference.source", c.Reference.Source, []string{SourceText, SourceYAML, SourceDnD5e}, vb)
	switch c.Reference.Source {
	case SourceText:
		errors.ValidateRequired("reference.races_path", c.Reference.RacesPath, vb)
		errors.ValidateRequired("reference.occupations_path", c.Reference.OccupationsPath, vb)
	case SourceYAML:
		errors.ValidateRequired("reference.yaml_path", c.Reference.YAMLPath, vb)
	case SourceDnD5e:
		if c.Reference.APITimeout < 0 {
			vb.Field("reference.api_timeout", "must not be negative")
		}
		if c.Reference.CacheTTL < 0 {
			vb.Field("reference.cache_ttl", "must not be negative")
		}
	}
	if c.Reference.LoadTimeout <= 0 {
		vb.Field("reference.load_timeout", "must be positive")
	}

	if c.Creation.SessionTTL <= 0 {
		vb.Field("creation.session_ttl", "must be positive")
	}
	errors.ValidateRange("creation.max_level", c.Creation.MaxLevel, 1, 100, vb)

	errors.ValidateEnum("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{"json", "console"}, vb)

	return vb.Build()
}

// Load reads path when it is not empty, applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", path).
				WithMeta("path", path)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already configured viper instance
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// SetDefaults registers every default. Environment overrides only apply to
// keys viper knows about, so every key gets one.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("redis.endpoints", []string{"localhost:6379"})
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)

	v.SetDefault("reference.source", SourceText)
	v.SetDefault("reference.races_path", "data/races.txt")
	v.SetDefault("reference.occupations_path", "data/occupations.txt")
	v.SetDefault("reference.yaml_path", "data/reference.yaml")
	v.SetDefault("reference.api_base_url", "")
	v.SetDefault("reference.api_timeout", "30s")
	v.SetDefault("reference.cache_ttl", "24h")
	v.SetDefault("reference.load_timeout", "2m")

	v.SetDefault("creation.session_ttl", "24h")
	v.SetDefault("creation.max_level", 20)

	v.SetDefault("export.font_path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
