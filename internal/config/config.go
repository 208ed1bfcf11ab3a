// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/northbound/filereader/internal/logger"
	"github.com/northbound/filereader/internal/parse"
	"github.com/northbound/filereader/internal/reader"
)

// EnvPrefix prefixes every environment override, e.g. FILEREADER_PARSER=json
const EnvPrefix = "FILEREADER"

// Config holds the file reader configuration
type Config struct {
	Readers []string    `mapstructure:"readers"`
	Parser  string      `mapstructure:"parser"`
	Chunk   ChunkConfig `mapstructure:"chunk"`
	Log     LogConfig   `mapstructure:"log"`
	Watch   WatchConfig `mapstructure:"watch"`
}

// ChunkConfig holds settings of the "chunks" parser
type ChunkConfig struct {
	Size    int `mapstructure:"size"`
	Overlap int `mapstructure:"overlap"`
}

// LogConfig holds logger settings
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty: stderr only
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// WatchConfig holds re-read-on-change settings
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// Load loads configuration from defaults, an optional YAML file and the environment.
// A .env file in the working directory is loaded into the environment first when present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("readers", reader.DefaultOrder)
	v.SetDefault("parser", "raw")
	v.SetDefault("chunk.size", parse.DefaultChunkSize)
	v.SetDefault("chunk.overlap", parse.DefaultChunkOverlap)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", 500*time.Millisecond)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// FILEREADER_READERS=pdf,text arrives as a single element
	if len(config.Readers) == 1 && strings.Contains(config.Readers[0], ",") {
		config.Readers = SplitList(config.Readers[0])
	}

	return &config, nil
}

// ApplyCLIFlags applies command-line flags to override config values
func ApplyCLIFlags(config *Config, readers, parser, logLevel string, watch bool) {
	if readers != "" {
		config.Readers = SplitList(readers)
	}
	if parser != "" {
		config.Parser = parser
	}
	if logLevel != "" {
		config.Log.Level = logLevel
	}
	if watch {
		config.Watch.Enabled = true
	}
}

// Validate checks that every configured name resolves
func (c *Config) Validate() error {
	if _, err := reader.LookupAll(c.Readers); err != nil {
		return fmt.Errorf("invalid readers: %w", err)
	}
	if _, err := parse.Lookup(c.Parser, c.ParseOptions()); err != nil {
		return fmt.Errorf("invalid parser: %w", err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Watch.Enabled && c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// ParseOptions returns the settings handed to parse.Lookup
func (c *Config) ParseOptions() parse.Options {
	return parse.Options{ChunkSize: c.Chunk.Size, ChunkOverlap: c.Chunk.Overlap}
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
