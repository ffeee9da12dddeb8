// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package checker

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/poiesic/papercheck/textproc"
	"github.com/poiesic/papercheck/vector"
)

// Config holds the engine configuration. Stop words and lexicon are
// injected here at construction; the engine keeps no process-wide
// mutable state.
type Config struct {
	// MaxFeatures caps the vocabulary size per comparison.
	// Default: vector.DefaultMaxFeatures (5000)
	MaxFeatures int

	// StopWords are function words excluded from token sequences.
	// Default: textproc.DefaultStopWords()
	StopWords []string

	// Lexicon lists multi-character terms the segmenter must never
	// split. Default: textproc.DefaultLexicon()
	Lexicon []string

	// PoolSize is the worker count for batch comparisons.
	// Default: runtime.NumCPU() / 2, with a minimum of 1.
	PoolSize int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithMaxFeatures sets the vocabulary size cap.
func WithMaxFeatures(n int) ConfigOption {
	return func(c *Config) {
		c.MaxFeatures = n
	}
}

// WithStopWords replaces the stop-word list.
func WithStopWords(words []string) ConfigOption {
	return func(c *Config) {
		c.StopWords = words
	}
}

// WithLexicon replaces the segmenter lexicon.
func WithLexicon(terms []string) ConfigOption {
	return func(c *Config) {
		c.Lexicon = terms
	}
}

// WithPoolSize sets the batch comparison worker count.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// DefaultConfig returns a Config with the default stop words, lexicon,
// and vocabulary cap.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		MaxFeatures: vector.DefaultMaxFeatures,
		StopWords:   textproc.DefaultStopWords(),
		Lexicon:     textproc.DefaultLexicon(),
		PoolSize:    poolSize,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxFeatures <= 0 {
		return errors.New("checker config: MaxFeatures must be greater than 0")
	}
	if c.PoolSize < 1 {
		return errors.New("checker config: PoolSize must be at least 1")
	}
	return nil
}

// fileConfig mirrors the TOML override file. Absent fields keep their
// defaults; pointer fields distinguish "not set" from zero.
type fileConfig struct {
	MaxFeatures *int     `toml:"max_features"`
	StopWords   []string `toml:"stop_words"`
	Lexicon     []string `toml:"lexicon"`
	PoolSize    *int     `toml:"pool_size"`
}

// LoadFile reads configuration overrides from a TOML file on top of
// the defaults.
func LoadFile(path string) (*Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if fc.MaxFeatures != nil {
		cfg.MaxFeatures = *fc.MaxFeatures
	}
	if fc.StopWords != nil {
		cfg.StopWords = fc.StopWords
	}
	if fc.Lexicon != nil {
		cfg.Lexicon = fc.Lexicon
	}
	if fc.PoolSize != nil {
		cfg.PoolSize = *fc.PoolSize
	}
	return cfg, nil
}
