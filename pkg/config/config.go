// Copyright 2025 walteh LLC
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

// Package config loads mediarc configuration from YAML or HCL files
// through a pluggable parser registry. The tool must run unconfigured,
// so a missing config file yields the defaults rather than an error.
package config

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of registered parsers
var parsers []Parser

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete mediarc configuration
type Config struct {
	// DefaultTemplate is used by the rename command when no template
	// argument is given, e.g. "{filename} [{resolution}]".
	DefaultTemplate string `json:"default_template,omitempty" yaml:"default_template,omitempty"`

	// Extensions overrides the video-container allow-list used by scan.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// IgnorePatterns are doublestar globs for files scan should skip.
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`

	// StagingPath overrides the staging file location.
	StagingPath string `json:"staging_path,omitempty" yaml:"staging_path,omitempty"`

	// UndoDir overrides the directory holding the .mediarc journal.
	UndoDir string `json:"undo_dir,omitempty" yaml:"undo_dir,omitempty"`

	// FfprobePath overrides the ffprobe binary used for probing.
	FfprobePath string `json:"ffprobe_path,omitempty" yaml:"ffprobe_path,omitempty"`
}

// 🎯 Load loads the configuration from path. A missing file is not an
// error: the zero Config means built-in defaults everywhere.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return &Config{}, nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ✅ Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	for _, pattern := range c.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern: %s", pattern)
		}
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return errors.New("empty extension in allow-list")
		}
	}
	return nil
}
