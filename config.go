// Copyright 2025 Naren Yellavula
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

package avltree

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type RenderConfig struct {
	// ShowBalance appends the height and balance factor to every key.
	ShowBalance bool `yaml:"show_balance"`
	// Color styles keys with KeyColor, and keys whose balance is not zero with HeavyColor.
	Color      bool   `yaml:"color"`
	KeyColor   string `yaml:"key_color"`
	HeavyColor string `yaml:"heavy_color"`

	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheCleanup time.Duration `yaml:"cache_cleanup"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		ShowBalance:  false,
		Color:        false,
		KeyColor:     "39",
		HeavyColor:   "205",
		CacheTTL:     renderCacheExpiration,
		CacheCleanup: renderCacheCleanup,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return defaultConfig
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		defaults := DefaultConfig()
		return &defaults, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &config, nil
}

// NewRenderer returns a caching renderer for the render settings.
func (c *Config) NewRenderer() *Renderer {
	return NewRenderer(c.Render)
}

// NewLogger returns a logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return NewLogger(w, c.Log.Level)
}

// DefaultConfigPath returns ~/.avltree.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// WriteDefaultConfig writes the default settings to path.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
