/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads the user-editable YAML configuration and applies
// read-only environment overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoggingConfig mirrors the log package options.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// HistoryConfig caps the in-memory transform undo/redo stacks.
type HistoryConfig struct {
	MaxPerObject int `yaml:"max_per_object"`
	MaxTotal     int `yaml:"max_total"`
	CoalesceMs   int `yaml:"coalesce_ms"`
}

// StoreConfig controls the on-disk snapshot store.
type StoreConfig struct {
	// KeepPerObject is how many persisted snapshots to retain per object
	// when pruning. 0 keeps everything.
	KeepPerObject int `yaml:"keep_per_object"`
}

// AppConfig is the persisted configuration.
// config_version: bump when the structure changes incompatibly.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Logging       LoggingConfig `yaml:"logging"`
	History       HistoryConfig `yaml:"history"`
	Store         StoreConfig   `yaml:"store"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
		History:       HistoryConfig{MaxPerObject: 100, MaxTotal: 10000, CoalesceMs: 250},
		Store:         StoreConfig{KeepPerObject: 50},
	}
}

// Env var names used as overrides.
const (
	EnvLogLevel   = "MK_LOG_LEVEL"
	EnvLogFormat  = "MK_LOG_FORMAT"
	EnvLogSource  = "MK_LOG_SOURCE"
	EnvLogFile    = "MK_LOG_FILE"
	EnvHistoryMax = "MK_HISTORY_MAX"
	EnvStoreKeep  = "MK_STORE_KEEP"
)

// Path returns the per-user config file path.
func Path() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "MotionKit")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "MotionKit")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "motionkit")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file if present, applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	if src.History.MaxPerObject != 0 {
		dst.History.MaxPerObject = src.History.MaxPerObject
	}
	if src.History.MaxTotal != 0 {
		dst.History.MaxTotal = src.History.MaxTotal
	}
	if src.History.CoalesceMs != 0 {
		dst.History.CoalesceMs = src.History.CoalesceMs
	}
	if src.Store.KeepPerObject != 0 {
		dst.Store.KeepPerObject = src.Store.KeepPerObject
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistoryMax)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.History.MaxPerObject = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvStoreKeep)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Store.KeepPerObject = n
		}
	}
}
