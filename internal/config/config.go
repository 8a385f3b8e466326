/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type ExportConfig struct {
	Dir         string  `yaml:"dir" json:"dir"`
	Filename    string  `yaml:"filename" json:"filename"`
	Scale       float64 `yaml:"scale" json:"scale"`
	JPEGQuality int     `yaml:"jpeg_quality" json:"jpeg_quality"`
	Background  string  `yaml:"background" json:"background"` // "#rrggbb"
	TimeoutMs   int     `yaml:"timeout_ms" json:"timeout_ms"` // 0 disables the deadline
}

type PrintConfig struct {
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args" json:"args"`
}

type GeneralConfig struct {
	TelemetryOptIn bool `yaml:"telemetry_opt_in" json:"telemetry_opt_in"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Source bool   `yaml:"source" json:"source"`
	File   string `yaml:"file" json:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version" json:"config_version"`
	General       GeneralConfig `yaml:"general" json:"general"`
	Export        ExportConfig  `yaml:"export" json:"export"`
	Print         PrintConfig   `yaml:"print" json:"print"`
	Logging       LoggingConfig `yaml:"logging" json:"logging"`
}

// DefaultFilename is the fixed name of the exported document.
const DefaultFilename = "stainless-smart-manufacturing-roadshow.pdf"

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false},
		Export: ExportConfig{
			Dir:         ".",
			Filename:    DefaultFilename,
			Scale:       2,
			JPEGQuality: 92,
			Background:  "#020617",
			TimeoutMs:   0,
		},
		Print:   PrintConfig{Command: defaultPrintCommand()},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

func defaultPrintCommand() string {
	if runtime.GOOS == "windows" {
		return "mspaint"
	}
	return "lp"
}

// Env var names used as overrides.
const (
	EnvExportDir       = "PD_EXPORT_DIR"
	EnvExportFilename  = "PD_EXPORT_FILENAME"
	EnvExportTimeoutMs = "PD_EXPORT_TIMEOUT_MS"
	EnvPrintCommand    = "PD_PRINT_COMMAND"
	EnvTelemetryOptIn  = "PD_TELEMETRY_OPT_IN"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "PD_LOG_LEVEL"
	EnvLogFormat = "PD_LOG_FORMAT"
	EnvLogSource = "PD_LOG_SOURCE"
	EnvLogFile   = "PD_LOG_FILE"
	// EnvConfigFile points Load at an explicit file instead of the per-user path.
	EnvConfigFile = "PD_CONFIG"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvConfigFile)); v != "" {
		return v, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PitchDeck")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PitchDeck")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "pitchdeck")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, merges environment
// overrides and validates the result. A malformed file is reported, not ignored.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	path, err := ConfigPath()
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

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if strings.TrimSpace(src.Export.Dir) != "" {
		dst.Export.Dir = strings.TrimSpace(src.Export.Dir)
	}
	if strings.TrimSpace(src.Export.Filename) != "" {
		dst.Export.Filename = strings.TrimSpace(src.Export.Filename)
	}
	if src.Export.Scale != 0 {
		dst.Export.Scale = src.Export.Scale
	}
	if src.Export.JPEGQuality != 0 {
		dst.Export.JPEGQuality = src.Export.JPEGQuality
	}
	if strings.TrimSpace(src.Export.Background) != "" {
		dst.Export.Background = strings.ToLower(strings.TrimSpace(src.Export.Background))
	}
	if src.Export.TimeoutMs != 0 {
		dst.Export.TimeoutMs = src.Export.TimeoutMs
	}
	if strings.TrimSpace(src.Print.Command) != "" {
		dst.Print.Command = strings.TrimSpace(src.Print.Command)
	}
	if len(src.Print.Args) > 0 {
		dst.Print.Args = append([]string(nil), src.Print.Args...)
	}
	// logging
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
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvExportDir)); v != "" {
		cfg.Export.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportFilename)); v != "" {
		cfg.Export.Filename = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportTimeoutMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Export.TimeoutMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrintCommand)); v != "" {
		cfg.Print.Command = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = parseBool(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var name string
	switch key {
	case "export.dir":
		name = EnvExportDir
	case "export.filename":
		name = EnvExportFilename
	case "export.timeout_ms":
		name = EnvExportTimeoutMs
	case "print.command":
		name = EnvPrintCommand
	case "general.telemetry_opt_in":
		name = EnvTelemetryOptIn
	case "logging.level":
		name = EnvLogLevel
	case "logging.format":
		name = EnvLogFormat
	case "logging.source":
		name = EnvLogSource
	case "logging.file":
		name = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}

// Timeout returns the export deadline; zero means none.
func (e ExportConfig) Timeout() time.Duration {
	if e.TimeoutMs <= 0 {
		return 0
	}
	return time.Duration(e.TimeoutMs) * time.Millisecond
}

// OutputPath joins the export directory and the fixed filename.
func (e ExportConfig) OutputPath() string {
	name := e.Filename
	if name == "" {
		name = DefaultFilename
	}
	return filepath.Join(e.Dir, name)
}
