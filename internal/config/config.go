// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/supportdesk-tui/internal/attach"
	"github.com/jeranaias/supportdesk-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete supportdesk configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// SeedFile is an optional TOML fixture replacing the built-in demo data.
	SeedFile string `toml:"seed_file" json:"seed_file"`

	UI     UIConfig     `toml:"ui" json:"ui"`
	Attach AttachConfig `toml:"attach" json:"attach"`
	Log    LogConfig    `toml:"log" json:"log"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light". "auto" asks the terminal.
	Theme string `toml:"theme" json:"theme"`
	// SidebarWidth is the width of the client profile column in cells.
	SidebarWidth int `toml:"sidebar_width" json:"sidebar_width"`
	// ShowHelpBar shows the key hints under the composer.
	ShowHelpBar bool `toml:"show_help_bar" json:"show_help_bar"`
	// AltScreen runs the UI in the alternate screen buffer.
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
}

// AttachConfig controls the file picker.
type AttachConfig struct {
	// AllowedExtensions filters what the picker offers, e.g. [".pdf", ".png"].
	AllowedExtensions []string `toml:"allowed_extensions" json:"allowed_extensions"`
	// StartDir is where the picker opens. Empty means the working directory.
	StartDir string `toml:"start_dir" json:"start_dir"`
	// ShowHidden lists dot files in the picker.
	ShowHidden bool `toml:"show_hidden" json:"show_hidden"`
}

// LogConfig controls the structured log file. The UI owns the terminal, so
// logs never go to stdout or stderr.
type LogConfig struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path of the log file. Empty means <config dir>/supportdesk.log.
	Path string `toml:"path" json:"path"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		UI: UIConfig{
			Theme:        "auto",
			SidebarWidth: 40,
			ShowHelpBar:  true,
			AltScreen:    true,
		},
		Attach: AttachConfig{
			AllowedExtensions: append([]string(nil), attach.DefaultExtensions...),
		},
		Log: LogConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the supportdesk configuration directory path.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SUPPORTDESK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".supportdesk"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogPath returns <config dir>/supportdesk.log.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "supportdesk.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file(s).
// Tries TOML first, then JSON, and falls back to defaults. Environment
// overrides are applied last. A file that fails to decode is reported in the
// returned error together with a usable default config.
func Load() (*Config, error) {
	var loadErr error

	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			loadErr = err
			break
		}
		return cfg, nil
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config from environment: %w", err)
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file with full validation.
// Files ending in .json are decoded as JSON, everything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// fillDefaults fills in zero values that have no meaning on their own.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.SidebarWidth == 0 {
		c.UI.SidebarWidth = defaults.UI.SidebarWidth
	}
	if len(c.Attach.AllowedExtensions) == 0 {
		c.Attach.AllowedExtensions = defaults.Attach.AllowedExtensions
	}
	c.Attach.AllowedExtensions = attach.NormalizeExtensions(c.Attach.AllowedExtensions)
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# supportdesk configuration file\n")
	buf.WriteString("# Generated by supportdesk - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns ValidateErrors when
// anything is wrong.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch strings.ToLower(c.UI.Theme) {
	case "auto", "dark", "light":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if c.UI.SidebarWidth < 24 || c.UI.SidebarWidth > 80 {
		errs = append(errs, ValidationError{
			Field:   "ui.sidebar_width",
			Message: fmt.Sprintf("sidebar width %d out of range 24-80", c.UI.SidebarWidth),
		})
	}

	for _, ext := range c.Attach.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\ `) {
			errs = append(errs, ValidationError{
				Field:   "attach.allowed_extensions",
				Message: fmt.Sprintf("invalid extension '%s'", ext),
			})
		}
	}

	if c.Attach.StartDir != "" {
		if info, err := os.Stat(c.Attach.StartDir); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "attach.start_dir",
				Message: fmt.Sprintf("'%s' is not a directory", c.Attach.StartDir),
			})
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - SUPPORTDESK_THEME: overrides ui.theme
//   - SUPPORTDESK_SEED: overrides seed_file
//   - SUPPORTDESK_LOG_FILE: overrides log.path ("off" disables logging)
//   - SUPPORTDESK_LOG_LEVEL: overrides log.level
//   - SUPPORTDESK_ATTACH_DIR: overrides attach.start_dir
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("SUPPORTDESK_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if seed := os.Getenv("SUPPORTDESK_SEED"); seed != "" {
		c.SeedFile = seed
	}
	if logFile := os.Getenv("SUPPORTDESK_LOG_FILE"); logFile != "" {
		if strings.EqualFold(logFile, "off") {
			c.Log.Enabled = false
		} else {
			c.Log.Enabled = true
			c.Log.Path = logFile
		}
	}
	if level := os.Getenv("SUPPORTDESK_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if dir := os.Getenv("SUPPORTDESK_ATTACH_DIR"); dir != "" {
		c.Attach.StartDir = dir
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state between tests.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
