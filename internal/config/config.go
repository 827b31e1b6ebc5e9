// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hexspect.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.hexspect/config.toml
//   - ~/.hexspect/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/hexspect/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete hexspect configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version" json:"version"`

	// Input defaults applied when a flag is not given
	Input InputConfig `toml:"input" json:"input"`

	// Display configuration
	Display DisplayConfig `toml:"display" json:"display"`

	// History configuration
	History HistoryConfig `toml:"history" json:"history"`
}

// InputConfig contains the default conversion parameters.
type InputConfig struct {
	// Endianness applied per group: "big" or "little"
	Endianness string `toml:"endianness" json:"endianness"`
	// GroupSize is the uniform group size in bytes: 1, 2, 4, or 8
	GroupSize int `toml:"group_size" json:"group_size"`
	// GroupPattern is a custom group pattern like "1,1,6"; empty means uniform
	GroupPattern string `toml:"group_pattern" json:"group_pattern"`
	// Width is the encode width in bytes for number input: 1..8
	Width int `toml:"width" json:"width"`
	// Representation is the signed representation:
	// "unsigned", "twos", "ones", or "signmag"
	Representation string `toml:"representation" json:"representation"`
}

// DisplayConfig contains display configuration.
type DisplayConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode uses a more compact TUI layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// ShowBinary includes binary rows in output
	ShowBinary bool `toml:"show_binary" json:"show_binary"`
	// ShowAscii includes the ASCII row in output
	ShowAscii bool `toml:"show_ascii" json:"show_ascii"`
}

// HistoryConfig contains conversion history configuration.
type HistoryConfig struct {
	// Enabled controls whether conversions are recorded
	Enabled bool `toml:"enabled" json:"enabled"`
	// MaxEntries is the maximum number of history rows kept
	MaxEntries int `toml:"max_entries" json:"max_entries"`
	// DBPath is the history database path (empty = ~/.hexspect/history.db)
	DBPath string `toml:"db_path" json:"db_path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Input: InputConfig{
			Endianness:     "little",
			GroupSize:      1,
			GroupPattern:   "",
			Width:          4,
			Representation: "twos",
		},

		Display: DisplayConfig{
			Theme:       "dark",
			CompactMode: false,
			ShowBinary:  true,
			ShowAscii:   true,
		},

		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 1000,
			DBPath:     "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the hexspect configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".hexspect"), nil
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

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions checks and fixes permissions on config files.
// Config files should be 0600 (owner read/write only).
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Defaults path: still run overrides, migration, and validation.
	cfg, err = finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// finishLoad applies environment overrides, migration, defaults, and
// validation to a freshly decoded config.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Migrate(); err != nil {
		return nil, fmt.Errorf("config migration failed: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
// Checks and fixes file permissions on load.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		// Permissions might not be fixable on all systems; warn and continue.
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file.
// Checks and fixes file permissions on load.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	if cfg.Input.Endianness == "" {
		cfg.Input.Endianness = defaults.Input.Endianness
	}
	if cfg.Input.GroupSize == 0 {
		cfg.Input.GroupSize = defaults.Input.GroupSize
	}
	if cfg.Input.Width == 0 {
		cfg.Input.Width = defaults.Input.Width
	}
	if cfg.Input.Representation == "" {
		cfg.Input.Representation = defaults.Input.Representation
	}

	if cfg.Display.Theme == "" {
		cfg.Display.Theme = defaults.Display.Theme
	}

	if cfg.History.MaxEntries == 0 {
		cfg.History.MaxEntries = defaults.History.MaxEntries
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// Creates config files with 0600 permissions (owner read/write only).
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Ensure permissions are correct even if file already existed
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# hexspect configuration file")
	fmt.Fprintln(file, "# Generated by hexspect - edit with care")
	fmt.Fprintln(file, "#")
	fmt.Fprintln(file, "# Documentation: https://github.com/jeranaias/hexspect")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// Atomic write with fsync prevents data loss on crash.
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
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
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Endianness
	validEndian := map[string]bool{"big": true, "little": true}
	if !validEndian[strings.ToLower(c.Input.Endianness)] {
		errs = append(errs, ValidationError{
			Field:   "input.endianness",
			Message: fmt.Sprintf("invalid endianness '%s', must be big or little", c.Input.Endianness),
		})
	}

	// Group size
	switch c.Input.GroupSize {
	case 1, 2, 4, 8:
	default:
		errs = append(errs, ValidationError{
			Field:   "input.group_size",
			Message: fmt.Sprintf("group_size must be 1, 2, 4, or 8, got %d", c.Input.GroupSize),
		})
	}

	// Width
	if c.Input.Width < 1 || c.Input.Width > 8 {
		errs = append(errs, ValidationError{
			Field:   "input.width",
			Message: fmt.Sprintf("width must be 1-8, got %d", c.Input.Width),
		})
	}

	// Representation
	validRepr := map[string]bool{"unsigned": true, "twos": true, "ones": true, "signmag": true}
	if !validRepr[strings.ToLower(c.Input.Representation)] {
		errs = append(errs, ValidationError{
			Field:   "input.representation",
			Message: fmt.Sprintf("invalid representation '%s', must be one of: unsigned, twos, ones, signmag", c.Input.Representation),
		})
	}

	// Theme
	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.Display.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "display.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.Display.Theme),
		})
	}

	// History size
	if c.History.MaxEntries < 0 || c.History.MaxEntries > 100000 {
		errs = append(errs, ValidationError{
			Field:   "history.max_entries",
			Message: fmt.Sprintf("max_entries must be 0-100000, got %d", c.History.MaxEntries),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Input.Endianness == "" {
		c.Input.Endianness = defaults.Input.Endianness
	}
	if c.Input.GroupSize == 0 {
		c.Input.GroupSize = defaults.Input.GroupSize
	}
	if c.Input.Width == 0 {
		c.Input.Width = defaults.Input.Width
	}
	if c.Input.Representation == "" {
		c.Input.Representation = defaults.Input.Representation
	}
	if c.Display.Theme == "" {
		c.Display.Theme = defaults.Display.Theme
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}
}

// Migrate handles migration from old configuration formats to new ones.
func (c *Config) Migrate() error {
	// Normalize short endianness names from early releases
	switch strings.ToLower(c.Input.Endianness) {
	case "be":
		c.Input.Endianness = "big"
	case "le":
		c.Input.Endianness = "little"
	}

	// Normalize old representation names
	switch strings.ToLower(c.Input.Representation) {
	case "2c", "two", "twos-complement":
		c.Input.Representation = "twos"
	case "1c", "one", "ones-complement":
		c.Input.Representation = "ones"
	case "sm", "sign-magnitude":
		c.Input.Representation = "signmag"
	}

	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - HEXSPECT_ENDIAN: overrides input.endianness
//   - HEXSPECT_GROUP: overrides input.group_size
//   - HEXSPECT_GROUPS: overrides input.group_pattern
//   - HEXSPECT_WIDTH: overrides input.width
//   - HEXSPECT_REPR: overrides input.representation
//   - HEXSPECT_THEME: overrides display.theme
//   - HEXSPECT_COMPACT: set to "1" or "true" for compact mode
//   - HEXSPECT_NO_HISTORY: set to "1" or "true" to disable history
//   - HEXSPECT_HISTORY_PATH: overrides history.db_path
func (c *Config) ApplyEnvOverrides() {
	if endian := os.Getenv("HEXSPECT_ENDIAN"); endian != "" {
		c.Input.Endianness = endian
	}

	if group := os.Getenv("HEXSPECT_GROUP"); group != "" {
		if n, err := strconv.Atoi(group); err == nil {
			c.Input.GroupSize = n
		}
	}

	if groups := os.Getenv("HEXSPECT_GROUPS"); groups != "" {
		c.Input.GroupPattern = groups
	}

	if width := os.Getenv("HEXSPECT_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil {
			c.Input.Width = n
		}
	}

	if repr := os.Getenv("HEXSPECT_REPR"); repr != "" {
		c.Input.Representation = repr
	}

	if theme := os.Getenv("HEXSPECT_THEME"); theme != "" {
		c.Display.Theme = theme
	}

	if compact := os.Getenv("HEXSPECT_COMPACT"); compact != "" {
		c.Display.CompactMode = compact == "1" || strings.ToLower(compact) == "true"
	}

	if noHist := os.Getenv("HEXSPECT_NO_HISTORY"); noHist != "" {
		if noHist == "1" || strings.ToLower(noHist) == "true" {
			c.History.Enabled = false
		}
	}

	if path := os.Getenv("HEXSPECT_HISTORY_PATH"); path != "" {
		c.History.DBPath = path
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "input.width").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "input.width").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.ToLower(strVal) == "true" || strings.ToLower(strVal) == "yes"
			field.SetBool(boolVal)
			return nil
		}
	}

	// Direct assignment for matching types
	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}

	// Type conversion for compatible types
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"input.endianness",
		"input.group_size",
		"input.group_pattern",
		"input.width",
		"input.representation",
		"display.theme",
		"display.compact_mode",
		"display.show_binary",
		"display.show_ascii",
		"history.enabled",
		"history.max_entries",
		"history.db_path",
	}
}

// Merge merges another config into this one, overwriting only non-zero values.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Version != "" {
		c.Version = other.Version
	}

	if other.Input.Endianness != "" {
		c.Input.Endianness = other.Input.Endianness
	}
	if other.Input.GroupSize != 0 {
		c.Input.GroupSize = other.Input.GroupSize
	}
	if other.Input.GroupPattern != "" {
		c.Input.GroupPattern = other.Input.GroupPattern
	}
	if other.Input.Width != 0 {
		c.Input.Width = other.Input.Width
	}
	if other.Input.Representation != "" {
		c.Input.Representation = other.Input.Representation
	}

	if other.Display.Theme != "" {
		c.Display.Theme = other.Display.Theme
	}
	if other.Display.CompactMode {
		c.Display.CompactMode = true
	}
	if other.Display.ShowBinary {
		c.Display.ShowBinary = true
	}
	if other.Display.ShowAscii {
		c.Display.ShowAscii = true
	}

	if other.History.Enabled {
		c.History.Enabled = true
	}
	if other.History.MaxEntries != 0 {
		c.History.MaxEntries = other.History.MaxEntries
	}
	if other.History.DBPath != "" {
		c.History.DBPath = other.History.DBPath
	}
}

// Clone creates a copy of the configuration. The struct holds only value
// types, so a plain copy is a full copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
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
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
