// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hexspect.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - InputConfig: Default conversion parameters (endianness, width, repr)
//   - DisplayConfig: Theme and layout settings
//   - HistoryConfig: Conversion history settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (HEXSPECT_*)
//   - ~/.hexspect/config.toml
//   - ~/.hexspect/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	endian := cfg.Input.Endianness
//	width := cfg.Input.Width
package config
