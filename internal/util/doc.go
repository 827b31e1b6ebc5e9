// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the hexspect application.
//
// This package contains common helper functions used throughout the
// application for string display and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - PadWidth: display-width aware right padding (CJK safe)
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
package util
