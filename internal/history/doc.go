// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides persistent conversion history for hexspect.
//
// Every successful conversion can be recorded with its input text, parsed
// bytes, and the conversion parameters that were in effect. History lives
// in a SQLite database (modernc.org/sqlite, pure Go) at
// ~/.hexspect/history.db and is pruned to a configurable maximum size.
//
// # Usage
//
//	store, err := history.Open(path, 1000)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Record(ctx, &history.Entry{
//	    Kind:  history.KindHex,
//	    Input: "E8 08 B0 04",
//	    Bytes: "E8 08 B0 04",
//	})
package history
