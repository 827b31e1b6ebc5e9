// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path, maxEntries)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	e := &Entry{
		Kind:   KindHex,
		Input:  "E8 08 B0 04",
		Bytes:  "E8 08 B0 04",
		Endian: "little",
		Mode:   "twos",
	}
	require.NoError(t, store.Record(ctx, e))
	assert.NotEmpty(t, e.ID, "Record should assign an ID")
	assert.False(t, e.CreatedAt.IsZero(), "Record should assign a timestamp")

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "E8 08 B0 04", entries[0].Input)
	assert.Equal(t, KindHex, entries[0].Kind)
	assert.Equal(t, "little", entries[0].Endian)
}

func TestStore_RecentOrdering(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		e := &Entry{
			Kind:      KindNumber,
			Input:     string(rune('a' + i)),
			Bytes:     "00",
			Endian:    "big",
			Mode:      "unsigned",
			Width:     4,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Record(ctx, e))
	}

	entries, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e", entries[0].Input, "newest first")
	assert.Equal(t, "d", entries[1].Input)
	assert.Equal(t, "c", entries[2].Input)
}

func TestStore_PruneKeepsNewest(t *testing.T) {
	store := openTestStore(t, 3)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 6; i++ {
		e := &Entry{
			Kind:      KindHex,
			Input:     string(rune('0' + i)),
			Bytes:     "00",
			Endian:    "big",
			Mode:      "unsigned",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Record(ctx, e))
	}

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3, "prune should cap stored rows")
	assert.Equal(t, "5", entries[0].Input)
	assert.Equal(t, "3", entries[2].Input, "oldest rows pruned first")
}

func TestStore_Search(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	inputs := []string{"E8 08", "DE AD BE EF", "0x4D2"}
	for _, in := range inputs {
		require.NoError(t, store.Record(ctx, &Entry{
			Kind: KindHex, Input: in, Bytes: in, Endian: "big", Mode: "unsigned",
		}))
	}

	entries, err := store.Search(ctx, "DE AD", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "DE AD BE EF", entries[0].Input)

	entries, err = store.Search(ctx, "no match", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Get(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	e := &Entry{Kind: KindHex, Input: "E8 08", Bytes: "E8 08", Endian: "little", Mode: "twos"}
	require.NoError(t, store.Record(ctx, e))
	require.NotEmpty(t, e.ID)

	got, err := store.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "E8 08", got.Input)
	assert.Equal(t, "little", got.Endian)

	_, err = store.Get(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Entry{
		Kind: KindString, Input: "Hello", Bytes: "48 65 6C 6C 6F", Endian: "big", Mode: "unsigned",
	}))
	require.NoError(t, store.Clear(ctx))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_GetStats(t *testing.T) {
	store := openTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &Entry{Kind: KindHex, Input: "AA", Bytes: "AA", Endian: "big", Mode: "unsigned"}))
	require.NoError(t, store.Record(ctx, &Entry{Kind: KindHex, Input: "BB", Bytes: "BB", Endian: "big", Mode: "unsigned"}))
	require.NoError(t, store.Record(ctx, &Entry{Kind: KindNumber, Input: "42", Bytes: "2A", Endian: "big", Mode: "unsigned", Width: 1}))

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByKind[KindHex])
	assert.Equal(t, 1, stats.ByKind[KindNumber])
	assert.False(t, stats.Newest.Before(stats.Oldest))
}

func TestStore_ClosedErrors(t *testing.T) {
	store := openTestStore(t, 0)
	require.NoError(t, store.Close())

	ctx := context.Background()
	assert.ErrorIs(t, store.Record(ctx, &Entry{Kind: KindHex}), ErrClosed)
	_, err := store.Recent(ctx, 5)
	assert.ErrorIs(t, err, ErrClosed)
}
