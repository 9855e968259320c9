package jsonstore

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := New[string](dir, ReferenceNamesFile, slog.Default())

	require.NoError(t, store.Put("J100", "Rotor overhaul"))
	require.NoError(t, store.Put("J200", "Pump rebuild"))

	v, ok := store.Get("J100")
	assert.True(t, ok)
	assert.Equal(t, "Rotor overhaul", v)

	assert.Len(t, store.All(), 2)
}

func TestStore_MissingFileReadsEmpty(t *testing.T) {
	store := New[float64](t.TempDir(), OrderValuesFile, slog.Default())

	assert.Empty(t, store.All())
	_, ok := store.Get("J100")
	assert.False(t, ok)
}

func TestStore_CorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DueDatesFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := New[string](dir, DueDatesFile, slog.Default())

	assert.Empty(t, store.All())

	// A write after corruption starts a fresh map rather than failing.
	require.NoError(t, store.Put("J100", "2030-01-01"))
	v, ok := store.Get("J100")
	assert.True(t, ok)
	assert.Equal(t, "2030-01-01", v)
}

func TestStore_PutPreservesOtherKeys(t *testing.T) {
	dir := t.TempDir()
	store := New[float64](dir, OrderValuesFile, slog.Default())

	require.NoError(t, store.Put("J100", 50000))
	require.NoError(t, store.Put("J200", 75000))
	require.NoError(t, store.Put("J100", 55000))

	v, _ := store.Get("J100")
	assert.Equal(t, 55000.0, v)
	v, _ = store.Get("J200")
	assert.Equal(t, 75000.0, v)
}
