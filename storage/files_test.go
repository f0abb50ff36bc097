package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(dir, filepath.Join(dir, "backup"))
}

func TestResolveStrict(t *testing.T) {
	s := newTestStore(t)

	fp, err := s.Resolve("pricelist", "de")
	require.NoError(t, err)
	assert.Equal(t, "pricelist.de.json", filepath.Base(fp))

	_, err = s.Resolve("passwd", "de")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = s.Resolve("pricelist", "")
	assert.ErrorIs(t, err, ErrInvalidLang)

	_, err = s.Resolve("pricelist", "fr")
	assert.ErrorIs(t, err, ErrInvalidLang)
}

func TestReadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Read("labor", "en")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	body := map[string]any{"currency": "EUR", "updated": "2025-06-01", "items": []any{}}

	file, err := s.Write("labor", "de", body)
	require.NoError(t, err)
	assert.Equal(t, "labor.de.json", file)

	raw, err := s.Read("labor", "de")
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), raw[len(raw)-1])

	// stored bytes re-serialize to themselves with stable formatting
	var decoded any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	again, err := json.MarshalIndent(decoded, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(again)+"\n")
}

func TestWriteBackupsPreviousContent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Write("pricelist", "de", map[string]any{"updated": "v1"})
	require.NoError(t, err)

	// first write had no prior file, no backup yet
	entries, _ := os.ReadDir(s.BackupDir)
	assert.Empty(t, entries)

	_, err = s.Write("pricelist", "de", map[string]any{"updated": "v2"})
	require.NoError(t, err)
	_, err = s.Write("pricelist", "de", map[string]any{"updated": "v3"})
	require.NoError(t, err)

	entries, err = os.ReadDir(s.BackupDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].Name(), entries[1].Name())
	for _, e := range entries {
		assert.Contains(t, e.Name(), "pricelist-")
		assert.NotContains(t, e.Name(), ":")
	}

	// the live file reflects only the last write
	raw, err := s.Read("pricelist", "de")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "v3")
}

func TestPruneBackups(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.BackupDir, 0o755))

	old := filepath.Join(s.BackupDir, "pricelist-old.json")
	require.NoError(t, os.WriteFile(old, []byte("{}"), 0o644))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	fresh := filepath.Join(s.BackupDir, "pricelist-new.json")
	require.NoError(t, os.WriteFile(fresh, []byte("{}"), 0o644))

	removed, err := s.PruneBackups(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(old)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestPruneBackupsNoDir(t *testing.T) {
	s := newTestStore(t)
	removed, err := s.PruneBackups(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
