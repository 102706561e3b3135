package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-game-gen/internal/types"
)

func TestDigestMatchesFileDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.json")
	content := []byte(`{"rooms": []}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	fromFile, err := FileDigest(path)
	require.NoError(t, err)
	assert.Equal(t, Digest(content), fromFile)
	assert.Len(t, fromFile, 64)
}

func TestFileDigestMissingFile(t *testing.T) {
	_, err := FileDigest(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pack file not found")
}

func TestMatchesRecordAcceptsAnyListedHash(t *testing.T) {
	digest := Digest([]byte("payload"))
	record := types.LockRecord{Hashes: []string{Digest([]byte("other")), digest}}
	assert.True(t, MatchesRecord(record, digest))
	assert.False(t, MatchesRecord(record, Digest([]byte("tampered"))))
}
