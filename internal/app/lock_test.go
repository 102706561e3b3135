package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPack = `{
  "rooms": [
    {
      "roomStart": true,
      "roomName": "Cellar",
      "roomDescription": "Smells of earth",
      "roomItems": [
        {"itemObjective": true, "itemName": "coin", "itemDescription": "Copper"}
      ]
    }
  ]
}`

func writeLockFixtures(t *testing.T) (specPath string, dataDir string, lockPath string) {
	t.Helper()
	root := t.TempDir()
	dataDir = filepath.Join(root, "game_data")
	lockPath = filepath.Join(root, "packs.lock")
	specPath = filepath.Join(root, "pack.yaml")
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "cellar.json"), []byte(testPack), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "Old_Keep.json"), []byte(testPack), 0644))
	spec := `api_version: v1
kind: pack
metadata:
  name: llm-game-gen
  version: "1.0.0"
  owners: [games@example.com]
`
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0644))
	return specPath, dataDir, lockPath
}

func TestLockPinsEveryPack(t *testing.T) {
	specPath, dataDir, lockPath := writeLockFixtures(t)
	service := testService(nil)

	result, err := service.Lock(t.Context(), LockRequest{
		SpecPath: specPath,
		DataDir:  dataDir,
		Output:   lockPath,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, lockPath, result.LockPath)

	content, err := os.ReadFile(lockPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# locked packs for llm-game-gen")
	assert.Contains(t, string(content), "cellar==1.0.0")
	assert.Contains(t, string(content), "old-keep==1.0.0")
	assert.Contains(t, string(content), "# via llm-game-gen")
}

func TestLockRejectsUndecodablePack(t *testing.T) {
	specPath, dataDir, lockPath := writeLockFixtures(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "broken.json"), []byte(`{"rooms": []}`), 0644))

	service := testService(nil)
	_, err := service.Lock(t.Context(), LockRequest{
		SpecPath: specPath,
		DataDir:  dataDir,
		Output:   lockPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pack broken does not decode")
}

func TestLockRequiresSpec(t *testing.T) {
	service := testService(nil)
	_, err := service.Lock(t.Context(), LockRequest{DataDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pack spec path is required")
}

func TestLockEmptyDataDir(t *testing.T) {
	specPath, _, lockPath := writeLockFixtures(t)
	empty := t.TempDir()

	service := testService(nil)
	_, err := service.Lock(t.Context(), LockRequest{
		SpecPath: specPath,
		DataDir:  empty,
		Output:   lockPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no pack files")
}
