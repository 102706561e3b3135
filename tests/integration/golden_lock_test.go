package integration

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-game-gen/internal/adapters"
	"llm-game-gen/internal/app"
	"llm-game-gen/internal/ports"
	"llm-game-gen/internal/types"
	"llm-game-gen/tests/testutil"
)

// TestGoldenLock locks the committed fixture packs and compares the lock
// file against a committed golden copy. If the golden file does not
// exist yet (first run), it is written so it can be committed.
//
// To update the golden file after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenLock(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	outDir := t.TempDir()
	lockPath := filepath.Join(outDir, "packs.lock")

	service := app.NewService()
	result, err := service.Lock(t.Context(), app.LockRequest{
		SpecPath: filepath.Join(root, "fixtures", "pack.yaml"),
		DataDir:  filepath.Join(root, "fixtures", "game_data"),
		Output:   lockPath,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Records)

	actual, err := os.ReadFile(lockPath)
	require.NoError(t, err)

	goldenPath := filepath.Join(goldenDir, "packs.lock")
	if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
		// Golden file doesn't exist yet -- write it.
		require.NoError(t, os.MkdirAll(goldenDir, 0o755))
		require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
		t.Logf("golden file written: %s (commit it)", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual),
		"golden mismatch -- delete testdata/golden/ and re-run to regenerate")
}

// TestGoldenLockStructure verifies the structural properties of the lock
// file independent of the exact digests.
func TestGoldenLockStructure(t *testing.T) {
	root := testutil.RepoRoot(t)
	lockPath := filepath.Join(t.TempDir(), "packs.lock")

	service := app.NewService()
	_, err := service.Lock(t.Context(), app.LockRequest{
		SpecPath: filepath.Join(root, "fixtures", "pack.yaml"),
		DataDir:  filepath.Join(root, "fixtures", "game_data"),
		Output:   lockPath,
	})
	require.NoError(t, err)

	lock, err := adapters.NewLockFileAdapter().ReadLock(lockPath)
	require.NoError(t, err)

	t.Run("root matches the pack spec", func(t *testing.T) {
		assert.Equal(t, "llm-game-gen", lock.Root)
	})

	t.Run("records are sorted by name", func(t *testing.T) {
		names := make([]string, 0, len(lock.Records))
		for _, record := range lock.Records {
			names = append(names, record.Name)
		}
		sorted := make([]string, len(names))
		copy(sorted, names)
		sort.Strings(sorted)
		assert.Equal(t, sorted, names, "lock records must be sorted by name")
	})

	t.Run("every record is pinned and via the root", func(t *testing.T) {
		for _, record := range lock.Records {
			assert.Equal(t, "1.0.0", record.Version)
			assert.NotEmpty(t, record.Hashes, "record %s has no hashes", record.Name)
			for _, digest := range record.Hashes {
				assert.Regexp(t, "^[0-9a-f]{64}$", digest)
			}
			assert.Equal(t, []string{"llm-game-gen"}, record.Via)
		}
	})

	t.Run("verify accepts the fresh lock", func(t *testing.T) {
		verify, err := service.Verify(t.Context(), app.VerifyRequest{
			DataDir:  filepath.Join(root, "fixtures", "game_data"),
			LockPath: lockPath,
		})
		require.NoError(t, err)
		assert.Equal(t, len(lock.Records), verify.Verified)
	})
}

type cannedLLM struct {
	reply string
}

func (c cannedLLM) Chat(_ context.Context, _ []types.ChatMessage) (string, error) {
	return c.reply, nil
}

const cannedReply = "Here is your world:\n```json\n" + `{
  "rooms": [
    {
      "roomStart": true,
      "roomName": "Lamp Room",
      "roomDescription": "Glass walls and a dead lantern",
      "roomItems": [
        {"itemName": "wick", "itemDescription": "Still usable"}
      ],
      "roomConnections": ["Gallery"]
    },
    {
      "roomName": "Gallery",
      "roomDescription": "A walkway around the tower",
      "roomItems": [
        {"itemObjective": true, "itemName": "keeper's log", "itemDescription": "The last entry is unfinished"}
      ],
      "roomConnections": ["Lamp Room"],
      "roomRequirements": ["wick"]
    }
  ]
}` + "\n```"

// TestGenerateLockVerifyPipeline drives the whole workflow with a canned
// model reply: generate a pack, pin it, verify it, and load it back.
func TestGenerateLockVerifyPipeline(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "game_data")
	lockPath := filepath.Join(root, "packs.lock")
	specPath := filepath.Join(root, "pack.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(`api_version: v1
kind: pack
metadata:
  name: lighthouse-packs
  version: "0.2.0"
generation:
  theme: abandoned lighthouse
`), 0644))

	service := app.NewService()
	service.NewLLM = func(_ context.Context, _ ports.BackendConfig) (ports.LLMPort, error) {
		return cannedLLM{reply: cannedReply}, nil
	}

	generated, err := service.Generate(t.Context(), app.GenerateRequest{
		SpecPath: specPath,
		DataDir:  dataDir,
		Output:   "lighthouse",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, generated.Attempts)
	assert.Equal(t, 2, generated.Rooms)
	assert.Equal(t, 2, generated.Items)

	locked, err := service.Lock(t.Context(), app.LockRequest{
		SpecPath: specPath,
		DataDir:  dataDir,
		Output:   lockPath,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, locked.Records)

	lock, err := adapters.NewLockFileAdapter().ReadLock(lockPath)
	require.NoError(t, err)
	assert.Equal(t, "lighthouse-packs", lock.Root)
	require.Len(t, lock.Records, 1)
	assert.Equal(t, "lighthouse", lock.Records[0].Name)
	assert.Equal(t, "0.2.0", lock.Records[0].Version)

	_, err = service.Verify(t.Context(), app.VerifyRequest{
		DataDir:  dataDir,
		LockPath: lockPath,
	})
	require.NoError(t, err)

	loaded, err := service.Load(app.LoadRequest{PackPath: generated.PackPath})
	require.NoError(t, err)
	assert.Equal(t, "Lamp Room", loaded.Data.StartingRoom.Name)
	assert.Equal(t, "keeper's log", loaded.Data.Objective.Name)

	// Tampering after the lock must fail verification.
	require.NoError(t, os.WriteFile(generated.PackPath, []byte(`{"rooms": []}`), 0644))
	_, err = service.Verify(t.Context(), app.VerifyRequest{
		DataDir:  dataDir,
		LockPath: lockPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash mismatch for lighthouse")
}
