package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-game-gen/internal/types"
)

const sampleLock = `# locked packs for llm-game-gen
# generated wholesale by ` + "`llm-game-gen lock`" + `; do not edit by hand
keep==1.0.0 \
    --hash=sha256:` + "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" + ` \
    --hash=sha256:` + "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc" + `
    # via llm-game-gen
lighthouse==1.0.0 \
    --hash=sha256:` + "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" + `
    # via
    #   keep
    #   llm-game-gen
`

func TestParseLockReadsRecordsAndVia(t *testing.T) {
	lock, err := ParseLock(sampleLock)
	require.NoError(t, err)

	assert.Equal(t, "llm-game-gen", lock.Root)
	require.Len(t, lock.Records, 2)

	keep := lock.Records[0]
	assert.Equal(t, "keep", keep.Name)
	assert.Equal(t, "1.0.0", keep.Version)
	assert.Equal(t, []string{
		strings.Repeat("a", 64),
		strings.Repeat("c", 64),
	}, keep.Hashes)
	assert.Equal(t, []string{"llm-game-gen"}, keep.Via)

	lighthouse := lock.Records[1]
	assert.Equal(t, "lighthouse", lighthouse.Name)
	assert.Equal(t, []string{"keep", "llm-game-gen"}, lighthouse.Via)
}

func TestRenderLockRoundTrips(t *testing.T) {
	lock, err := ParseLock(sampleLock)
	require.NoError(t, err)

	rendered := RenderLock(lock)
	assert.Equal(t, sampleLock, rendered)

	again, err := ParseLock(rendered)
	require.NoError(t, err)
	if diff := cmp.Diff(lock, again); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLockCanonicalOrder(t *testing.T) {
	digest := strings.Repeat("d", 64)
	lock := types.LockFile{
		Root: "llm-game-gen",
		Records: []types.LockRecord{
			{Name: "Zeta_Pack", Version: "2.0.0", Hashes: []string{digest}, Via: []string{"llm-game-gen"}},
			{Name: "alpha", Version: "1.0.0", Hashes: []string{digest}, Via: []string{"llm-game-gen"}},
		},
	}
	rendered := RenderLock(lock)
	alphaIdx := strings.Index(rendered, "alpha==")
	zetaIdx := strings.Index(rendered, "zeta-pack==")
	require.GreaterOrEqual(t, alphaIdx, 0)
	require.GreaterOrEqual(t, zetaIdx, 0)
	assert.Less(t, alphaIdx, zetaIdx)
}

func TestParseLockErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "empty file",
			doc:  "# generated wholesale\n",
			want: "no records",
		},
		{
			name: "header without version",
			doc:  "keep\n    --hash=sha256:" + strings.Repeat("a", 64) + "\n",
			want: "line 1: record header",
		},
		{
			name: "hash before any record",
			doc:  "    --hash=sha256:" + strings.Repeat("a", 64) + "\n",
			want: "line 1: hash line outside a record",
		},
		{
			name: "hash with wrong algorithm",
			doc:  "keep==1.0.0 \\\n    --hash=md5:deadbeef\n",
			want: "line 2: hash line must be of the form",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLock(tc.doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLockFileAdapterReadWrite(t *testing.T) {
	adapter := NewLockFileAdapter()
	path := filepath.Join(t.TempDir(), "packs.lock")

	lock, err := ParseLock(sampleLock)
	require.NoError(t, err)
	require.NoError(t, adapter.WriteLock(path, lock))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleLock, string(written))

	read, err := adapter.ReadLock(path)
	require.NoError(t, err)
	if diff := cmp.Diff(lock, read); diff != "" {
		t.Fatalf("read mismatch (-want +got):\n%s", diff)
	}
}

func TestLockFileAdapterMissingFile(t *testing.T) {
	adapter := NewLockFileAdapter()
	_, err := adapter.ReadLock(filepath.Join(t.TempDir(), "nope.lock"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock file not found")
}
