package core

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"llm-game-gen/internal/types"
)

// Digest returns the lowercase hex sha256 digest of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FileDigest returns the lowercase hex sha256 digest of the file at path.
func FileDigest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("pack file not found").
			WithCause(err)
	}
	defer file.Close()
	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to hash pack file").
			WithCause(err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// MatchesRecord reports whether digest equals any of the record's pinned
// hashes. A record with several hashes accepts any one of them, the same
// way an installer accepts any listed artifact digest.
func MatchesRecord(record types.LockRecord, digest string) bool {
	for _, hash := range record.Hashes {
		if hash == digest {
			return true
		}
	}
	return false
}
