package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"llm-game-gen/internal/core"
)

// Verify checks every pinned pack against its on-disk file: a missing
// file, a digest mismatch, or a pack file absent from the lock all fail
// the run. This is the integrity gate `play` runs behind.
func (s Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	lockPath := firstNonEmpty(req.LockPath, defaultLockFile)
	dataDir := strings.TrimSpace(req.DataDir)
	if dataDir == "" {
		return VerifyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("data dir is required")
	}
	lock, err := s.Lockfile.ReadLock(lockPath)
	if err != nil {
		return VerifyResult{}, err
	}
	if err := core.ValidateLock(ctx, lock); err != nil {
		return VerifyResult{}, err
	}

	paths, err := s.Store.ListPacks(dataDir)
	if err != nil {
		return VerifyResult{}, err
	}
	byName := map[string]string{}
	for _, path := range paths {
		byName[packName(path)] = path
	}

	verified := 0
	for _, record := range lock.Records {
		path, ok := byName[record.Name]
		if !ok {
			return VerifyResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("pack file for record %s not found in data dir", record.Name))
		}
		digest, err := core.FileDigest(path)
		if err != nil {
			return VerifyResult{}, err
		}
		if !core.MatchesRecord(record, digest) {
			return VerifyResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("hash mismatch for %s", record.Name))
		}
		verified++
		delete(byName, record.Name)
	}
	for name := range byName {
		return VerifyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("pack %s is not in the lock file; run `llm-game-gen lock`", name))
	}
	return VerifyResult{Records: len(lock.Records), Verified: verified}, nil
}
