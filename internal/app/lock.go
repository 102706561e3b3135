package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"llm-game-gen/internal/core"
	"llm-game-gen/internal/types"
)

const defaultLockFile = "packs.lock"

// Lock regenerates the lock file wholesale from the packs in the data
// dir. Every pack must decode before it is pinned; the record carries
// the pack spec's version and is via the root project.
func (s Service) Lock(ctx context.Context, req LockRequest) (LockResult, error) {
	specPath := strings.TrimSpace(req.SpecPath)
	if specPath == "" {
		return LockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pack spec path is required")
	}
	spec, err := s.Specs.LoadPack(specPath)
	if err != nil {
		return LockResult{}, err
	}
	dataDir := firstNonEmpty(req.DataDir, spec.Defaults.DataDir)
	if dataDir == "" {
		return LockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("data dir is required")
	}
	output := firstNonEmpty(req.Output, spec.Defaults.LockFile, defaultLockFile)

	paths, err := s.Store.ListPacks(dataDir)
	if err != nil {
		return LockResult{}, err
	}
	if len(paths) == 0 {
		return LockResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("data dir contains no pack files")
	}

	root := spec.Metadata.Name
	var records []types.LockRecord
	for _, path := range paths {
		data, err := s.Store.ReadPack(path)
		if err != nil {
			return LockResult{}, err
		}
		if _, err := core.DecodeGameData(data); err != nil {
			return LockResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("pack %s does not decode and cannot be locked", packName(path))).
				WithCause(err)
		}
		records = append(records, types.LockRecord{
			Name:    packName(path),
			Version: spec.Metadata.Version,
			Hashes:  []string{core.Digest(data)},
			Via:     []string{root},
		})
	}

	lock := types.LockFile{Root: root, Records: records}
	if err := core.ValidateLock(ctx, lock); err != nil {
		return LockResult{}, err
	}
	if err := s.Lockfile.WriteLock(output, lock); err != nil {
		return LockResult{}, err
	}
	log.Info().Str("lock", output).Int("records", len(records)).Msg("regenerated lock file")
	return LockResult{LockPath: output, Records: len(records)}, nil
}
