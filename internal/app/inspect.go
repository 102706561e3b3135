package app

import (
	"context"
	"sort"

	"llm-game-gen/internal/core"
	"llm-game-gen/internal/shared"
)

// Inspect summarizes a lock file: its root, and each record's version,
// digest count, and dependents.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	lockPath := firstNonEmpty(req.LockPath, defaultLockFile)
	lock, err := s.Lockfile.ReadLock(lockPath)
	if err != nil {
		return InspectResult{}, err
	}
	if err := core.ValidateLock(ctx, lock); err != nil {
		return InspectResult{}, err
	}

	summaries := make([]InspectRecordSummary, 0, len(lock.Records))
	for _, record := range lock.Records {
		via := make([]string, 0, len(record.Via))
		for _, dependent := range record.Via {
			via = append(via, shared.NormalizePackName(dependent))
		}
		sort.Strings(via)
		summaries = append(summaries, InspectRecordSummary{
			Name:    shared.NormalizePackName(record.Name),
			Version: record.Version,
			Hashes:  len(record.Hashes),
			Via:     via,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return InspectResult{
		Root:    shared.NormalizePackName(lock.Root),
		Records: summaries,
	}, nil
}
