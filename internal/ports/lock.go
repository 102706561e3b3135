package ports

import "llm-game-gen/internal/types"

type LockfilePort interface {
	ReadLock(path string) (types.LockFile, error)
	WriteLock(path string, lock types.LockFile) error
}
