package ports

import "llm-game-gen/internal/types"

type PackSpecPort interface {
	LoadPack(path string) (types.PackSpec, error)
}
