package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"llm-game-gen/internal/core"
	"llm-game-gen/internal/shared"
)

// Load reads and decodes a single game-data pack.
func (s Service) Load(req LoadRequest) (LoadResult, error) {
	packPath := strings.TrimSpace(req.PackPath)
	if packPath == "" {
		return LoadResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pack path is required")
	}
	data, err := s.Store.ReadPack(packPath)
	if err != nil {
		return LoadResult{}, err
	}
	decoded, err := core.DecodeGameData(data)
	if err != nil {
		return LoadResult{}, err
	}
	return LoadResult{
		PackName: packName(packPath),
		Data:     decoded,
	}, nil
}

func packName(path string) string {
	base := filepath.Base(path)
	return shared.NormalizePackName(strings.TrimSuffix(base, filepath.Ext(base)))
}
