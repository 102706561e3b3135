package adapters

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// PackStoreAdapter is the filesystem view of a data dir full of
// game-data packs (one JSON document per file).
type PackStoreAdapter struct{}

func NewPackStoreAdapter() PackStoreAdapter {
	return PackStoreAdapter{}
}

func (a PackStoreAdapter) ListPacks(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("data dir not found").
			WithCause(err)
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list pack files").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (a PackStoreAdapter) ReadPack(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("pack file not found").
			WithCause(err)
	}
	return data, nil
}

func (a PackStoreAdapter) WritePack(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create data dir").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}
