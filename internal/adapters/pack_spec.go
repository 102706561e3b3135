package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"llm-game-gen/internal/types"
)

type PackSpecAdapter struct{}

func NewPackSpecAdapter() PackSpecAdapter {
	return PackSpecAdapter{}
}

func (a PackSpecAdapter) LoadPack(path string) (types.PackSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("pack spec not found").
			WithCause(err)
	}
	var spec types.PackSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.PackSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pack spec yaml").
			WithCause(err)
	}
	if spec.Kind != types.SpecKindPack {
		return types.PackSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind is not pack")
	}
	return spec, nil
}
