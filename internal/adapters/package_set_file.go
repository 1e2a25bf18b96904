package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"dkp-bootstrap/internal/ports"
	"dkp-bootstrap/internal/types"
)

type PackageSetFileAdapter struct{}

func NewPackageSetFileAdapter() PackageSetFileAdapter {
	return PackageSetFileAdapter{}
}

func (a PackageSetFileAdapter) Load(path string) (types.PackageSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackageSet{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package set file not found").
			WithCause(err)
	}
	var set types.PackageSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return types.PackageSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package set yaml").
			WithCause(err)
	}
	return set, nil
}

var _ ports.PackageSetPort = PackageSetFileAdapter{}
