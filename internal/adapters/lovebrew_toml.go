package adapters

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"dkp-bootstrap/internal/ports"
	"dkp-bootstrap/internal/types"
)

type BuildDescriptorAdapter struct {
	runner commandRunner
}

func NewBuildDescriptorAdapter() BuildDescriptorAdapter {
	return BuildDescriptorAdapter{}
}

// Load reads a lovebrew.toml descriptor. A missing file is reported via
// the found flag rather than an error.
func (a BuildDescriptorAdapter) Load(path string) (types.BuildDescriptor, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.BuildDescriptor{}, false, nil
		}
		return types.BuildDescriptor{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read build descriptor").
			WithCause(err)
	}
	var descriptor types.BuildDescriptor
	if err := toml.Unmarshal(content, &descriptor); err != nil {
		return types.BuildDescriptor{}, true, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse build descriptor").
			WithCause(err)
	}
	return descriptor, true, nil
}

func (a BuildDescriptorAdapter) RunBuild(ctx context.Context, dir string) error {
	return a.runner.interactive(ctx, dir, "lovebrew", "build")
}

var _ ports.BuildDescriptorPort = BuildDescriptorAdapter{}
