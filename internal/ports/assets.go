package ports

import (
	"context"

	"dkp-bootstrap/internal/types"
)

type AssetPort interface {
	SourceExists(dir string) bool
	CreatePlaceholder(dir string) error
	Mirror(ctx context.Context, src string, dest string) error
}

type BuildDescriptorPort interface {
	Load(path string) (types.BuildDescriptor, bool, error)
	RunBuild(ctx context.Context, dir string) error
}
