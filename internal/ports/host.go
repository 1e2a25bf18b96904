package ports

import (
	"context"

	"dkp-bootstrap/internal/types"
)

type HostProbePort interface {
	Detect(ctx context.Context) types.HostEnvironment
}
