package adapters

import (
	"context"

	"dkp-bootstrap/internal/ports"
)

// BootstrapScriptAdapter runs the downloaded installer script with the
// terminal attached, since the script prompts and prints progress.
type BootstrapScriptAdapter struct {
	runner commandRunner
}

func NewBootstrapScriptAdapter() BootstrapScriptAdapter {
	return BootstrapScriptAdapter{}
}

func (a BootstrapScriptAdapter) Run(ctx context.Context, path string) error {
	return a.runner.privilegedInteractive(ctx, "bash", path)
}

var _ ports.BootstrapScriptPort = BootstrapScriptAdapter{}
