package adapters

import (
	"context"
	"os"

	"dkp-bootstrap/internal/ports"
)

type ProfileAdapter struct {
	runner commandRunner
}

func NewProfileAdapter() ProfileAdapter {
	return ProfileAdapter{}
}

func (a ProfileAdapter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Write tries a direct write first and falls back to a privileged tee
// for root-owned locations like /etc/profile.d.
func (a ProfileAdapter) Write(ctx context.Context, path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err == nil {
		return nil
	}
	return a.runner.pipePrivileged(ctx, content, "tee", path)
}

var _ ports.ProfilePort = ProfileAdapter{}
