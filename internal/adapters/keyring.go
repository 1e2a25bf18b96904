package adapters

import (
	"context"

	"dkp-bootstrap/internal/ports"
)

type KeyringAdapter struct {
	runner commandRunner
}

func NewKeyringAdapter() KeyringAdapter {
	return KeyringAdapter{}
}

func (a KeyringAdapter) InstallRemote(ctx context.Context, packageURL string) error {
	return a.runner.privileged(ctx, "pacman", "-U", "--noconfirm", packageURL)
}

func (a KeyringAdapter) PopulateLocal(ctx context.Context, keyringName string) error {
	return a.runner.privileged(ctx, "pacman-key", "--populate", keyringName)
}

var _ ports.KeyringPort = KeyringAdapter{}
