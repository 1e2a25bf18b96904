package adapters

import (
	"context"
	"time"

	"dkp-bootstrap/internal/ports"
)

// Keyservers regularly hang instead of refusing, so each receive gets
// its own deadline.
const keyserverTimeout = 30 * time.Second

type KeyTrustAdapter struct {
	runner commandRunner
}

func NewKeyTrustAdapter() KeyTrustAdapter {
	return KeyTrustAdapter{}
}

func (a KeyTrustAdapter) ReceiveKey(ctx context.Context, keyID string, keyserver string) error {
	ctx, cancel := context.WithTimeout(ctx, keyserverTimeout)
	defer cancel()
	return a.runner.privileged(ctx, "pacman-key", "--keyserver", keyserver, "--recv", keyID)
}

func (a KeyTrustAdapter) SignKey(ctx context.Context, keyID string) error {
	return a.runner.privileged(ctx, "pacman-key", "--lsign", keyID)
}

var _ ports.KeyTrustPort = KeyTrustAdapter{}
