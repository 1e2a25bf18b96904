package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/types"
)

// installKeyring installs the packaged keyring, falling back to
// populating from the local keyring data. Like key trust this is
// best-effort.
func (s Service) installKeyring(ctx context.Context) types.KeyringOutcome {
	err := s.Keyring.InstallRemote(ctx, keyringPackageURL)
	if err == nil {
		return types.KeyringOutcomeInstalled
	}
	log.Ctx(ctx).Warn().Err(err).Msg("keyring package install failed, trying populate")

	if err := s.Keyring.PopulateLocal(ctx, keyringName); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("keyring populate failed")
		return types.KeyringOutcomeFailed
	}
	return types.KeyringOutcomePopulated
}
