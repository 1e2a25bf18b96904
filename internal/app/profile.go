package app

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/core"
	"dkp-bootstrap/internal/policies"
	"dkp-bootstrap/internal/types"
)

// maybeWriteProfile offers to persist the toolchain environment
// variables. Declines and write failures are recorded, never fatal.
func (s Service) maybeWriteProfile(ctx context.Context, req BootstrapRequest) types.ProfileOutcome {
	path := filepath.Join(profileDir, profileFileName)
	if s.Profile.Exists(path) {
		log.Ctx(ctx).Debug().Str("path", path).Msg("profile script already present")
		return types.ProfileOutcomeAlreadyExists
	}
	if !s.confirm(req, policies.ProfileWritePrompt(path)) {
		s.Notifier.Notice("skipping profile script, export DEVKITPRO yourself before building")
		return types.ProfileOutcomeDeclined
	}
	includeTools := s.Profile.Exists(filepath.Join(req.DevkitproPath, "tools", "bin"))
	script := core.RenderProfileScript(req.DevkitproPath, includeTools)
	if err := s.Profile.Write(ctx, path, script); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("profile script write failed")
		return types.ProfileOutcomeNoPermission
	}
	log.Ctx(ctx).Info().Str("path", path).Msg("profile script written")
	return types.ProfileOutcomeWritten
}
