package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/policies"
	"dkp-bootstrap/internal/types"
)

// Run drives a full bootstrap: probe the host, install or describe the
// toolchain, write the profile script, sync the project checkout and
// deploy its assets.
func (s Service) Run(ctx context.Context, req BootstrapRequest) (BootstrapResult, error) {
	req = withDefaults(req)
	started := s.Clock()
	defer func() {
		log.Ctx(ctx).Debug().Dur("elapsed", s.Clock().Sub(started)).Msg("bootstrap finished")
	}()

	result := BootstrapResult{}
	result.Host = s.HostProbe.Detect(ctx)
	log.Ctx(ctx).Info().
		Str("os_family", string(result.Host.OSFamily)).
		Bool("has_pacman", result.Host.HasPacman).
		Str("pacman_version", result.Host.PacmanVersion).
		Bool("windows_compat", result.Host.IsWindowsCompat).
		Bool("musl", result.Host.UsesMuslLibc).
		Msg("host detected")

	set, err := s.loadPackageSet(ctx, req)
	if err != nil {
		return result, err
	}

	result.Mode = installMode(req)
	switch result.Mode {
	case types.InstallModeManualConfig:
		if err := s.runManualConfig(ctx, req, set, &result); err != nil {
			return result, err
		}
	case types.InstallModeGuidedInstall:
		if err := s.runGuidedInstall(ctx, req, set, &result); err != nil {
			return result, err
		}
	default:
		s.Notifier.Notice("skipping toolchain installation")
	}

	result.Profile = s.maybeWriteProfile(ctx, req)

	sync, err := s.syncCheckout(ctx, req)
	if err != nil {
		return result, err
	}
	result.Sync = sync

	deploy, err := s.deployAssets(ctx, req, sync.Checkout)
	if err != nil {
		return result, err
	}
	result.Deploy = deploy

	return result, nil
}

func withDefaults(req BootstrapRequest) BootstrapRequest {
	if strings.TrimSpace(req.DevkitproPath) == "" {
		req.DevkitproPath = defaultDevkitpro
	}
	return req
}

// installMode resolves the flag combination. Skipping wins over manual
// config so --no-install means what it says even when both are given.
func installMode(req BootstrapRequest) types.InstallMode {
	if req.NoInstall {
		return types.InstallModeSkip
	}
	if req.UseSystemPacman {
		return types.InstallModeManualConfig
	}
	return types.InstallModeGuidedInstall
}

func (s Service) loadPackageSet(ctx context.Context, req BootstrapRequest) (types.PackageSet, error) {
	set := defaultPackageSet()
	if strings.TrimSpace(req.PackageSetPath) != "" {
		override, err := s.PackageSet.Load(req.PackageSetPath)
		if err != nil {
			return types.PackageSet{}, err
		}
		if len(override.Prerequisites) > 0 {
			set.Prerequisites = override.Prerequisites
		}
		if len(override.Packages) > 0 {
			set.Packages = override.Packages
		}
		log.Ctx(ctx).Debug().Str("path", req.PackageSetPath).Msg("package set overridden")
	}
	assert.NotEmpty(ctx, strings.Join(set.Prerequisites, " "), "prerequisite list must not be empty")
	assert.NotEmpty(ctx, strings.Join(set.Packages, " "), "package list must not be empty")
	return set, nil
}

func (s Service) confirm(req BootstrapRequest, prompt policies.Prompt) bool {
	if req.NonInteractive {
		return prompt.Default
	}
	return s.Prompt.Confirm(prompt.Question, prompt.Default)
}

func (s Service) input(req BootstrapRequest, question string) string {
	if req.NonInteractive {
		return ""
	}
	return s.Prompt.Input(question)
}
