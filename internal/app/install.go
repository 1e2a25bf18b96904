package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/core"
	"dkp-bootstrap/internal/policies"
	"dkp-bootstrap/internal/types"
)

// runManualConfig wires the repositories into an existing pacman
// instead of installing the bundled one. The actual toolchain install
// is left to the user, who gets the exact command to run.
func (s Service) runManualConfig(ctx context.Context, req BootstrapRequest, set types.PackageSet, result *BootstrapResult) error {
	if !result.Host.HasPacman {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("system pacman requested but pacman is not installed")
	}
	if core.IsOlderVersion(result.Host.PacmanVersion, minimumPacman) {
		log.Ctx(ctx).Warn().
			Str("version", result.Host.PacmanVersion).
			Str("minimum", minimumPacman).
			Msg("pacman is older than the supported minimum")
	}

	result.Trust = s.establishTrust(ctx)
	result.Keyring = s.installKeyring(ctx)

	repos, err := s.configureRepositories(ctx, result.Host)
	if err != nil {
		return err
	}
	result.Repos = repos

	if err := s.Packages.UpgradeSystem(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("system upgrade failed, continuing")
	}

	s.Notifier.Suggest(
		"install the toolchain package groups with:",
		"sudo "+core.RenderInstallCommand("pacman", set.Packages),
	)
	return nil
}

// runGuidedInstall downloads and runs the upstream installer script,
// then offers to install the curated package groups.
func (s Service) runGuidedInstall(ctx context.Context, req BootstrapRequest, set types.PackageSet, result *BootstrapResult) error {
	if err := s.installPrerequisites(ctx, result.Host, set.Prerequisites); err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "dkp-bootstrap-")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create staging directory").
			WithCause(err)
	}
	defer os.RemoveAll(tempDir)

	scriptPath := filepath.Join(tempDir, "install-devkitpro-pacman")
	if err := s.Downloader.Fetch(ctx, installerURL, scriptPath); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("path", scriptPath).Msg("installer downloaded")

	if err := s.Bootstrap.Run(ctx, scriptPath); err != nil {
		return err
	}

	if !s.confirm(req, policies.CuratedInstallPrompt(set.Packages)) {
		s.Notifier.Notice("skipping curated package groups")
		return nil
	}
	if err := s.Packages.InstallToolchain(ctx, set.Packages); err != nil {
		s.Notifier.Suggest(
			"package installation failed, retry with:",
			"sudo "+core.RenderInstallCommand(s.Packages.ToolchainTool(), set.Packages),
		)
		return err
	}
	return nil
}

func (s Service) installPrerequisites(ctx context.Context, host types.HostEnvironment, prerequisites []string) error {
	switch {
	case host.OSFamily == types.OSFamilyDebian:
		if err := s.Packages.UpdateAptIndex(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("apt index refresh failed, trying install anyway")
		}
		return s.Packages.InstallWithApt(ctx, prerequisites)
	case host.HasPacman:
		return s.Packages.InstallWithPacman(ctx, prerequisites)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no supported package manager found for prerequisites")
	}
}
