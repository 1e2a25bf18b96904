package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/policies"
	"dkp-bootstrap/internal/types"
)

// deployAssets mirrors the checkout's asset directory into the LoveBrew
// workspace and runs a build when a descriptor is present.
func (s Service) deployAssets(ctx context.Context, req BootstrapRequest, checkout types.RepoCheckout) (DeployResult, error) {
	if checkout.Destination == "" {
		return DeployResult{Outcome: types.DeployOutcomeSkipped}, nil
	}

	lovebrewPath := strings.TrimSpace(req.LovebrewPath)
	if lovebrewPath == "" {
		lovebrewPath = s.input(req, "LoveBrew workspace path (empty to skip asset deployment)")
	}
	if lovebrewPath == "" {
		return DeployResult{Outcome: types.DeployOutcomeSkipped}, nil
	}

	deployment := types.AssetDeployment{
		SourceDir: filepath.Join(checkout.Destination, assetSubdir),
		DestDir:   filepath.Join(lovebrewPath, "romfs", projectName),
	}
	deployment.SourceExists = s.Assets.SourceExists(deployment.SourceDir)

	if !deployment.SourceExists {
		if !s.confirm(req, policies.PlaceholderPrompt(deployment.SourceDir)) {
			return DeployResult{Outcome: types.DeployOutcomeNoSource, Deployment: deployment}, nil
		}
		if err := s.Assets.CreatePlaceholder(deployment.SourceDir); err != nil {
			return DeployResult{Outcome: types.DeployOutcomeNoSource, Deployment: deployment}, err
		}
		deployment.SourceExists = true
	}

	if err := s.Assets.Mirror(ctx, deployment.SourceDir, deployment.DestDir); err != nil {
		return DeployResult{Outcome: types.DeployOutcomeNoSource, Deployment: deployment}, err
	}
	log.Ctx(ctx).Info().
		Str("src", deployment.SourceDir).
		Str("dest", deployment.DestDir).
		Msg("assets deployed")

	result := DeployResult{Outcome: types.DeployOutcomeDeployed, Deployment: deployment}

	descriptor, found, err := s.Descriptor.Load(filepath.Join(lovebrewPath, descriptorName))
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("build descriptor unreadable, skipping build")
		return result, nil
	}
	if !found {
		s.Notifier.Notice("no " + descriptorName + " found, skipping build")
		return result, nil
	}
	log.Ctx(ctx).Info().
		Str("title", descriptor.Metadata.Title).
		Strs("targets", descriptor.Build.Targets).
		Msg("running lovebrew build")
	if err := s.Descriptor.RunBuild(ctx, lovebrewPath); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("lovebrew build failed")
		return result, nil
	}
	result.BuildRan = true
	return result, nil
}
