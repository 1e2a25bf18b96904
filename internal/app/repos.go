package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/core"
	"dkp-bootstrap/internal/types"
)

// configureRepositories appends the library repository and the one
// host-specific repository to pacman.conf, skipping entries that are
// already configured so reruns leave the file untouched.
func (s Service) configureRepositories(ctx context.Context, host types.HostEnvironment) ([]RepoChange, error) {
	entries := []types.RepositoryEntry{
		core.LibraryRepository(),
		core.HostVariant(host),
	}
	changes := make([]RepoChange, 0, len(entries))
	for _, entry := range entries {
		change, err := s.ensureRepository(ctx, entry)
		if err != nil {
			return changes, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

func (s Service) ensureRepository(ctx context.Context, entry types.RepositoryEntry) (RepoChange, error) {
	change := RepoChange{Name: entry.Name}
	content, err := s.PacmanConf.Read()
	if err != nil {
		return change, err
	}
	if core.HasRepository(content, entry.Name) {
		change.Outcome = types.AppendOutcomeAlreadyPresent
		log.Ctx(ctx).Debug().Str("repo", entry.Name).Msg("repository already configured")
		return change, nil
	}
	if err := s.PacmanConf.Append(ctx, core.RenderRepositoryBlock(entry)); err != nil {
		return change, err
	}
	change.Outcome = types.AppendOutcomeAppended
	log.Ctx(ctx).Info().Str("repo", entry.Name).Str("conf", s.PacmanConf.Path()).Msg("repository added")
	return change, nil
}
