package app

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"dkp-bootstrap/internal/core"
	"dkp-bootstrap/internal/types"
)

// syncCheckout locates or creates the project checkout. Running inside
// an existing checkout wins over cloning, and a failed pull degrades
// to using the stale work tree.
func (s Service) syncCheckout(ctx context.Context, req BootstrapRequest) (SyncResult, error) {
	if checkout, ok := s.currentCheckout(ctx); ok {
		log.Ctx(ctx).Info().Str("dir", checkout.Destination).Msg("running inside the project checkout")
		return SyncResult{Outcome: types.SyncOutcomeCurrentWorkTree, Checkout: checkout}, nil
	}

	if !req.CloneRepo {
		return SyncResult{Outcome: types.SyncOutcomeSkipped}, nil
	}

	dest := defaultCheckoutDir()
	checkout := types.RepoCheckout{
		Destination: dest,
		RemoteURL:   projectHTTPSURL,
	}

	if s.Git.IsRepo(dest) {
		checkout.AlreadyExists = true
		if err := s.Git.PullFFOnly(ctx, dest); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("dir", dest).Msg("pull failed, using existing work tree")
			return SyncResult{Outcome: types.SyncOutcomePullFailed, Checkout: checkout}, nil
		}
		log.Ctx(ctx).Info().Str("dir", dest).Msg("checkout updated")
		return SyncResult{Outcome: types.SyncOutcomePulled, Checkout: checkout}, nil
	}

	if err := s.Git.Clone(ctx, projectHTTPSURL, dest); err != nil {
		return SyncResult{Outcome: types.SyncOutcomeSkipped}, err
	}
	log.Ctx(ctx).Info().Str("dir", dest).Msg("checkout cloned")
	return SyncResult{Outcome: types.SyncOutcomeCloned, Checkout: checkout}, nil
}

// currentCheckout reports whether the working directory already sits
// inside the project repository, matched by origin URL or, failing
// that, by directory name.
func (s Service) currentCheckout(ctx context.Context) (types.RepoCheckout, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return types.RepoCheckout{}, false
	}
	root, ok := s.Git.WorkTreeRoot(ctx, cwd)
	if !ok {
		return types.RepoCheckout{}, false
	}
	remote, err := s.Git.RemoteURL(ctx, root)
	if err != nil {
		remote = ""
	}
	if !core.MatchesProjectRemote(remote, projectHTTPSURL, projectSSHURL) && !core.PathHasSegment(root, projectName) {
		return types.RepoCheckout{}, false
	}
	return types.RepoCheckout{
		Destination:       root,
		RemoteURL:         remote,
		AlreadyExists:     true,
		IsCurrentWorkTree: true,
	}, true
}
