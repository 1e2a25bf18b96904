package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"dkp-bootstrap/internal/ports"
)

type GitAdapter struct {
	runner commandRunner
}

func NewGitAdapter() GitAdapter {
	return GitAdapter{}
}

// Clone stays attached to the terminal so credential prompts and
// progress reach the user.
func (a GitAdapter) Clone(ctx context.Context, remote string, dest string) error {
	return a.runner.interactive(ctx, "", "git", "clone", remote, dest)
}

func (a GitAdapter) PullFFOnly(ctx context.Context, dir string) error {
	return a.runner.run(ctx, "git", "-C", dir, "pull", "--ff-only")
}

func (a GitAdapter) IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

func (a GitAdapter) WorkTreeRoot(ctx context.Context, dir string) (string, bool) {
	out, err := a.runner.output(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", false
	}
	root := strings.TrimSpace(out)
	if root == "" {
		return "", false
	}
	return root, true
}

func (a GitAdapter) RemoteURL(ctx context.Context, dir string) (string, error) {
	out, err := a.runner.output(ctx, "git", "-C", dir, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

var _ ports.GitPort = GitAdapter{}
