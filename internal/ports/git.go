package ports

import "context"

type GitPort interface {
	Clone(ctx context.Context, remote string, dest string) error
	PullFFOnly(ctx context.Context, dir string) error
	IsRepo(dir string) bool
	WorkTreeRoot(ctx context.Context, dir string) (string, bool)
	RemoteURL(ctx context.Context, dir string) (string, error)
}
