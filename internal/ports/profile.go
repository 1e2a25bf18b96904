package ports

import "context"

type ProfilePort interface {
	Exists(path string) bool
	Write(ctx context.Context, path string, content string) error
}
