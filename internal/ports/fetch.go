package ports

import "context"

type DownloadPort interface {
	Fetch(ctx context.Context, url string, dest string) error
}

type BootstrapScriptPort interface {
	Run(ctx context.Context, path string) error
}
