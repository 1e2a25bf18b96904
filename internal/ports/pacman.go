package ports

import "context"

type KeyTrustPort interface {
	ReceiveKey(ctx context.Context, keyID string, keyserver string) error
	SignKey(ctx context.Context, keyID string) error
}

type KeyringPort interface {
	InstallRemote(ctx context.Context, packageURL string) error
	PopulateLocal(ctx context.Context, keyringName string) error
}

type PacmanConfPort interface {
	Path() string
	Read() (string, error)
	Append(ctx context.Context, block string) error
}

type PackageManagerPort interface {
	UpdateAptIndex(ctx context.Context) error
	InstallWithApt(ctx context.Context, packages []string) error
	InstallWithPacman(ctx context.Context, packages []string) error
	UpgradeSystem(ctx context.Context) error
	InstallToolchain(ctx context.Context, packages []string) error
	ToolchainTool() string
}
