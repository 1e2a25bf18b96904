package adapters

import (
	"context"
	"os/exec"

	"dkp-bootstrap/internal/ports"
)

type PackageManagerAdapter struct {
	runner commandRunner
}

func NewPackageManagerAdapter() PackageManagerAdapter {
	return PackageManagerAdapter{}
}

func (a PackageManagerAdapter) UpdateAptIndex(ctx context.Context) error {
	return a.runner.privileged(ctx, "apt-get", "update")
}

func (a PackageManagerAdapter) InstallWithApt(ctx context.Context, packages []string) error {
	args := append([]string{"install", "-y"}, packages...)
	return a.runner.privileged(ctx, "apt-get", args...)
}

func (a PackageManagerAdapter) InstallWithPacman(ctx context.Context, packages []string) error {
	args := append([]string{"-S", "--needed", "--noconfirm"}, packages...)
	return a.runner.privileged(ctx, "pacman", args...)
}

func (a PackageManagerAdapter) UpgradeSystem(ctx context.Context) error {
	return a.runner.privileged(ctx, "pacman", "-Syu", "--noconfirm")
}

// InstallToolchain keeps the terminal attached: group installs prompt
// for member selection and show long download progress.
func (a PackageManagerAdapter) InstallToolchain(ctx context.Context, packages []string) error {
	args := append([]string{"-S", "--needed"}, packages...)
	return a.runner.privilegedInteractive(ctx, a.ToolchainTool(), args...)
}

// ToolchainTool prefers the wrapper the installer script sets up and
// falls back to plain pacman on systems where the wrapper is absent.
func (a PackageManagerAdapter) ToolchainTool() string {
	if _, err := exec.LookPath("dkp-pacman"); err == nil {
		return "dkp-pacman"
	}
	return "pacman"
}

var _ ports.PackageManagerPort = PackageManagerAdapter{}
