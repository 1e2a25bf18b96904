package adapters

import (
	"context"
	"os"
	"os/exec"

	"dkp-bootstrap/internal/core"
	"dkp-bootstrap/internal/ports"
	"dkp-bootstrap/internal/types"
)

// HostProbeAdapter inspects the running system to decide which install
// path and package repositories apply.
type HostProbeAdapter struct {
	OSReleasePath string
}

func NewHostProbeAdapter() HostProbeAdapter {
	return HostProbeAdapter{OSReleasePath: "/etc/os-release"}
}

func (a HostProbeAdapter) Detect(ctx context.Context) types.HostEnvironment {
	host := types.HostEnvironment{OSFamily: types.OSFamilyOther}

	if content, err := os.ReadFile(a.OSReleasePath); err == nil {
		host.OSFamily = core.OSFamilyFromRelease(string(content))
	}

	if _, err := exec.LookPath("pacman"); err == nil {
		host.HasPacman = true
		cmd := exec.CommandContext(ctx, "pacman", "--version")
		if banner, err := cmd.CombinedOutput(); err == nil {
			host.PacmanVersion = core.ParsePacmanVersion(string(banner))
		}
	}

	_, host.IsWindowsCompat = os.LookupEnv("MSYSTEM")

	if _, err := exec.LookPath("ldd"); err == nil {
		// musl's ldd exits non-zero when run bare, so the error is ignored
		// and only the combined output is matched.
		cmd := exec.CommandContext(ctx, "ldd", "--version")
		banner, _ := cmd.CombinedOutput()
		host.UsesMuslLibc = core.IsMuslBanner(string(banner))
	}

	return host
}

var _ ports.HostProbePort = HostProbeAdapter{}
