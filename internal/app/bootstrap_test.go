package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dkp-bootstrap/internal/types"
)

func TestInstallMode(t *testing.T) {
	tests := []struct {
		name string
		req  BootstrapRequest
		want types.InstallMode
	}{
		{
			name: "default is guided install",
			req:  BootstrapRequest{},
			want: types.InstallModeGuidedInstall,
		},
		{
			name: "system pacman selects manual config",
			req:  BootstrapRequest{UseSystemPacman: true},
			want: types.InstallModeManualConfig,
		},
		{
			name: "no install skips",
			req:  BootstrapRequest{NoInstall: true},
			want: types.InstallModeSkip,
		},
		{
			name: "no install wins over system pacman",
			req:  BootstrapRequest{NoInstall: true, UseSystemPacman: true},
			want: types.InstallModeSkip,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, installMode(tt.req))
		})
	}
}

func TestWithDefaults(t *testing.T) {
	req := withDefaults(BootstrapRequest{})
	assert.Equal(t, "/opt/devkitpro", req.DevkitproPath)

	req = withDefaults(BootstrapRequest{DevkitproPath: "/srv/dkp"})
	assert.Equal(t, "/srv/dkp", req.DevkitproPath)
}

func TestRun_SkipModeTouchesNoPackages(t *testing.T) {
	svc, fakes := newTestService(types.HostEnvironment{OSFamily: types.OSFamilyDebian})

	result, err := svc.Run(context.Background(), BootstrapRequest{NoInstall: true, NonInteractive: true})
	require.NoError(t, err)

	assert.Equal(t, types.InstallModeSkip, result.Mode)
	assert.Contains(t, fakes.notifier.notices, "skipping toolchain installation")
	assert.Zero(t, fakes.packages.aptUpdates)
	assert.Empty(t, fakes.packages.aptInstalled)
	assert.Empty(t, fakes.packages.toolchainRuns)
	assert.Empty(t, fakes.downloader.fetched)
	assert.Empty(t, fakes.keyTrust.received)
}

func TestRun_GuidedInstallPipeline(t *testing.T) {
	host := types.HostEnvironment{OSFamily: types.OSFamilyDebian}
	svc, fakes := newTestService(host)

	result, err := svc.Run(context.Background(), BootstrapRequest{NonInteractive: true})
	require.NoError(t, err)

	assert.Equal(t, types.InstallModeGuidedInstall, result.Mode)
	assert.Equal(t, host, result.Host)
	assert.Len(t, fakes.downloader.fetched, 1)
	assert.Len(t, fakes.bootstrap.runs, 1)
	assert.Len(t, fakes.packages.toolchainRuns, 1)
	// Profile prompt defaults to no, so nothing was written.
	assert.Equal(t, types.ProfileOutcomeDeclined, result.Profile)
	assert.Equal(t, types.SyncOutcomeSkipped, result.Sync.Outcome)
	assert.Equal(t, types.DeployOutcomeSkipped, result.Deploy.Outcome)
}

func TestRun_ManualConfigPipeline(t *testing.T) {
	host := types.HostEnvironment{OSFamily: types.OSFamilyArch, HasPacman: true, PacmanVersion: "6.1.0"}
	svc, fakes := newTestService(host)

	result, err := svc.Run(context.Background(), BootstrapRequest{UseSystemPacman: true, NonInteractive: true})
	require.NoError(t, err)

	assert.Equal(t, types.InstallModeManualConfig, result.Mode)
	assert.True(t, result.Trust.Imported)
	require.Len(t, result.Repos, 2)
	assert.Equal(t, "dkp-libs", result.Repos[0].Name)
	assert.Equal(t, "dkp-linux", result.Repos[1].Name)
	assert.Empty(t, fakes.downloader.fetched)
	assert.Empty(t, fakes.bootstrap.runs)
}

func TestRun_ManualConfigWithoutPacmanFails(t *testing.T) {
	svc, _ := newTestService(types.HostEnvironment{OSFamily: types.OSFamilyDebian, HasPacman: false})

	_, err := svc.Run(context.Background(), BootstrapRequest{UseSystemPacman: true, NonInteractive: true})
	assert.Error(t, err)
}

func TestRun_CloneAndDeploy(t *testing.T) {
	svc, fakes := newTestService(types.HostEnvironment{})

	req := BootstrapRequest{
		NoInstall:      true,
		CloneRepo:      true,
		LovebrewPath:   "/home/dev/lovebrew",
		NonInteractive: true,
	}
	result, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, types.SyncOutcomeCloned, result.Sync.Outcome)
	assert.Equal(t, types.DeployOutcomeDeployed, result.Deploy.Outcome)
	require.Len(t, fakes.assets.mirrored, 1)
	assert.Equal(t, filepath.Join(defaultCheckoutDir(), "game"), fakes.assets.mirrored[0][0])
}

func TestRun_PackageSetOverride(t *testing.T) {
	host := types.HostEnvironment{OSFamily: types.OSFamilyDebian}
	svc, fakes := newTestService(host)
	svc.PackageSet = fakePackageSet{set: types.PackageSet{Packages: []string{"gba-dev"}}}

	_, err := svc.Run(context.Background(), BootstrapRequest{
		PackageSetPath: "custom.yaml",
		NonInteractive: true,
	})
	require.NoError(t, err)

	require.Len(t, fakes.packages.toolchainRuns, 1)
	assert.Equal(t, []string{"gba-dev"}, fakes.packages.toolchainRuns[0])
	// The override listed no prerequisites so the defaults stay.
	require.Len(t, fakes.packages.aptInstalled, 1)
	assert.Equal(t, []string{"curl", "git", "gnupg"}, fakes.packages.aptInstalled[0])
}

func TestRun_PackageSetLoadFailureAborts(t *testing.T) {
	svc, fakes := newTestService(types.HostEnvironment{OSFamily: types.OSFamilyDebian})
	svc.PackageSet = fakePackageSet{err: errors.New("yaml: unmarshal error")}

	_, err := svc.Run(context.Background(), BootstrapRequest{
		PackageSetPath: "broken.yaml",
		NonInteractive: true,
	})

	require.Error(t, err)
	assert.Empty(t, fakes.downloader.fetched)
}
