package app

import (
	"time"

	"dkp-bootstrap/internal/adapters"
	"dkp-bootstrap/internal/ports"
)

type Service struct {
	HostProbe  ports.HostProbePort
	KeyTrust   ports.KeyTrustPort
	Keyring    ports.KeyringPort
	PacmanConf ports.PacmanConfPort
	Packages   ports.PackageManagerPort
	Downloader ports.DownloadPort
	Bootstrap  ports.BootstrapScriptPort
	Git        ports.GitPort
	Profile    ports.ProfilePort
	Assets     ports.AssetPort
	Descriptor ports.BuildDescriptorPort
	PackageSet ports.PackageSetPort
	Prompt     ports.PromptPort
	Notifier   ports.NotifierPort
	Clock      func() time.Time
}

func NewService() Service {
	return Service{
		HostProbe:  adapters.NewHostProbeAdapter(),
		KeyTrust:   adapters.NewKeyTrustAdapter(),
		Keyring:    adapters.NewKeyringAdapter(),
		PacmanConf: adapters.NewPacmanConfAdapter(""),
		Packages:   adapters.NewPackageManagerAdapter(),
		Downloader: adapters.NewDownloadAdapter(),
		Bootstrap:  adapters.NewBootstrapScriptAdapter(),
		Git:        adapters.NewGitAdapter(),
		Profile:    adapters.NewProfileAdapter(),
		Assets:     adapters.NewAssetMirrorAdapter(),
		Descriptor: adapters.NewBuildDescriptorAdapter(),
		PackageSet: adapters.NewPackageSetFileAdapter(),
		Prompt:     adapters.NewConsolePromptAdapter(false),
		Notifier:   adapters.NewPtermNotifierAdapter(),
		Clock:      time.Now,
	}
}
