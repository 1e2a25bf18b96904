package app

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"dkp-bootstrap/internal/types"
)

const (
	masterKeyID       = "BC26F752D25B92CE272E0F44F7FD5492264BB9D0"
	keyringPackageURL = "https://pkg.devkitpro.org/devkitpro-keyring.pkg.tar.xz"
	keyringName       = "devkitpro"
	installerURL      = "https://apt.devkitpro.org/install-devkitpro-pacman"
	wikiURL           = "https://devkitpro.org/wiki/devkitPro_pacman"
	minimumPacman     = "5.0.0"
	defaultDevkitpro  = "/opt/devkitpro"
	profileDir        = "/etc/profile.d"
	profileFileName   = "devkitpro.sh"
	projectName       = "emberwing"
	projectHTTPSURL   = "https://github.com/emberwing-game/emberwing.git"
	projectSSHURL     = "git@github.com:emberwing-game/emberwing.git"
	assetSubdir       = "game"
	descriptorName    = "lovebrew.toml"
)

// keyservers are tried in order until one delivers the master key.
var keyservers = []string{
	"keyserver.ubuntu.com",
	"keys.openpgp.org",
	"pgp.mit.edu",
}

func defaultPackageSet() types.PackageSet {
	return types.PackageSet{
		Prerequisites: []string{"curl", "git", "gnupg"},
		Packages:      []string{"3ds-dev", "switch-dev", "wiiu-dev"},
	}
}

func defaultCheckoutDir() string {
	return filepath.Join(xdg.Home, "code", projectName)
}
