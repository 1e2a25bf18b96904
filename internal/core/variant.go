package core

import "dkp-bootstrap/internal/types"

const packageBaseURL = "https://pkg.devkitpro.org/packages"

var (
	repoLibrary = types.RepositoryEntry{
		Name:           "dkp-libs",
		ServerTemplate: packageBaseURL,
	}
	repoLinux = types.RepositoryEntry{
		Name:           "dkp-linux",
		ServerTemplate: packageBaseURL + "/linux/$arch/",
	}
	repoLinuxMusl = types.RepositoryEntry{
		Name:           "dkp-linux-musl",
		ServerTemplate: packageBaseURL + "/linux-musl/$arch/",
	}
	repoWindows = types.RepositoryEntry{
		Name:           "dkp-windows",
		ServerTemplate: packageBaseURL + "/windows/$arch/",
	}
)

// LibraryRepository is the portable package repository appended on
// every host, whatever the variant.
func LibraryRepository() types.RepositoryEntry {
	return repoLibrary
}

// HostVariant selects the single host-specific repository for this
// machine. A Windows compatibility layer wins over everything else,
// then an alternate libc, then plain Linux.
func HostVariant(host types.HostEnvironment) types.RepositoryEntry {
	switch {
	case host.IsWindowsCompat:
		return repoWindows
	case host.UsesMuslLibc:
		return repoLinuxMusl
	default:
		return repoLinux
	}
}
