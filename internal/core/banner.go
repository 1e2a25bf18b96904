package core

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"dkp-bootstrap/internal/types"
)

// ParsePacmanVersion extracts the version number from `pacman --version`
// output. The banner wraps the version in ASCII art, so the scan looks
// for the "Pacman v" marker on any line. Returns "" when nothing
// matches.
func ParsePacmanVersion(banner string) string {
	const marker = "Pacman v"
	for _, line := range strings.Split(banner, "\n") {
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		fields := strings.Fields(line[idx+len(marker):])
		if len(fields) == 0 {
			continue
		}
		return fields[0]
	}
	return ""
}

// IsOlderVersion reports whether version is strictly older than
// minimum. Either side failing to parse reports false, so a garbled
// banner never triggers the advisory.
func IsOlderVersion(version string, minimum string) bool {
	parsed, err := debversion.NewVersion(version)
	if err != nil {
		return false
	}
	floor, err := debversion.NewVersion(minimum)
	if err != nil {
		return false
	}
	return parsed.LessThan(floor)
}

// IsMuslBanner reports whether an `ldd --version` banner names musl.
// musl's ldd prints its banner to stderr and exits non-zero, so the
// caller matches on combined output regardless of exit status.
func IsMuslBanner(banner string) bool {
	return strings.Contains(strings.ToLower(banner), "musl")
}

// OSFamilyFromRelease buckets /etc/os-release contents by ID and
// ID_LIKE. Unknown or unreadable content maps to the "other" family.
func OSFamilyFromRelease(content string) types.OSFamily {
	id := ""
	idLike := ""
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "ID=") {
			id = strings.Trim(strings.TrimPrefix(trimmed, "ID="), `"`)
		}
		if strings.HasPrefix(trimmed, "ID_LIKE=") {
			idLike = strings.Trim(strings.TrimPrefix(trimmed, "ID_LIKE="), `"`)
		}
	}
	haystack := strings.ToLower(id + " " + idLike)
	switch {
	case strings.Contains(haystack, "debian"), strings.Contains(haystack, "ubuntu"):
		return types.OSFamilyDebian
	case strings.Contains(haystack, "arch"):
		return types.OSFamilyArch
	case strings.Contains(haystack, "alpine"):
		return types.OSFamilyAlpine
	default:
		return types.OSFamilyOther
	}
}
