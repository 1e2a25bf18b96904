package core

import (
	"fmt"
	"strings"

	"dkp-bootstrap/internal/types"
)

// HasRepository reports whether the configuration already carries the
// named section. The check is deliberately coarse: a `[name]` header
// anywhere plus any `Server =` assignment anywhere counts as present.
// Re-running against a configured file must be a no-op, so false
// negatives matter more than scoped precision here.
func HasRepository(conf string, name string) bool {
	header := "[" + name + "]"
	hasHeader := false
	hasServer := false
	for _, line := range strings.Split(conf, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == header {
			hasHeader = true
		}
		if isServerLine(trimmed) {
			hasServer = true
		}
	}
	return hasHeader && hasServer
}

func isServerLine(line string) bool {
	if !strings.HasPrefix(line, "Server") {
		return false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "Server"))
	return strings.HasPrefix(rest, "=")
}

// RenderRepositoryBlock renders the section appended to pacman.conf
// for one repository. The leading newline separates the block from
// whatever the file currently ends with.
func RenderRepositoryBlock(entry types.RepositoryEntry) string {
	return fmt.Sprintf("\n[%s]\nServer = %s\n", entry.Name, entry.ServerTemplate)
}

// RenderInstallCommand renders the package install command an operator
// can run by hand, suggested when the run does not perform the install
// itself or when a retry is needed.
func RenderInstallCommand(tool string, packages []string) string {
	return strings.TrimSpace(tool + " -S --needed " + strings.Join(packages, " "))
}
