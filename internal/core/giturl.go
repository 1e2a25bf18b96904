package core

import (
	"path/filepath"
	"strings"
)

// MatchesProjectRemote reports whether a git remote URL points at the
// project, accepting both the HTTPS and SSH spellings. A trailing
// ".git" or slash is ignored, as is case.
func MatchesProjectRemote(remote string, httpsURL string, sshURL string) bool {
	candidate := normalizeRemote(remote)
	if candidate == "" {
		return false
	}
	return candidate == normalizeRemote(httpsURL) || candidate == normalizeRemote(sshURL)
}

func normalizeRemote(value string) string {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	return strings.ToLower(trimmed)
}

// PathHasSegment reports whether any element of path equals segment
// exactly. Substring hits ("emberwing-old") do not count.
func PathHasSegment(path string, segment string) bool {
	if segment == "" {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == segment {
			return true
		}
	}
	return false
}
