package core

import "strings"

// RenderProfileScript produces the profile.d script exporting the
// toolchain environment. The PATH line is emitted only when the caller
// observed the tools directory on disk, so a partial install does not
// put a dead entry on every login shell's PATH.
func RenderProfileScript(basePath string, includeToolsBin bool) string {
	var b strings.Builder
	b.WriteString("export DEVKITPRO=" + basePath + "\n")
	b.WriteString("export DEVKITARM=${DEVKITPRO}/devkitARM\n")
	b.WriteString("export DEVKITPPC=${DEVKITPRO}/devkitPPC\n")
	if includeToolsBin {
		b.WriteString("export PATH=${DEVKITPRO}/tools/bin:$PATH\n")
	}
	return b.String()
}
