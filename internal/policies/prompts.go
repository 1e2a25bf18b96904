package policies

import (
	"fmt"
	"strings"
)

// Prompt is a yes/no question together with the answer assumed when the
// user just presses enter or the run is non-interactive.
type Prompt struct {
	Question string
	Default  bool
}

func CuratedInstallPrompt(packages []string) Prompt {
	return Prompt{
		Question: fmt.Sprintf("Install the curated package groups (%s)?", strings.Join(packages, ", ")),
		Default:  true,
	}
}

func ProfileWritePrompt(path string) Prompt {
	return Prompt{
		Question: fmt.Sprintf("Write environment variables to %s?", path),
		Default:  false,
	}
}

func PlaceholderPrompt(dir string) Prompt {
	return Prompt{
		Question: fmt.Sprintf("Asset directory %s does not exist. Create a placeholder?", dir),
		Default:  true,
	}
}
