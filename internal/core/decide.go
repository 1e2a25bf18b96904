package core

import "strings"

// Decide maps a raw prompt answer to a yes/no decision. An empty
// answer takes the fallback; anything else is affirmative only for
// y/yes, case-insensitively.
func Decide(answer string, fallback bool) bool {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	if normalized == "" {
		return fallback
	}
	return normalized == "y" || normalized == "yes"
}
