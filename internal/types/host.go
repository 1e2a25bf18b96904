package types

// HostEnvironment captures what the probe learned about the machine at
// startup. It is built once and threaded through the run unchanged.
type HostEnvironment struct {
	OSFamily        OSFamily
	HasPacman       bool
	PacmanVersion   string
	IsWindowsCompat bool
	UsesMuslLibc    bool
}
