package adapters

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dkp-bootstrap/internal/ports"
)

const defaultPacmanConfPath = "/etc/pacman.conf"

type PacmanConfAdapter struct {
	ConfPath string
	runner   commandRunner
}

func NewPacmanConfAdapter(confPath string) PacmanConfAdapter {
	if confPath == "" {
		confPath = defaultPacmanConfPath
	}
	return PacmanConfAdapter{ConfPath: confPath}
}

func (a PacmanConfAdapter) Path() string {
	return a.ConfPath
}

// Read returns the current config contents. A missing file reads as
// empty so a fresh system falls through to Append.
func (a PacmanConfAdapter) Read() (string, error) {
	content, err := os.ReadFile(a.ConfPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to read pacman config").
			WithCause(err)
	}
	return string(content), nil
}

// Append writes directly when the process can, and falls back to a
// privileged tee when the config is root-owned.
func (a PacmanConfAdapter) Append(ctx context.Context, block string) error {
	if err := a.appendFile(block); err == nil {
		return nil
	}
	return a.runner.pipePrivileged(ctx, block, "tee", "-a", a.ConfPath)
}

func (a PacmanConfAdapter) appendFile(block string) error {
	file, err := os.OpenFile(a.ConfPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.WriteString(block)
	return err
}

var _ ports.PacmanConfPort = PacmanConfAdapter{}
