package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"dkp-bootstrap/internal/core"
	"dkp-bootstrap/internal/ports"
)

type ConsolePromptAdapter struct {
	Out         io.Writer
	Reader      *bufio.Reader
	Interactive bool
}

// NewConsolePromptAdapter wires stdin/stdout. Prompting is disabled
// when requested or when stdin is not a terminal, so piped and CI runs
// take every question's default.
func NewConsolePromptAdapter(nonInteractive bool) *ConsolePromptAdapter {
	return &ConsolePromptAdapter{
		Out:         os.Stdout,
		Reader:      bufio.NewReader(os.Stdin),
		Interactive: !nonInteractive && isatty.IsTerminal(os.Stdin.Fd()),
	}
}

func (a *ConsolePromptAdapter) Confirm(question string, fallback bool) bool {
	if !a.Interactive {
		return fallback
	}
	if fallback {
		fmt.Fprintf(a.Out, "%s [Y/n]: ", question)
	} else {
		fmt.Fprintf(a.Out, "%s [y/N]: ", question)
	}
	answer, err := a.Reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	return core.Decide(answer, fallback)
}

func (a *ConsolePromptAdapter) Input(question string) string {
	if !a.Interactive {
		return ""
	}
	fmt.Fprintf(a.Out, "%s: ", question)
	answer, err := a.Reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(answer)
}

var _ ports.PromptPort = (*ConsolePromptAdapter)(nil)
