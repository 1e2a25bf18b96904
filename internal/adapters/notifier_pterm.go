package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"dkp-bootstrap/internal/ports"
)

// PtermNotifierAdapter renders user-facing notices. Styling is dropped
// when stdout is not a terminal so logs stay grep-friendly.
type PtermNotifierAdapter struct {
	Styled bool
}

func NewPtermNotifierAdapter() PtermNotifierAdapter {
	return PtermNotifierAdapter{Styled: isatty.IsTerminal(os.Stdout.Fd())}
}

func (a PtermNotifierAdapter) Notice(msg string) {
	if a.Styled {
		pterm.Info.Println(msg)
		return
	}
	fmt.Println(msg)
}

func (a PtermNotifierAdapter) Panel(title string, lines []string) {
	body := strings.Join(lines, "\n")
	if a.Styled {
		pterm.DefaultBox.WithTitle(title).Println(body)
		return
	}
	fmt.Printf("%s\n%s\n", title, body)
}

func (a PtermNotifierAdapter) Suggest(label string, command string) {
	if a.Styled {
		pterm.Println(pterm.Bold.Sprint(label))
		pterm.Println("  " + pterm.NewStyle(pterm.FgCyan).Sprint(command))
		return
	}
	fmt.Printf("%s\n  %s\n", label, command)
}

var _ ports.NotifierPort = PtermNotifierAdapter{}
