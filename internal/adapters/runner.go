package adapters

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"dkp-bootstrap/internal/shared"
)

// commandRunner wraps exec so the adapters share one failure shape and
// one privilege-escalation rule.
type commandRunner struct{}

func (commandRunner) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(name + " command failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (commandRunner) output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		detail := []byte{}
		if exitErr, ok := err.(*exec.ExitError); ok {
			detail = exitErr.Stderr
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(name + " command failed").
			WithCause(shared.CommandError(detail, err))
	}
	return string(out), nil
}

func (r commandRunner) privileged(ctx context.Context, name string, args ...string) error {
	name, args = escalate(name, args)
	return r.run(ctx, name, args...)
}

// interactive attaches the command to the caller's terminal so package
// managers can show progress and ask their own questions.
func (commandRunner) interactive(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(name + " command failed").
			WithCause(err)
	}
	return nil
}

func (r commandRunner) privilegedInteractive(ctx context.Context, name string, args ...string) error {
	name, args = escalate(name, args)
	return r.interactive(ctx, "", name, args...)
}

func (r commandRunner) pipePrivileged(ctx context.Context, stdin string, name string, args ...string) error {
	name, args = escalate(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(name + " command failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func escalate(name string, args []string) (string, []string) {
	if os.Geteuid() == 0 {
		return name, args
	}
	return "sudo", append([]string{name}, args...)
}
