package execution

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// OutputMode selects what happens to a command's stdout and stderr
type OutputMode int

const (
	// OutputInherit passes output through to the terminal
	OutputInherit OutputMode = iota
	// OutputCapture returns stdout and keeps stderr for error messages
	OutputCapture
	// OutputDiscard drops all output
	OutputDiscard
)

// Command is one external invocation
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Output OutputMode
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner executes external commands and waits for them to finish
type Runner interface {
	// Run returns the captured stdout (OutputCapture only) and an error for a
	// command that could not start or exited non-zero.
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd in its directory
func (r *ExecRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = os.Environ()
	c.Stdin = cmd.Stdin

	var stdout, stderr bytes.Buffer
	switch cmd.Output {
	case OutputInherit:
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	case OutputCapture:
		c.Stdout = &stdout
		c.Stderr = &stderr
	case OutputDiscard:
		// nil writers discard to the null device
	}

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w\n%s", cmd, err, msg)
		}
		return stdout.Bytes(), fmt.Errorf("%s: %w", cmd, err)
	}
	return stdout.Bytes(), nil
}
