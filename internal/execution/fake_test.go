package execution

import (
	"context"
	"errors"
	"io"
	"strings"
)

// fakeRunner records commands and answers them from handlers keyed by command name
type fakeRunner struct {
	commands []Command
	stdin    []string
	handlers map[string]func(cmd Command) ([]byte, error)
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{handlers: make(map[string]func(cmd Command) ([]byte, error))}
}

func (f *fakeRunner) on(name string, handler func(cmd Command) ([]byte, error)) {
	f.handlers[name] = handler
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	f.commands = append(f.commands, cmd)
	if cmd.Stdin != nil {
		data, _ := io.ReadAll(cmd.Stdin)
		f.stdin = append(f.stdin, string(data))
	}
	if handler, ok := f.handlers[cmd.Name]; ok {
		return handler(cmd)
	}
	return nil, nil
}

func (f *fakeRunner) commandLines() []string {
	var lines []string
	for _, cmd := range f.commands {
		lines = append(lines, cmd.String())
	}
	return lines
}

func failWith(msg string) func(cmd Command) ([]byte, error) {
	return func(cmd Command) ([]byte, error) {
		return nil, errors.New(msg)
	}
}

func output(text string) func(cmd Command) ([]byte, error) {
	return func(cmd Command) ([]byte, error) {
		return []byte(strings.TrimPrefix(text, "\n")), nil
	}
}
