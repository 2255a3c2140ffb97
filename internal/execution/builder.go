package execution

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"posixtest/internal/config"
	"posixtest/internal/domain"
	"posixtest/internal/parser"
	"posixtest/internal/ui"
)

const (
	// darwinCFlags replace the realtime signals macOS lacks
	darwinCFlags = "-DSIGRTMIN=SIGUSR2 -Wno-deprecated-declarations"
	// librtStub is compiled into an empty librt.a so -lrt links on macOS
	librtStub = "void _____________() { }"
)

// Builder configures and compiles the suite
type Builder struct {
	config  *config.Config
	fs      afero.Fs
	runner  Runner
	scanner *parser.BuildScanner
	log     *ui.Logger
	make    string
}

// NewBuilder creates a new Builder using the given make program
func NewBuilder(cfg *config.Config, fs afero.Fs, runner Runner, scanner *parser.BuildScanner, log *ui.Logger, makeProgram string) *Builder {
	return &Builder{
		config:  cfg,
		fs:      fs,
		runner:  runner,
		scanner: scanner,
		log:     log,
		make:    makeProgram,
	}
}

// Configure runs the suite's configure script unless the configured marker exists
func (b *Builder) Configure(ctx context.Context) error {
	markerPath := b.config.GetConfiguredMarkerPath()
	if ok, _ := afero.Exists(b.fs, markerPath); ok {
		return nil
	}

	b.log.Log("Configuring")
	suite := b.config.GetSuitePath()

	cflags := b.config.CFlags
	ldflags := b.config.LDFlags
	if b.config.IsDarwin() {
		libDir, err := b.buildLibrtStub(ctx)
		if err != nil {
			return err
		}
		ldflags = strings.TrimSpace(ldflags + " -L" + libDir)
		cflags = strings.TrimSpace(cflags + " " + darwinCFlags)
	}

	args := []string{"CFLAGS=" + cflags}
	if ldflags != "" {
		args = append(args, "LDFLAGS="+ldflags)
	}
	if _, err := b.runner.Run(ctx, Command{Name: "./configure", Args: args, Dir: suite}); err != nil {
		return fmt.Errorf("configure failed: %w", err)
	}

	return touch(b.fs, markerPath)
}

// buildLibrtStub leaves an empty librt.a in the suite and returns its directory
func (b *Builder) buildLibrtStub(ctx context.Context) (string, error) {
	suite := b.config.GetSuitePath()
	source := filepath.Join(suite, "librt_stub.c")
	object := filepath.Join(suite, "librt_stub.o")

	if err := afero.WriteFile(b.fs, source, []byte(librtStub), 0644); err != nil {
		return "", fmt.Errorf("write librt stub: %w", err)
	}
	defer b.fs.Remove(source)
	defer b.fs.Remove(object)

	steps := []Command{
		{Name: "cc", Args: []string{"-o", "librt_stub.o", "-c", "librt_stub.c"}, Dir: suite},
		{Name: "ar", Args: []string{"rcs", "librt.a", "librt_stub.o"}, Dir: suite},
	}
	for _, step := range steps {
		if _, err := b.runner.Run(ctx, step); err != nil {
			return "", fmt.Errorf("build librt stub: %w", err)
		}
	}

	abs, err := filepath.Abs(suite)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// Build compiles every test and returns a NO_COMPILE record for each one that failed
func (b *Builder) Build(ctx context.Context) (domain.ResultSet, error) {
	if err := b.Configure(ctx); err != nil {
		return nil, err
	}

	b.log.Log("Building tests")
	nested := b.log.Nest()

	output, err := b.runner.Run(ctx, Command{
		Name:   b.make,
		Args:   []string{"-j1", "--no-print-directory"},
		Dir:    b.config.GetSuitePath(),
		Output: OutputCapture,
	})
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}

	failures := b.scanner.Scan(string(output))
	for _, failure := range failures {
		nested.Error("failed: %s", failure.Name)
	}
	return domain.ResultSet(failures), nil
}
