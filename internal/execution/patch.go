package execution

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/afero"

	"posixtest/internal/config"
	"posixtest/internal/ui"
)

// markerContent is written into marker files
const markerContent = "1"

// Patcher applies the local fixes to the suite once
type Patcher struct {
	config *config.Config
	fs     afero.Fs
	runner Runner
	log    *ui.Logger
}

// NewPatcher creates a new Patcher
func NewPatcher(cfg *config.Config, fs afero.Fs, runner Runner, log *ui.Logger) *Patcher {
	return &Patcher{config: cfg, fs: fs, runner: runner, log: log}
}

// Apply runs patch when a patch file exists and the patched marker does not.
// It reports whether the patch was applied.
func (p *Patcher) Apply(ctx context.Context) (bool, error) {
	patchPath := p.config.GetPatchPath()
	markerPath := p.config.GetPatchedMarkerPath()

	if ok, _ := afero.Exists(p.fs, patchPath); !ok {
		return false, nil
	}
	if ok, _ := afero.Exists(p.fs, markerPath); ok {
		return false, nil
	}

	p.log.Log("Patching files")
	patch, err := afero.ReadFile(p.fs, patchPath)
	if err != nil {
		return false, fmt.Errorf("read patch: %w", err)
	}

	_, err = p.runner.Run(ctx, Command{
		Name:  "patch",
		Args:  []string{"-Nsp0", "-d", p.config.GetSuitePath()},
		Stdin: bytes.NewReader(patch),
	})
	if err != nil {
		return false, fmt.Errorf("patch failed: %w", err)
	}

	if err := touch(p.fs, markerPath); err != nil {
		return true, err
	}
	return true, nil
}

func touch(fs afero.Fs, path string) error {
	if err := afero.WriteFile(fs, path, []byte(markerContent), 0644); err != nil {
		return fmt.Errorf("write marker %s: %w", path, err)
	}
	return nil
}
