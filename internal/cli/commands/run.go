package commands

import (
	"context"
	"fmt"

	"posixtest/internal/config"
	"posixtest/internal/discovery"
	"posixtest/internal/domain"
	"posixtest/internal/execution"
	"posixtest/internal/parser"
	"posixtest/internal/storage"
	"posixtest/internal/ui"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// RunCommand handles the test and build commands
type RunCommand struct {
	config  *config.Config
	fs      afero.Fs
	runner  execution.Runner
	storage storage.Storage
	report  *ReportCommand
	log     *ui.Logger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	fs afero.Fs,
	runner execution.Runner,
	st storage.Storage,
	report *ReportCommand,
	log *ui.Logger,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		fs:      fs,
		runner:  runner,
		storage: st,
		report:  report,
		log:     log,
	}
}

// ExecuteTest patches, builds and runs the suite
func (rc *RunCommand) ExecuteTest(cmd *cobra.Command, args []string) error {
	return rc.Run(cmd.Context(), args[0], true)
}

// ExecuteBuild patches and builds the suite without running it
func (rc *RunCommand) ExecuteBuild(cmd *cobra.Command, args []string) error {
	return rc.Run(cmd.Context(), args[0], false)
}

// Run drives the pipeline and saves the results to reportFile before printing them
func (rc *RunCommand) Run(ctx context.Context, reportFile string, runTests bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	makeProgram := execution.ResolveMake(ctx, rc.config.Make, rc.runner)

	patcher := execution.NewPatcher(rc.config, rc.fs, rc.runner, rc.log)
	if _, err := patcher.Apply(ctx); err != nil {
		return err
	}

	builder := execution.NewBuilder(rc.config, rc.fs, rc.runner, parser.NewBuildScanner(), rc.log, makeProgram)
	results, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	if runTests {
		results, err = rc.runTests(ctx, makeProgram, results)
		if err != nil {
			return err
		}
	}

	// Save results
	rc.log.Log("Saving results")
	if err := rc.storage.Save(reportFile, results); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	return rc.report.Show(reportFile, "")
}

func (rc *RunCommand) runTests(ctx context.Context, makeProgram string, results domain.ResultSet) (domain.ResultSet, error) {
	setRunner := execution.NewSetRunner(
		rc.config,
		rc.runner,
		discovery.NewScanner(rc.fs, rc.config.ArtifactSuffix),
		discovery.NewFilter(),
		discovery.NewLogfiles(rc.fs, rc.config.LogfileName),
		parser.NewLogfileParser(),
		rc.log,
		makeProgram,
	)
	setRunner.SetProgress(rc.config.Flags.Progress)

	var executor execution.Executor = setRunner
	return executor.RunAll(ctx, results)
}
