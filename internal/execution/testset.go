package execution

import (
	"context"
	"errors"
	"fmt"

	"posixtest/internal/config"
	"posixtest/internal/discovery"
	"posixtest/internal/domain"
	"posixtest/internal/parser"
	"posixtest/internal/ui"
)

// SetRunner runs the suite's test sets directory by directory
type SetRunner struct {
	config   *config.Config
	runner   Runner
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	logfiles *discovery.Logfiles
	parser   *parser.LogfileParser
	log      *ui.Logger
	make     string
	progress bool
}

// NewSetRunner creates a new SetRunner using the given make program
func NewSetRunner(
	cfg *config.Config,
	runner Runner,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	logfiles *discovery.Logfiles,
	logfileParser *parser.LogfileParser,
	log *ui.Logger,
	makeProgram string,
) *SetRunner {
	return &SetRunner{
		config:   cfg,
		runner:   runner,
		scanner:  scanner,
		filter:   filter,
		logfiles: logfiles,
		parser:   logfileParser,
		log:      log,
		make:     makeProgram,
	}
}

// SetProgress enables a progress bar advanced once per test directory
func (sr *SetRunner) SetProgress(enabled bool) {
	sr.progress = enabled
}

// RunAll clears stale logfiles, then runs every configured test set in order,
// appending their results to results.
func (sr *SetRunner) RunAll(ctx context.Context, results domain.ResultSet) (domain.ResultSet, error) {
	suite := sr.config.GetSuitePath()

	sr.log.Log("Deleting existing log files")
	if _, err := sr.logfiles.RemoveAll(suite); err != nil {
		return results, fmt.Errorf("delete log files: %w", err)
	}

	plans := make([][]discovery.TestDir, len(sr.config.TestSets))
	total := 0
	for i, set := range sr.config.TestSets {
		dirs, err := sr.scanner.Scan(suite, set.Name, set.Skip)
		if errors.Is(err, discovery.ErrNoTestSet) {
			sr.log.Warn("%s: no such test set", set.Name)
			continue
		}
		if err != nil {
			return results, err
		}
		plans[i] = sr.filter.FilterByName(dirs, sr.config.Flags.Filter)
		total += len(plans[i])
	}
	var progress *ui.ProgressBar
	if sr.progress && total > 0 {
		progress = ui.NewProgressBar(total)
		defer progress.Finish()
	}

	for i, set := range sr.config.TestSets {
		var err error
		results, err = sr.runSet(ctx, set.Name, plans[i], results, progress)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (sr *SetRunner) runSet(ctx context.Context, name string, dirs []discovery.TestDir, results domain.ResultSet, progress *ui.ProgressBar) (domain.ResultSet, error) {
	sr.log.Log("Running %s tests", name)
	nested := sr.log.Nest()

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = sr.runDir(ctx, dir, nested, results)
		if progress != nil {
			progress.Update(results.Passed(), results.Failed())
		}
	}
	return results, nil
}

func (sr *SetRunner) runDir(ctx context.Context, dir discovery.TestDir, log *ui.Logger, results domain.ResultSet) domain.ResultSet {
	if dir.Skipped {
		log.Warn("skipping %s", dir.Name)
		return results
	}

	log.Log("%s", dir.Name)
	// Results come from the logfile; a failing test target still writes one.
	_, _ = sr.runner.Run(ctx, Command{
		Name:   sr.make,
		Args:   []string{"--no-print-directory", "-C", dir.Path, "test"},
		Output: OutputDiscard,
	})

	path, ok := sr.logfiles.Find(dir.Path)
	if !ok {
		log.Nest().Warn("%s: no logfile", dir.Name)
		return results
	}

	content, err := sr.logfiles.Read(path)
	if err != nil {
		log.Nest().Warn("%s: %v", dir.Name, err)
		return results
	}

	parsed := sr.parser.Parse(content)
	for _, line := range parsed.Malformed {
		log.Nest().Warn("%s: skipping malformed marker %s", dir.Name, line)
	}
	return append(results, parsed.Results...)
}
