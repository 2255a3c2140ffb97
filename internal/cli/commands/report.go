package commands

import (
	"errors"

	"posixtest/internal/config"
	"posixtest/internal/domain"
	"posixtest/internal/storage"
	"posixtest/internal/ui"

	"github.com/spf13/cobra"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	log       *ui.Logger
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter, log *ui.Logger) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		log:       log,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	var only domain.Result
	if rc.config.Flags.Only != "" {
		parsed, err := domain.ParseResult(rc.config.Flags.Only)
		if err != nil {
			return err
		}
		only = parsed
	}
	return rc.Show(args[0], only)
}

// Show loads reportFile and prints it, listing only one category when only is set
func (rc *ReportCommand) Show(reportFile string, only domain.Result) error {
	doc, err := rc.storage.Load(reportFile)
	if err != nil {
		var unsupported *storage.UnsupportedSchemaError
		if errors.As(err, &unsupported) {
			rc.log.Error("Unsupported schema version '%s'", unsupported.Version)
			return ErrReported
		}
		return err
	}

	rc.formatter.PrintReport(doc, only)
	return nil
}
