package commands

import (
	"fmt"

	"posixtest/internal/config"
	"posixtest/internal/junit"
	"posixtest/internal/ui"

	"github.com/spf13/cobra"
)

// JUnitCommand handles the junit command
type JUnitCommand struct {
	config   *config.Config
	exporter *junit.Exporter
	log      *ui.Logger
}

// NewJUnitCommand creates a new JUnitCommand
func NewJUnitCommand(cfg *config.Config, exporter *junit.Exporter, log *ui.Logger) *JUnitCommand {
	return &JUnitCommand{
		config:   cfg,
		exporter: exporter,
		log:      log,
	}
}

// Execute runs the command
func (jc *JUnitCommand) Execute(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	count, err := jc.exporter.Export(input, output, jc.config.JUnitSuiteName)
	if err != nil {
		return fmt.Errorf("junit export failed: %w", err)
	}

	jc.log.Log("Wrote %d test cases to %s", count, output)
	return nil
}
