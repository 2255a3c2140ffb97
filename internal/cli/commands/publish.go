package commands

import (
	"context"
	"fmt"

	"posixtest/internal/archive"
	"posixtest/internal/config"
	"posixtest/internal/storage"
	"posixtest/internal/ui"

	"github.com/spf13/cobra"
)

// PublishCommand handles the publish command
type PublishCommand struct {
	config  *config.Config
	storage storage.Storage
	log     *ui.Logger
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(cfg *config.Config, st storage.Storage, log *ui.Logger) *PublishCommand {
	return &PublishCommand{
		config:  cfg,
		storage: st,
		log:     log,
	}
}

// Execute runs the command
func (pc *PublishCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	reportFile := args[0]

	doc, err := pc.storage.Load(reportFile)
	if err != nil {
		return err
	}

	settings := archive.SettingsFromEnv(pc.config.WorkDir)
	pc.log.Log("Publishing %s to %s@%s:%s/%s", reportFile, settings.User, settings.Host, settings.Port, settings.Database)

	arch, err := archive.Open(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer arch.Close()

	runID, err := arch.Publish(ctx, reportFile, doc.Results())
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	pc.log.Nest().Log("stored %d results as run %d", len(doc.Results()), runID)
	return nil
}
