package main

import (
	"fmt"
	"os"

	"posixtest/internal/cli"
	"posixtest/internal/cli/commands"
	"posixtest/internal/config"
	"posixtest/internal/junit"
	"posixtest/internal/storage"
	"posixtest/internal/ui"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.New()
	var flags cli.Flags

	fs := afero.NewOsFs()
	exporter := junit.NewExporter(fs, storage.NewJSONStorage(fs))
	jc := commands.NewJUnitCommand(cfg, exporter, ui.NewLogger())

	rootCmd := commands.NewJUnitCobraCommand(jc, &flags)
	rootCmd.Use = "posixtest-junit <json_input_file> <junit_output_file>"
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return commands.LoadConfig(&flags, cfg)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
