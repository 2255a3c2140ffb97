package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"posixtest/internal/cli"
	"posixtest/internal/config"
	"posixtest/internal/execution"
	"posixtest/internal/junit"
	"posixtest/internal/storage"
	"posixtest/internal/ui"
)

// ErrReported is returned after a command already reported its failure to the user
var ErrReported = errors.New("error already reported")

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Report  *ReportCommand
	JUnit   *JUnitCommand
	View    *ViewCommand
	Publish *PublishCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	fs := afero.NewOsFs()
	log := ui.NewLogger()
	runner := execution.NewExecRunner()
	jsonStorage := storage.NewJSONStorage(fs)
	formatter := ui.NewFormatter()
	exporter := junit.NewExporter(fs, jsonStorage)
	viewer := ui.NewViewer()

	report := NewReportCommand(cfg, jsonStorage, formatter, log)

	return &Commands{
		Run:     NewRunCommand(cfg, fs, runner, jsonStorage, report, log),
		Report:  report,
		JUnit:   NewJUnitCommand(cfg, exporter, log),
		View:    NewViewCommand(cfg, jsonStorage, viewer),
		Publish: NewPublishCommand(cfg, jsonStorage, log),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file (default: "+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&flags.SuiteDir, "suite-dir", "", "Path to the test suite (default: "+config.DefaultSuiteDir+")")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar over test directories")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		return LoadConfig(flags, cfg)
	}

	// Test command
	testCmd := &cobra.Command{
		Use:   "test <report_file>",
		Short: "Patch, build and run the suite, then save and report the results",
		Args:  cobra.MaximumNArgs(1),
		RunE:  usageWithoutArgs(1, c.Run.ExecuteTest),
	}
	testCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only run test directories matching a pattern (supports wildcards, e.g. 'sig*' or 'interfaces/mq_*')")
	rootCmd.AddCommand(testCmd)

	// Build command
	buildCmd := &cobra.Command{
		Use:   "build <report_file>",
		Short: "Patch and build the suite, then save and report compile failures",
		Args:  cobra.MaximumNArgs(1),
		RunE:  usageWithoutArgs(1, c.Run.ExecuteBuild),
	}
	rootCmd.AddCommand(buildCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report <report_file>",
		Short: "Print a saved report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  usageWithoutArgs(1, c.Report.Execute),
	}
	reportCmd.Flags().StringVar(&flags.Only, "only", "", "Only list one category (e.g. FAILED); counts still cover every test")
	rootCmd.AddCommand(reportCmd)

	// JUnit command
	junitCmd := NewJUnitCobraCommand(c.JUnit, flags)
	rootCmd.AddCommand(junitCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <report_file>",
		Short: "Browse a saved report interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  usageWithoutArgs(1, c.View.Execute),
	}
	rootCmd.AddCommand(viewCmd)

	// Publish command
	publishCmd := &cobra.Command{
		Use:   "publish <report_file>",
		Short: "Store a saved report in MySQL",
		Long:  "Store a saved report in MySQL using DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and DB_DATABASE (read from .env if present)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  usageWithoutArgs(1, c.Publish.Execute),
	}
	rootCmd.AddCommand(publishCmd)
}

// NewJUnitCobraCommand builds the junit command; the standalone exporter binary uses it as its root
func NewJUnitCobraCommand(jc *JUnitCommand, flags *cli.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "junit <json_input_file> <junit_output_file>",
		Short: "Convert a saved schema 2 report to JUnit XML",
		Args:  cobra.MaximumNArgs(2),
		RunE:  usageWithoutArgs(2, jc.Execute),
	}
	cmd.Flags().StringVar(&flags.SuiteName, "suite-name", "", "Name of the exported test suite (default: "+config.DefaultJUnitSuiteName+")")
	return cmd
}

// usageWithoutArgs prints the command's usage and succeeds when its file arguments are missing
func usageWithoutArgs(n int, run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return cmd.Help()
		}
		return run(cmd, args)
	}
}

// LoadConfig rebuilds cfg from the config file, the environment and the parsed flags
func LoadConfig(flags *cli.Flags, cfg *config.Config) error {
	loaded, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	*cfg = *loaded
	if cfg.Flags.NoColor {
		color.NoColor = true
	}
	return nil
}
