package execution

import "context"

// ResolveMake returns the configured make program, or gmake when it runs and make otherwise
func ResolveMake(ctx context.Context, configured string, runner Runner) string {
	if configured != "" {
		return configured
	}
	if _, err := runner.Run(ctx, Command{Name: "gmake", Args: []string{"-v"}, Output: OutputDiscard}); err == nil {
		return "gmake"
	}
	return "make"
}
