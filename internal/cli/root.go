package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/ctxlog"
	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/version"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the pydust command tree. A fresh tree is built per
// invocation so flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
		chdir     string
	)

	cmd := &cobra.Command{
		Use:   "pydust",
		Short: "Inspect and validate pydust project configuration",
		Long: `pydust reads the tool.pydust table of a project's pyproject.toml and
resolves the build configuration for Zig-backed Python extension modules.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if chdir != "" {
				if err := os.Chdir(chdir); err != nil {
					return fmt.Errorf("changing directory: %w", err)
				}
			}

			logger, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity: 'debug', 'info', 'warn', or 'error'")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: 'text' or 'json'")
	cmd.PersistentFlags().StringVarP(&chdir, "chdir", "C", "", "run as if started in this directory")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the pydust command line with the given arguments, writing
// command output to out. Diagnostics and logs go to standard error.
func Execute(ctx context.Context, out io.Writer, args []string) error {
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
