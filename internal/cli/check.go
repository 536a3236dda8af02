package cli

import (
	"fmt"
	"strings"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/config"
	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/fsutil"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the project's pydust configuration",
		Long: `Check loads pyproject.toml, validates the tool.pydust table, and verifies
that every declared extension module has a source tree on disk.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	// The header comes from the same parse the loader validated.
	manifest, err := config.Manifest(cmd.Context())
	if err != nil {
		return err
	}
	if manifest.Project.Name != "" {
		fmt.Fprintf(out, "Project: %s %s\n", manifest.Project.Name, manifest.Project.Version)
	}
	if manifest.BuildSystem.BuildBackend != "" {
		fmt.Fprintf(out, "Backend: %s\n", manifest.BuildSystem.BuildBackend)
	}

	if cfg.SelfManaged {
		fmt.Fprintln(out, "Build: self-managed")
	} else {
		fmt.Fprintf(out, "Build: %s (companion %s)\n", cfg.BuildZig, cfg.PydustBuildZig())
	}

	var missing []string
	for _, mod := range cfg.ExtModules {
		if !fsutil.DirExists(mod.Root.String()) {
			missing = append(missing, mod.Name)
			fmt.Fprintf(out, "  %s: source root %s does not exist\n", mod.Name, mod.Root)
			continue
		}

		sources, err := fsutil.ZigSources(mod.Root.String())
		if err != nil {
			return fmt.Errorf("scanning %s: %w", mod.Root, err)
		}
		fmt.Fprintf(out, "  %s: %d Zig source file(s) under %s\n", mod.Name, len(sources), mod.Root)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing source roots for: %s", config.ErrInvalidConfig, strings.Join(missing, ", "))
	}

	fmt.Fprintln(out, "Configuration OK.")
	return nil
}
