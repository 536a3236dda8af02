package cli

import (
	"fmt"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := version.Version
			if version.IsDev() {
				v += " (development)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pydust version %s\n", v)
			fmt.Fprintln(cmd.OutOrStdout(), "https://github.com/Sachaa-Thanasius/ziggy-pydust")
		},
	}
}
