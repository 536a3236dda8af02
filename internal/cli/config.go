package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// moduleView is the serializable projection of one extension module,
// including its derived paths.
type moduleView struct {
	Name        string `json:"name" toml:"name"`
	Root        string `json:"root" toml:"root"`
	LimitedAPI  bool   `json:"limited_api" toml:"limited_api"`
	LibName     string `json:"libname" toml:"libname"`
	InstallPath string `json:"install_path,omitempty" toml:"install_path,omitempty"`
	TestBin     string `json:"test_bin" toml:"test_bin"`
}

type configView struct {
	ZigExe         string       `json:"zig_exe,omitempty" toml:"zig_exe,omitempty"`
	BuildZig       string       `json:"build_zig" toml:"build_zig"`
	PydustBuildZig string       `json:"pydust_build_zig" toml:"pydust_build_zig"`
	ZigTests       bool         `json:"zig_tests" toml:"zig_tests"`
	SelfManaged    bool         `json:"self_managed" toml:"self_managed"`
	ExtModules     []moduleView `json:"ext_module" toml:"ext_module"`
}

func newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved pydust configuration",
		Long: `Config loads the project manifest and prints the fully resolved
configuration, including the derived install and test-binary paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			return renderConfig(cmd.OutOrStdout(), cfg, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: 'text', 'json', or 'toml'")
	return cmd
}

func newConfigView(cfg *config.Config) configView {
	view := configView{
		BuildZig:       cfg.BuildZig.String(),
		PydustBuildZig: cfg.PydustBuildZig().String(),
		ZigTests:       cfg.ZigTests,
		SelfManaged:    cfg.SelfManaged,
		ExtModules:     make([]moduleView, 0, len(cfg.ExtModules)),
	}
	if cfg.ZigExe != nil {
		view.ZigExe = cfg.ZigExe.String()
	}

	for _, mod := range cfg.ExtModules {
		mv := moduleView{
			Name:       mod.Name,
			Root:       mod.Root.String(),
			LimitedAPI: mod.LimitedAPI,
			LibName:    mod.LibName(),
			TestBin:    mod.TestBin().String(),
		}
		// Non-limited modules have no install path to show.
		if install, err := mod.InstallPath(); err == nil {
			mv.InstallPath = install.String()
		}
		view.ExtModules = append(view.ExtModules, mv)
	}

	return view
}

func renderConfig(out io.Writer, cfg *config.Config, format string) error {
	view := newConfigView(cfg)

	switch format {
	case "text":
		renderText(out, view)
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "toml":
		data, err := toml.Marshal(view)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'toml'", format)
	}

	return nil
}

func renderText(out io.Writer, view configView) {
	if view.ZigExe != "" {
		fmt.Fprintf(out, "zig_exe:          %s\n", view.ZigExe)
	}
	fmt.Fprintf(out, "build_zig:        %s\n", view.BuildZig)
	fmt.Fprintf(out, "pydust_build_zig: %s\n", view.PydustBuildZig)
	fmt.Fprintf(out, "zig_tests:        %t\n", view.ZigTests)
	fmt.Fprintf(out, "self_managed:     %t\n", view.SelfManaged)

	for _, mod := range view.ExtModules {
		fmt.Fprintf(out, "ext_module %s:\n", mod.Name)
		fmt.Fprintf(out, "  root:         %s\n", mod.Root)
		fmt.Fprintf(out, "  limited_api:  %t\n", mod.LimitedAPI)
		fmt.Fprintf(out, "  libname:      %s\n", mod.LibName)
		if mod.InstallPath != "" {
			fmt.Fprintf(out, "  install_path: %s\n", mod.InstallPath)
		}
		fmt.Fprintf(out, "  test_bin:     %s\n", mod.TestBin)
	}
}
