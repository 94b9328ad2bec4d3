package cmd

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/finch/internal/config"
)

// toolProbe abstracts tool discovery so doctor can be tested without the
// real binaries.
type toolProbe struct {
	lookPath func(name string) (string, error)
	version  func(name string) string
}

func realProbe() toolProbe {
	return toolProbe{
		lookPath: exec.LookPath,
		version: func(name string) string {
			out, err := exec.Command(name, "--version").Output()
			if err != nil {
				return ""
			}
			line, _, _ := strings.Cut(string(out), "\n")
			return strings.TrimSpace(line)
		},
	}
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the enumeration backends are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runDoctor(cmd.OutOrStdout(), cfg, realProbe())
		},
	}
}

// runDoctor reports each backend's availability and errors when the
// configured backend is missing.
func runDoctor(w io.Writer, cfg *config.Config, probe toolProbe) error {
	var missing []string

	for _, tool := range []string{"fd", "rg"} {
		path, err := probe.lookPath(tool)
		if err != nil {
			fmt.Fprintf(w, "%s: not found\n", tool)
			missing = append(missing, tool)
			continue
		}
		if v := probe.version(tool); v != "" {
			fmt.Fprintf(w, "%s: %s (%s)\n", tool, path, v)
		} else {
			fmt.Fprintf(w, "%s: %s\n", tool, path)
		}
	}

	fmt.Fprintf(w, "configured backend: %s\n", cfg.Search.Backend)

	for _, m := range missing {
		if m == cfg.Search.Backend {
			return fmt.Errorf("configured backend %q is not installed", m)
		}
	}
	return nil
}
