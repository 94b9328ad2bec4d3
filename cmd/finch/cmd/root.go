// Package cmd provides the CLI commands for finch.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/finch/internal/config"
	"github.com/Cyclone1070/finch/internal/enumerate"
	"github.com/Cyclone1070/finch/internal/logging"
	"github.com/Cyclone1070/finch/internal/rank"
	"github.com/Cyclone1070/finch/internal/session"
	"github.com/Cyclone1070/finch/internal/workspace"
)

// rootOptions holds the persistent flag values shared by all commands.
type rootOptions struct {
	root       string
	backend    string
	maxResults int
	hidden     bool
	noIgnore   bool
	logLevel   string
	logFile    string
}

// NewRootCmd creates the root command for the finch CLI. Running it without
// a subcommand opens the interactive picker.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "finch",
		Short: "Fuzzy file-path search over fd or ripgrep",
		Long: `Finch searches file paths under a configurable root by shelling out to
fd or ripgrep. Results stream in as you type; a newer query always wins.

Run 'finch' with no arguments to open the interactive picker.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.root, "root", "", "search root (default: working directory)")
	pf.StringVar(&opts.backend, "backend", "", "enumeration backend: fd or rg")
	pf.IntVar(&opts.maxResults, "max-results", 0, "cap on returned candidates")
	pf.BoolVar(&opts.hidden, "hidden", false, "include hidden files")
	pf.BoolVar(&opts.noIgnore, "no-ignore", false, "do not honor .gitignore rules")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFile, "log-file", "", "log file path")

	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newPickCmd(opts))
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// loadConfig loads the dotfile config and layers changed flags on top.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, opts, func(name string) bool {
		return flagChanged(cmd, name)
	})
	return cfg, nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cfg *config.Config, opts *rootOptions, changed func(string) bool) {
	if changed("backend") {
		cfg.Search.Backend = opts.backend
	}
	if changed("max-results") {
		cfg.Search.MaxResults = opts.maxResults
	}
	if changed("hidden") {
		cfg.Search.SearchHidden = opts.hidden
	}
	if changed("no-ignore") {
		cfg.Search.RespectGitignore = !opts.noIgnore
	}
	if changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = opts.logFile
	}
}

// flagChanged reports whether the flag was set, looking through both local
// and inherited flag sets.
func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

// buildSession wires a session from the active config and flags.
func buildSession(cfg *config.Config, opts *rootOptions) (*session.Session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	reg := workspace.NewRegistry(cwd)
	if opts.root != "" {
		if _, err := reg.Set(opts.root); err != nil {
			return nil, err
		}
	}

	backend, err := enumerate.ForName(cfg.Search.Backend)
	if err != nil {
		return nil, err
	}

	sess := session.New(reg, enumerate.New(backend, enumerate.NewOSExecutor()), cfg.Search)
	sess.UseScorer(rank.FuzzyScorer{})
	return sess, nil
}

// setupLogging configures the process logger. Interactive commands pass
// stderr=false so log output never corrupts the alt screen.
func setupLogging(cfg *config.Config, stderr bool) (func(), error) {
	logCfg := logging.FromConfig(cfg.Log)
	logCfg.WriteToStderr = stderr
	return logging.SetupDefault(logCfg)
}
