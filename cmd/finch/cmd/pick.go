package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/finch/internal/ui"
	"github.com/Cyclone1070/finch/internal/ui/services"
	"github.com/Cyclone1070/finch/internal/watcher"
)

func newPickCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a file",
		Long: `Pick opens a full-screen picker. Each keystroke runs a live search;
markdown files render in the preview pane. The chosen path prints to stdout
on enter, so the output composes with other tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}
}

func runPick(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	cleanup, err := setupLogging(cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	sess, err := buildSession(cfg, opts)
	if err != nil {
		return err
	}

	renderer, err := services.NewGlamourRenderer(80)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	preview, err := services.NewPreview(renderer, cfg.UI.PreviewCacheSize, cfg.UI.MaxPreviewBytes)
	if err != nil {
		return fmt.Errorf("create preview cache: %w", err)
	}

	// The watcher follows the root the picker was launched with.
	var changes <-chan struct{}
	if cfg.Watcher.Enabled {
		w, err := watcher.New(time.Duration(cfg.Watcher.DebounceMs) * time.Millisecond)
		if err != nil {
			slog.Warn("live refresh disabled", "error", err)
		} else {
			root := sess.Root()
			go func() {
				if err := w.Start(cmd.Context(), root); err != nil {
					slog.Warn("watcher stopped", "root", root, "error", err)
				}
			}()
			defer func() { _ = w.Stop() }()
			changes = w.Changes()
		}
	}

	model := ui.NewModel(sess, preview, cfg.UI, changes)
	choice, err := ui.NewPicker(model).Run()
	if err != nil {
		return err
	}
	if choice != nil {
		fmt.Fprintln(cmd.OutOrStdout(), choice.AbsPath)
	}
	return nil
}
