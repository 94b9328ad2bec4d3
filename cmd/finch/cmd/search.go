package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/finch/internal/rank"
	"github.com/Cyclone1070/finch/internal/session"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Run one search and print matching paths",
		Long: `Search runs a single query against the configured backend and prints one
display path per line. An empty query enumerates every file under the root,
up to the result cap.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			cleanup, err := setupLogging(cfg, true)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err := buildSession(cfg, opts)
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			res, ok := <-sess.Search(cmd.Context(), session.Request{Query: query})
			if !ok {
				return fmt.Errorf("search was superseded")
			}
			if res.Err != nil {
				return res.Err
			}

			return printResults(cmd.OutOrStdout(), res.Candidates, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func printResults(w io.Writer, candidates []rank.Candidate, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if candidates == nil {
			candidates = []rank.Candidate{}
		}
		return enc.Encode(candidates)
	}

	for _, c := range candidates {
		label := c.DisplayPath
		if c.IsDir {
			label += "/"
		}
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	return nil
}
