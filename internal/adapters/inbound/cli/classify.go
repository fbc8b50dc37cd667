package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/history"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/application"
)

func newClassifyCmd(g *globalFlags) *cobra.Command {
	var (
		jsonOutput  bool
		respondent  string
		save        bool
		noCache     bool
		showHistory bool
		clearCache  bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "classify [answers]",
		Short: "Classify one answers file",
		Long: "Score an answers file against the question bank and print the axis breakdown, " +
			"archetype and close alternatives. Use - to read answers from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showHistory {
				dir, _, err := loadConfig(g)
				if err != nil {
					return err
				}
				entries, err := history.New().Load(dir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				if jsonOutput {
					return renderJSON(cmd, entries)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}
			if len(args) == 0 && !clearCache {
				return fmt.Errorf("an answers file is required (use - for stdin)")
			}

			a, err := newApp(cmd.Context(), cmd, g)
			if err != nil {
				return err
			}
			defer a.Close()

			if clearCache {
				ok, err := a.classify.ClearCache(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "No cache configured.")
				} else if len(args) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
				}
				if len(args) == 0 {
					return nil
				}
			}

			answers, err := a.readAnswers(cmd, args[0], format)
			if err != nil {
				return err
			}
			if respondent == "" && args[0] != "-" {
				base := filepath.Base(args[0])
				respondent = strings.TrimSuffix(base, filepath.Ext(base))
			}

			res, err := a.classify.Classify(cmd.Context(), answers, application.ClassifyOptions{
				RespondentID: respondent,
				Save:         save,
				NoCache:      noCache,
			})
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderClassification(res.Classification))
			if res.ResultID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Saved as %s\n", res.ResultID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output classification as JSON")
	cmd.Flags().StringVar(&respondent, "respondent", "", "Respondent id (defaults to the file name)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the result in the configured store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the cache lookup")
	cmd.Flags().BoolVar(&clearCache, "clear-cache", false, "Drop every cached classification first")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show the local classification history")
	cmd.Flags().StringVar(&format, "format", "yaml", "Answers format when reading stdin (yaml, toml, json)")

	return cmd
}
