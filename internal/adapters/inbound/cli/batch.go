package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/scanner"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/application"
)

func newBatchCmd(g *globalFlags) *cobra.Command {
	var (
		jsonOutput bool
		jobs       int
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "batch <answers|dir>...",
		Short: "Classify many answers files concurrently",
		Long:  "Classify every given answers file, and every yaml, toml or json file under the given directories.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd, g)
			if err != nil {
				return err
			}
			defer a.Close()

			paths, err := scanner.New().Expand(args)
			if err != nil {
				return fmt.Errorf("scanning answers: %w", err)
			}
			if len(paths) == 0 {
				return errors.New("no answer files found")
			}

			items, err := application.NewBatchService(a.classify, a.loader).
				Run(cmd.Context(), paths, application.BatchOptions{Jobs: jobs, Save: save})
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			failed := 0
			for _, it := range items {
				if it.Error != "" {
					failed++
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, items); err != nil {
					return err
				}
			} else {
				for _, it := range items {
					fmt.Fprint(cmd.OutOrStdout(), batchLine(it))
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(items))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Concurrent classifications (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist every result in the configured store")

	return cmd
}

func batchLine(it application.BatchItem) string {
	if it.Error != "" {
		return tui.RenderBatchLine(it.Path, nil, errors.New(it.Error))
	}
	return tui.RenderBatchLine(it.Path, it.Result.Classification, nil)
}
