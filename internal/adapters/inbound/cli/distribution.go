package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/application"
)

func newDistributionCmd(g *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Show how saved results spread across archetypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd, g)
			if err != nil {
				return err
			}
			defer a.Close()

			d, err := application.NewDistributionService(a.store).Distribution(cmd.Context())
			if err != nil {
				return fmt.Errorf("distribution failed (set store.driver in .polaxis.yaml): %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, d)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDistribution(d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output distribution as JSON")
	return cmd
}
