package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/application"
)

func newCompareCmd(g *globalFlags) *cobra.Command {
	var (
		jsonOutput bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "compare <answers-a> <answers-b>",
		Short: "Compare two respondents on the same question bank",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return fmt.Errorf("only one side can be read from stdin")
			}

			a, err := newApp(cmd.Context(), cmd, g)
			if err != nil {
				return err
			}
			defer a.Close()

			left, err := a.readAnswers(cmd, args[0], format)
			if err != nil {
				return err
			}
			right, err := a.readAnswers(cmd, args[1], format)
			if err != nil {
				return err
			}

			rep, err := application.NewCompareService(a.classify).Compare(cmd.Context(), left, right)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, rep)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderComparison(rep))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output comparison as JSON")
	cmd.Flags().StringVar(&format, "format", "yaml", "Answers format when reading stdin (yaml, toml, json)")

	return cmd
}
