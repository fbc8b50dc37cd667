package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/domain"
)

func newArchetypesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "archetypes [code]",
		Short: "List the 32 archetypes or look one code up",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				all := domain.AllArchetypes()
				if jsonOutput {
					return renderJSON(cmd, all)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderArchetypes(all, ""))
				return nil
			}

			code := strings.ToUpper(args[0])
			a, ok := domain.LookupArchetype(code)
			if !ok {
				return fmt.Errorf("unknown archetype code %q", args[0])
			}
			if jsonOutput {
				return renderJSON(cmd, a)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderArchetypes([]domain.Archetype{a}, code))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
