package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/polaxis/internal/adapters/outbound/bank"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/polaxis/internal/adapters/outbound/tui"
	"github.com/abdidvp/polaxis/internal/application"
	"github.com/abdidvp/polaxis/internal/domain"
)

func newValidateCmd(g *globalFlags) *cobra.Command {
	var (
		strict     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the question bank for problems that skew classification",
		Long: "Report unknown axes, duplicate ids, invalid weights and empty or one-sided " +
			"axes. Exits non-zero on errors, or on warnings with --strict.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(g)
			if err != nil {
				return err
			}

			report, err := application.NewValidateService(bank.New(), gitinfo.New()).
				Validate(cfg.Bank, cfg.AxisAliases, strict)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(report))
			}

			if report.Status == domain.StatusFail {
				return fmt.Errorf("validation failed: %d issue(s) found", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}
