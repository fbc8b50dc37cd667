package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dir     string
	bank    string
	verbose bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "polaxis",
		Short: "Classify political survey answers into five-axis archetypes",
		Long: "polaxis scores answers to a weighted five-axis question bank, resolves the " +
			"five-letter archetype code and suggests the closest alternatives.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&g.dir, "dir", ".", "Project directory holding .polaxis.yaml")
	cmd.PersistentFlags().StringVar(&g.bank, "bank", "", "Question bank file (overrides config)")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newClassifyCmd(g))
	cmd.AddCommand(newBatchCmd(g))
	cmd.AddCommand(newCompareCmd(g))
	cmd.AddCommand(newArchetypesCmd())
	cmd.AddCommand(newValidateCmd(g))
	cmd.AddCommand(newDistributionCmd(g))
	cmd.AddCommand(newServeCmd(g))
	cmd.AddCommand(newMCPCmd(g))
	cmd.AddCommand(newInitCmd(g))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
