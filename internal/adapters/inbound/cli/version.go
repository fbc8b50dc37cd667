package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show polaxis version",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := color.New(color.FgYellow, color.Bold).Sprint("polaxis")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", name, version, commit)
			return nil
		},
	}
}
