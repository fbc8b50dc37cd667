package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/polaxis/internal/adapters/inbound/mcp"
	"github.com/abdidvp/polaxis/internal/application"
)

func newMCPCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the polaxis MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(g))
	return cmd
}

func newMCPServeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the polaxis MCP server (stdio)",
		Long:  "Start the polaxis MCP server using stdio transport so AI assistants can classify answers and look up archetypes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd, g)
			if err != nil {
				return err
			}
			defer a.Close()

			s := mcpadapter.NewPolaxisMCPServer(a.classify, application.NewCompareService(a.classify), version)
			return server.ServeStdio(s)
		},
	}
}
