package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/ytget/texture-checker/internal/mcp"
	"github.com/ytget/texture-checker/internal/validate"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Texture Checker MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var reqFlags requirementFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start Texture Checker MCP server (stdio)",
		Long:  "Start the MCP server using stdio transport. Requirement flags set the defaults for tool calls that omit them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := reqFlags.resolve(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewTextureCheckerMCPServer(validate.NewService(nil), mcpadapter.Defaults{Requirements: req})
			return server.ServeStdio(s)
		},
	}

	reqFlags.register(cmd)

	return cmd
}
