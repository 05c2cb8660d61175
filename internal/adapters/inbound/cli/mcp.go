package cli

import (
	mcpadapter "github.com/slicegen/slicegen/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the slicegen MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start slicegen MCP server (stdio)",
		Long:  "Start the slicegen MCP server using stdio transport. This lets AI coding assistants generate slices, parse column listings and list routes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, svcs, err := opts.mcpServer(cmd, projectPath)
			if err != nil {
				return err
			}
			defer svcs.Close()

			svcs.log.InfoContext(cmd.Context(), "mcp server starting", "path", opts.projectPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project directory holding .slicegen.yaml (defaults to --config)")

	return cmd
}

// mcpServer wires the services against path, or --config when path is
// empty, so the logger, the defaults and the tools read the same project.
func (o *rootOptions) mcpServer(cmd *cobra.Command, path string) (*server.MCPServer, *services, error) {
	if path != "" {
		o.projectPath = path
	}
	svcs, err := o.wire(cmd)
	if err != nil {
		return nil, nil, err
	}
	return mcpadapter.NewSliceGenMCPServer(o.projectPath, svcs.generate, svcs.imports, svcs.export), svcs, nil
}
