package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slicegen/slicegen/internal/adapters/outbound/tui"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	var (
		entityPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes a slice would expose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, err := opts.wire(cmd)
			if err != nil {
				return err
			}
			defer svcs.Close()

			cfg, err := svcs.generate.LoadEntity(cmd.Context(), opts.projectPath, entityPath)
			if err != nil {
				return err
			}
			routes, err := svcs.generate.Routes(cfg)
			if err != nil {
				return reportValidation(cmd, err)
			}

			if jsonOutput {
				return renderJSON(cmd, routes)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRoutes(routes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&entityPath, "file", "f", "", "Entity description file (YAML)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output routes as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
