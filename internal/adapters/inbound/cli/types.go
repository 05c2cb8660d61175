package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slicegen/slicegen/internal/adapters/outbound/tui"
	"github.com/slicegen/slicegen/internal/domain"
)

func newTypesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List property types, id types and endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := domain.NewCatalog()
			if jsonOutput {
				return renderJSON(cmd, catalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTypes(catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
