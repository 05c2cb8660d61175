package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	projectPath string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "slicegen",
		Short: "Generate CRUD vertical slices for .NET projects",
		Long: "slicegen turns an entity description into the C# files of one CRUD slice: " +
			"entity, repository, service, models, endpoints, validators, mapping profile and API client.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.projectPath, "config", ".", "Directory holding .slicegen.yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format override (text, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newImportCmd(opts))
	cmd.AddCommand(newRoutesCmd(opts))
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
