package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slicegen/slicegen/internal/adapters/outbound/tui"
	"github.com/slicegen/slicegen/internal/domain"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		lenient    bool
		into       string
		jsonOutput bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Convert a pasted column listing into properties",
		Long: "Parse a tab-separated column listing copied from a database designer and print the resulting properties as YAML.\n\n" +
			"Pass - to read from stdin. --into appends the properties to an existing entity file, skipping names it already declares.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			svcs, err := opts.wire(cmd)
			if err != nil {
				return err
			}
			defer svcs.Close()

			ctx := cmd.Context()
			report := svcs.imports.Parse(ctx, text, lenient)

			if into != "" {
				added, err := svcs.imports.MergeInto(ctx, into, report.Properties)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d properties to %s\n", added, into)
				return nil
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, report)
			case pretty:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProperties(report))
				return nil
			default:
				return renderPropertiesYAML(cmd.OutOrStdout(), report.Properties)
			}
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Also split columns on runs of two or more spaces")
	cmd.Flags().StringVar(&into, "into", "", "Append the properties to this entity file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the import report as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Output a colored property table")

	return cmd
}

func readSource(cmd *cobra.Command, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// renderPropertiesYAML prints a fragment that can be pasted into an entity file.
func renderPropertiesYAML(w io.Writer, props []domain.PropertyDefinition) error {
	doc := struct {
		Properties []domain.PropertyDefinition `yaml:"properties"`
	}{props}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding properties: %w", err)
	}
	return enc.Close()
}
