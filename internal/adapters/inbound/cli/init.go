package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slicegen/slicegen/internal/adapters/outbound/config"
	"github.com/slicegen/slicegen/internal/adapters/outbound/entityfile"
	"github.com/slicegen/slicegen/internal/domain"
)

const configHeader = "# slicegen project configuration\n" +
	"# Every key can be overridden with a SLICEGEN_* environment variable.\n\n"

func newInitCmd() *cobra.Command {
	var (
		entity string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a .slicegen.yaml and a sample entity file",
		Long:  "Create a .slicegen.yaml with the default settings and an entity file to start from.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if strings.TrimSpace(entity) == "" {
				return fmt.Errorf("--entity must not be empty")
			}

			configDest := filepath.Join(absPath, config.FileName)
			entityName := strings.ToLower(entity) + ".yaml"
			entityDest := filepath.Join(absPath, entityName)

			if !force {
				for _, dest := range []string{configDest, entityDest} {
					if _, err := os.Stat(dest); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", filepath.Base(dest))
					}
				}
			}

			content, err := generateConfig()
			if err != nil {
				return err
			}
			if err := os.WriteFile(configDest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)

			if err := entityfile.New().Save(entityDest, sampleEntity(entity)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", entityName)
			return nil
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "Article", "Name of the sample entity")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func generateConfig() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(domain.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// sampleEntity leaves every flag unset so the project defaults apply.
func sampleEntity(name string) domain.EntitySpec {
	return domain.EntitySpec{
		EntityName: name,
		Properties: []domain.PropertyDefinition{
			{Name: "Title", Type: domain.TypeString, IsRequired: true, MaxLength: 200},
			{Name: "Summary", Type: domain.TypeString.Nullable(), MaxLength: 500},
			{Name: "IsPublished", Type: domain.TypeBool, IsRequired: true},
		},
	}
}
