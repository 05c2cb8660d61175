package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slicegen/slicegen/internal/adapters/outbound/tui"
	"github.com/slicegen/slicegen/internal/application"
	"github.com/slicegen/slicegen/internal/domain"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		entityPath string
		outDir     string
		zipPath    string
		bundlePath string
		write      bool
		jsonOutput bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the C# files of one CRUD slice",
		Long: "Read an entity description, apply project defaults from .slicegen.yaml and emit every artifact of the slice.\n\n" +
			"Without an output flag the command prints a summary. --out or --write put the files on disk, " +
			"--zip packs them in an archive and --bundle concatenates them into one text.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bundlePath == "-" && jsonOutput {
				return fmt.Errorf("--bundle - and --json both write to stdout; pick one")
			}

			svcs, err := opts.wire(cmd)
			if err != nil {
				return err
			}
			defer svcs.Close()

			ctx := cmd.Context()
			cfg, err := svcs.generate.LoadEntity(ctx, opts.projectPath, entityPath)
			if err != nil {
				return err
			}
			result, err := svcs.generate.Generate(ctx, cfg)
			if err != nil {
				return reportValidation(cmd, err)
			}

			if write && outDir == "" {
				outDir = svcs.project.Output.Dir
			}
			if outDir != "" {
				written, err := svcs.export.WriteDir(ctx, outDir, result, force)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d files to %s\n", len(written), outDir)
			}

			if zipPath != "" {
				dest := zipDestination(zipPath, cfg.EntityName)
				if err := writeFile(dest, func(f *os.File) error { return svcs.export.WriteZip(ctx, f, result) }); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Created %s\n", dest)
			}

			switch bundlePath {
			case "":
			case "-":
				return svcs.export.WriteBundle(ctx, cmd.OutOrStdout(), result)
			default:
				if err := writeFile(bundlePath, func(f *os.File) error { return svcs.export.WriteBundle(ctx, f, result) }); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Created %s\n", bundlePath)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(cfg, result, domain.NameWarnings(cfg.EntityName)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&entityPath, "file", "f", "", "Entity description file (YAML)")
	cmd.Flags().StringVar(&outDir, "out", "", "Write the files under this directory")
	cmd.Flags().BoolVar(&write, "write", false, "Write the files under output.dir from .slicegen.yaml")
	cmd.Flags().StringVar(&zipPath, "zip", "", "Write a zip archive to this path or directory")
	cmd.Flags().StringVar(&bundlePath, "bundle", "", "Write all files as one text to this path (- for stdout, replaces the summary)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&force, "force", false, "Write even when the target worktree has uncommitted changes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// zipDestination places the default archive name inside path when path is
// an existing directory.
func zipDestination(path, entity string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, application.ZipFileName(entity))
	}
	return path
}

// writeFile creates path and fills it. A failed fill leaves no file behind.
func writeFile(path string, fill func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
