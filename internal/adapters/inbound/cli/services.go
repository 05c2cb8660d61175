package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/slicegen/slicegen/internal/adapters/outbound/config"
	"github.com/slicegen/slicegen/internal/adapters/outbound/entityfile"
	"github.com/slicegen/slicegen/internal/adapters/outbound/export"
	"github.com/slicegen/slicegen/internal/adapters/outbound/gitinfo"
	"github.com/slicegen/slicegen/internal/adapters/outbound/logging"
	"github.com/slicegen/slicegen/internal/adapters/outbound/tui"
	"github.com/slicegen/slicegen/internal/application"
	"github.com/slicegen/slicegen/internal/domain"
)

// services is the wired object graph behind a command invocation.
type services struct {
	log      *slog.Logger
	closer   io.Closer
	project  domain.ProjectConfig
	generate *application.GenerateService
	imports  *application.ImportService
	export   *application.ExportService
}

// wire loads the project config, builds the logger and wires every
// adapter. Callers must Close the result.
func (o *rootOptions) wire(cmd *cobra.Command) (*services, error) {
	loader := config.New()
	project, err := loader.Load(o.projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if o.logLevel != "" {
		project.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		project.Log.Format = o.logFormat
	}

	logger, closer := logging.New(project.Log, cmd.ErrOrStderr())
	store := entityfile.New()

	return &services{
		log:      logger,
		closer:   closer,
		project:  project,
		generate: application.NewGenerateService(logger, loader, store),
		imports:  application.NewImportService(logger, store),
		export: application.NewExportService(
			logger,
			export.NewDirWriter(),
			gitinfo.New(),
			export.NewZipExporter(),
			export.NewBundleExporter(),
		),
	}, nil
}

func (s *services) Close() error {
	return s.closer.Close()
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportValidation prints field failures to stderr before handing err back.
func reportValidation(cmd *cobra.Command, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderValidation(ve))
	}
	return err
}
