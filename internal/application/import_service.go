package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slicegen/slicegen/internal/domain"
	"github.com/slicegen/slicegen/internal/domain/schema"
)

// ImportService turns pasted column listings into property definitions.
type ImportService struct {
	log      *slog.Logger
	entities domain.EntityStore
}

// NewImportService creates an ImportService.
func NewImportService(logger *slog.Logger, entities domain.EntityStore) *ImportService {
	return &ImportService{
		log:      logger.With("service", "import"),
		entities: entities,
	}
}

// Parse runs the importer and logs what it skipped.
func (s *ImportService) Parse(ctx context.Context, text string, lenient bool) schema.Report {
	report := schema.ParseWith(text, schema.Options{Lenient: lenient})
	logSkipped(ctx, s.log, report.Skipped)
	s.log.InfoContext(ctx, "schema imported",
		slog.String("layout", string(schema.Detect(text))),
		slog.Int("properties", len(report.Properties)),
		slog.Int("skipped", len(report.Skipped)))
	return report
}

// MergeInto appends props to the entity file at path, skipping names the
// file already declares. It returns the number of properties added.
func (s *ImportService) MergeInto(ctx context.Context, path string, props []domain.PropertyDefinition) (int, error) {
	spec, err := s.entities.Load(path)
	if err != nil {
		return 0, fmt.Errorf("loading entity: %w", err)
	}

	var added int
	spec.Properties, added = domain.MergeProperties(spec.Properties, props)

	if err := s.entities.Save(path, spec); err != nil {
		return 0, fmt.Errorf("saving entity: %w", err)
	}
	s.log.InfoContext(ctx, "properties merged", slog.String("path", path), slog.Int("added", added))
	return added, nil
}
