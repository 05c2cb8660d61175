package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slicegen/slicegen/internal/domain"
	"github.com/slicegen/slicegen/internal/domain/generator"
	"github.com/slicegen/slicegen/internal/domain/schema"
)

// GenerateService resolves entity descriptions against the project config and
// runs the generators.
type GenerateService struct {
	log          *slog.Logger
	configLoader domain.ConfigLoader
	entities     domain.EntityStore
}

// NewGenerateService creates a GenerateService.
func NewGenerateService(logger *slog.Logger, configLoader domain.ConfigLoader, entities domain.EntityStore) *GenerateService {
	return &GenerateService{
		log:          logger.With("service", "generate"),
		configLoader: configLoader,
		entities:     entities,
	}
}

// LoadEntity reads the entity file at entityPath and resolves it against the
// config found in projectPath.
func (s *GenerateService) LoadEntity(ctx context.Context, projectPath, entityPath string) (domain.EntityConfig, error) {
	spec, err := s.entities.Load(entityPath)
	if err != nil {
		return domain.EntityConfig{}, fmt.Errorf("loading entity: %w", err)
	}
	return s.Resolve(ctx, projectPath, spec)
}

// DecodeEntity resolves entity YAML held in memory. schema_file references
// are read relative to projectPath.
func (s *GenerateService) DecodeEntity(ctx context.Context, projectPath string, data []byte) (domain.EntityConfig, error) {
	spec, err := s.entities.Decode(data, projectPath)
	if err != nil {
		return domain.EntityConfig{}, fmt.Errorf("decoding entity: %w", err)
	}
	return s.Resolve(ctx, projectPath, spec)
}

// Resolve imports the embedded schema, if any, and applies project defaults.
func (s *GenerateService) Resolve(ctx context.Context, projectPath string, spec domain.EntitySpec) (domain.EntityConfig, error) {
	pcfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.EntityConfig{}, fmt.Errorf("loading config: %w", err)
	}

	if text := spec.SchemaText(); text != "" {
		report := schema.ParseWith(text, schema.Options{Lenient: spec.Lenient})
		logSkipped(ctx, s.log, report.Skipped)
		merged, added := domain.MergeProperties(spec.Properties, report.Properties)
		if dropped := len(report.Properties) - added; dropped > 0 {
			s.log.DebugContext(ctx, "schema columns already declared", slog.Int("dropped", dropped))
		}
		spec.Properties = merged
	}
	return spec.Resolve(pcfg), nil
}

// Generate validates cfg and emits every artifact.
func (s *GenerateService) Generate(ctx context.Context, cfg domain.EntityConfig) (*domain.GeneratorResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, w := range domain.NameWarnings(cfg.EntityName) {
		s.log.WarnContext(ctx, w)
	}

	result := generator.GenerateAll(cfg)
	s.log.InfoContext(ctx, "slice generated",
		slog.String("module", cfg.ModuleName),
		slog.String("entity", cfg.EntityName),
		slog.Int("files", result.Summary.TotalFiles))
	return result, nil
}

// Routes validates cfg and returns its route table.
func (s *GenerateService) Routes(cfg domain.EntityConfig) ([]generator.Route, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return generator.Routes(cfg), nil
}

func logSkipped(ctx context.Context, log *slog.Logger, skipped []schema.Skip) {
	for _, sk := range skipped {
		log.DebugContext(ctx, "schema line skipped",
			slog.Int("line", sk.Line),
			slog.String("reason", sk.Reason))
	}
}
