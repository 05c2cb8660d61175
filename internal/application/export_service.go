package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/slicegen/slicegen/internal/domain"
)

// ZipFileName is the archive name offered for an entity's files.
func ZipFileName(entity string) string {
	return entity + "_Generated.zip"
}

// ExportService writes generation results to disk or to a stream.
type ExportService struct {
	log      *slog.Logger
	dir      domain.DirWriter
	worktree domain.WorktreeInspector
	zip      domain.Exporter
	bundle   domain.Exporter
}

// NewExportService creates an ExportService.
func NewExportService(
	logger *slog.Logger,
	dir domain.DirWriter,
	worktree domain.WorktreeInspector,
	zip domain.Exporter,
	bundle domain.Exporter,
) *ExportService {
	return &ExportService{
		log:      logger.With("service", "export"),
		dir:      dir,
		worktree: worktree,
		zip:      zip,
		bundle:   bundle,
	}
}

// WriteDir writes every file under dir. Unless force is set it refuses to
// touch a git worktree with uncommitted changes.
func (s *ExportService) WriteDir(ctx context.Context, dir string, result *domain.GeneratorResult, force bool) ([]string, error) {
	if !force {
		dirty, err := s.worktree.IsDirty(dir)
		if err != nil {
			return nil, fmt.Errorf("inspecting worktree: %w", err)
		}
		if dirty {
			return nil, fmt.Errorf("%s: %w (use --force to write anyway)", dir, domain.ErrDirtyWorktree)
		}
	}

	written, err := s.dir.WriteDir(dir, result.Files)
	if err != nil {
		return nil, fmt.Errorf("writing files: %w", err)
	}
	s.log.InfoContext(ctx, "files written", slog.String("dir", dir), slog.Int("files", len(written)))
	return written, nil
}

// WriteZip streams the result as a zip archive.
func (s *ExportService) WriteZip(ctx context.Context, w io.Writer, result *domain.GeneratorResult) error {
	if err := s.zip.Export(w, result); err != nil {
		return fmt.Errorf("writing zip: %w", err)
	}
	s.log.DebugContext(ctx, "zip exported", slog.Int("files", len(result.Files)))
	return nil
}

// WriteBundle streams the result as one banner-framed text.
func (s *ExportService) WriteBundle(ctx context.Context, w io.Writer, result *domain.GeneratorResult) error {
	if err := s.bundle.Export(w, result); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	s.log.DebugContext(ctx, "bundle exported", slog.Int("files", len(result.Files)))
	return nil
}
