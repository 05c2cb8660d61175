// Package export writes generated files to a directory tree, a zip archive
// or a single banner-framed text bundle.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/slicegen/slicegen/internal/domain"
)

// DirWriter implements domain.DirWriter. Each file's Path becomes a
// sub-directory of the target.
type DirWriter struct{}

// NewDirWriter creates a DirWriter.
func NewDirWriter() *DirWriter { return &DirWriter{} }

// WriteDir writes files under dir, overwriting existing ones.
func (w *DirWriter) WriteDir(dir string, files []domain.GeneratedFile) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, f := range files {
		target := filepath.Join(dir, filepath.FromSlash(f.FullPath()))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, []byte(f.Content+"\n"), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
