package export

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/slicegen/slicegen/internal/domain"
)

// ZipExporter implements domain.Exporter. Entries are named Path/FileName.
type ZipExporter struct{}

// NewZipExporter creates a ZipExporter.
func NewZipExporter() *ZipExporter { return &ZipExporter{} }

// Export writes every file of result as a deflated entry.
func (e *ZipExporter) Export(w io.Writer, result *domain.GeneratorResult) error {
	zw := zip.NewWriter(w)
	for _, f := range result.Files {
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:   f.FullPath(),
			Method: zip.Deflate,
		})
		if err != nil {
			return fmt.Errorf("adding %s: %w", f.FullPath(), err)
		}
		if _, err := io.WriteString(entry, f.Content); err != nil {
			return fmt.Errorf("writing %s: %w", f.FullPath(), err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}
