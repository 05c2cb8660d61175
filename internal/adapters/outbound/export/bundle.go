package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/slicegen/slicegen/internal/domain"
)

const bannerRule = "// ============================================================"

// BundleExporter implements domain.Exporter by concatenating every file
// behind a banner naming its path and category.
type BundleExporter struct{}

// NewBundleExporter creates a BundleExporter.
func NewBundleExporter() *BundleExporter { return &BundleExporter{} }

// Export writes the bundle to w.
func (e *BundleExporter) Export(w io.Writer, result *domain.GeneratorResult) error {
	if _, err := io.WriteString(w, Bundle(result.Files)); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	return nil
}

// Bundle renders files as one text. Each block opens with a blank line and
// the banner, and blocks are separated by a blank line.
func Bundle(files []domain.GeneratedFile) string {
	blocks := make([]string, 0, len(files))
	for _, f := range files {
		var b strings.Builder
		b.WriteString("\n")
		b.WriteString(bannerRule + "\n")
		fmt.Fprintf(&b, "// File: %s\n", f.FullPath())
		fmt.Fprintf(&b, "// Category: %s\n", f.Category)
		b.WriteString(bannerRule + "\n\n")
		b.WriteString(f.Content)
		b.WriteString("\n")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
