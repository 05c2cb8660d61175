package export_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/slicegen/slicegen/internal/adapters/outbound/export"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFiles() []domain.GeneratedFile {
	return []domain.GeneratedFile{
		{Path: "Fastlink.Portal.Business/Services", FileName: "ArticleService.cs", Content: "public class ArticleService {}", Category: domain.CategoryService},
		{Path: "Fastlink.Portal.Business", FileName: "ArticleMappingProfile.cs.txt", Content: "// mapping", Category: domain.CategoryMapping},
	}
}

func TestDirWriter_WriteDir(t *testing.T) {
	dir := t.TempDir()

	written, err := export.NewDirWriter().WriteDir(dir, sampleFiles())
	require.NoError(t, err)
	require.Len(t, written, 2)

	data, err := os.ReadFile(filepath.Join(dir, "Fastlink.Portal.Business", "Services", "ArticleService.cs"))
	require.NoError(t, err)
	assert.Equal(t, "public class ArticleService {}\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "Fastlink.Portal.Business", "ArticleMappingProfile.cs.txt"))
}

func TestDirWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := export.NewDirWriter()
	files := sampleFiles()

	_, err := w.WriteDir(dir, files)
	require.NoError(t, err)
	files[0].Content = "changed"
	_, err = w.WriteDir(dir, files)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Fastlink.Portal.Business", "Services", "ArticleService.cs"))
	require.NoError(t, err)
	assert.Equal(t, "changed\n", string(data))
}

func TestZipExporter_EntriesArePathAndFileName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.NewZipExporter().Export(&buf, domain.NewGeneratorResult(sampleFiles())))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "Fastlink.Portal.Business/Services/ArticleService.cs", zr.File[0].Name)
	assert.Equal(t, "Fastlink.Portal.Business/ArticleMappingProfile.cs.txt", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "public class ArticleService {}", string(content))
}

func TestBundle_Format(t *testing.T) {
	want := "\n" +
		"// ============================================================\n" +
		"// File: Fastlink.Portal.Business/Services/ArticleService.cs\n" +
		"// Category: Service\n" +
		"// ============================================================\n" +
		"\n" +
		"public class ArticleService {}\n" +
		"\n\n" +
		"\n" +
		"// ============================================================\n" +
		"// File: Fastlink.Portal.Business/ArticleMappingProfile.cs.txt\n" +
		"// Category: Mapping\n" +
		"// ============================================================\n" +
		"\n" +
		"// mapping\n"

	assert.Equal(t, want, export.Bundle(sampleFiles()))

	var buf bytes.Buffer
	require.NoError(t, export.NewBundleExporter().Export(&buf, domain.NewGeneratorResult(sampleFiles())))
	assert.Equal(t, want, buf.String())
}

func TestBundle_Empty(t *testing.T) {
	assert.Equal(t, "", export.Bundle(nil))
}
