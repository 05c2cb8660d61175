package application_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"

	"github.com/slicegen/slicegen/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubConfigLoader struct {
	cfg domain.ProjectConfig
	err error
}

func (s stubConfigLoader) Load(string) (domain.ProjectConfig, error) { return s.cfg, s.err }

type memEntityStore struct {
	specs map[string]domain.EntitySpec
	saved map[string]domain.EntitySpec
}

func newMemEntityStore() *memEntityStore {
	return &memEntityStore{specs: map[string]domain.EntitySpec{}, saved: map[string]domain.EntitySpec{}}
}

func (m *memEntityStore) Load(path string) (domain.EntitySpec, error) {
	spec, ok := m.specs[path]
	if !ok {
		return domain.EntitySpec{}, domain.ErrNotFound
	}
	return spec, nil
}

func (m *memEntityStore) Decode(data []byte, _ string) (domain.EntitySpec, error) {
	if len(data) == 0 {
		return domain.EntitySpec{}, errors.New("empty document")
	}
	return domain.EntitySpec{EntityName: string(bytes.TrimSpace(data))}, nil
}

func (m *memEntityStore) Save(path string, spec domain.EntitySpec) error {
	m.saved[path] = spec
	m.specs[path] = spec
	return nil
}

type stubWorktree struct {
	dirty bool
	err   error
}

func (s stubWorktree) IsDirty(string) (bool, error) { return s.dirty, s.err }

type recordingDirWriter struct {
	dir   string
	files []domain.GeneratedFile
}

func (r *recordingDirWriter) WriteDir(dir string, files []domain.GeneratedFile) ([]string, error) {
	r.dir = dir
	r.files = files
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, dir+"/"+f.FullPath())
	}
	return out, nil
}

type stubExporter struct {
	body string
	err  error
}

func (s stubExporter) Export(w io.Writer, _ *domain.GeneratorResult) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.body)
	return err
}
