// Package entityfile reads and writes entity description files in YAML.
package entityfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/slicegen/slicegen/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store implements domain.EntityStore.
type Store struct{}

// New creates a Store.
func New() *Store { return &Store{} }

// Load reads the entity file at path. schema_file is resolved relative to
// the file's directory.
func (s *Store) Load(path string) (domain.EntitySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.EntitySpec{}, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return domain.EntitySpec{}, fmt.Errorf("reading %s: %w", path, err)
	}

	spec, err := s.Decode(data, filepath.Dir(path))
	if err != nil {
		return domain.EntitySpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Decode parses entity YAML. Unknown keys are rejected so typos surface
// instead of silently falling back to defaults.
func (s *Store) Decode(data []byte, baseDir string) (domain.EntitySpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec domain.EntitySpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.EntitySpec{}, errors.New("empty entity document")
		}
		return domain.EntitySpec{}, fmt.Errorf("parsing entity: %w", err)
	}

	if spec.SchemaFile != "" {
		path := spec.SchemaFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		text, err := os.ReadFile(path)
		if err != nil {
			return domain.EntitySpec{}, fmt.Errorf("reading schema_file: %w", err)
		}
		spec.LinkedSchema = string(text)
	}
	return spec, nil
}

// Save writes spec to path. LinkedSchema is never persisted; the
// schema_file reference is kept instead.
func (s *Store) Save(path string, spec domain.EntitySpec) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encoding entity: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding entity: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
