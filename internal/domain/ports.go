package domain

import "io"

// ConfigLoader loads project configuration from a directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// EntityStore reads and writes entity files. A referenced schema_file is
// read into EntitySpec.LinkedSchema, relative to the entity file or baseDir.
type EntityStore interface {
	Load(path string) (EntitySpec, error)
	Decode(data []byte, baseDir string) (EntitySpec, error)
	Save(path string, spec EntitySpec) error
}

// Exporter serializes a generation result into a single stream.
type Exporter interface {
	Export(w io.Writer, result *GeneratorResult) error
}

// DirWriter materializes files under a directory and returns the written paths.
type DirWriter interface {
	WriteDir(dir string, files []GeneratedFile) ([]string, error)
}

// WorktreeInspector reports whether a directory sits in a git worktree with
// uncommitted changes. Directories outside any repository are clean.
type WorktreeInspector interface {
	IsDirty(path string) (bool, error)
}
