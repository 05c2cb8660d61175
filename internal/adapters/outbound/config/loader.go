package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/slicegen/slicegen/internal/domain"
)

// FileName is the project config file looked up in the project directory.
const FileName = ".slicegen.yaml"

// Loader implements domain.ConfigLoader.
// Priority: SLICEGEN_* env > .slicegen.yaml > domain.DefaultConfig.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads .slicegen.yaml from projectPath. A missing file is not an
// error; defaults and environment still apply.
func (l *Loader) Load(projectPath string) (domain.ProjectConfig, error) {
	// Defaults are pre-filled rather than declared with env-default tags so
	// an explicit false in the file is not overwritten.
	cfg := domain.DefaultConfig()

	path := filepath.Join(projectPath, FileName)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("reading env: %w", err)
		}
	default:
		return domain.ProjectConfig{}, fmt.Errorf("stat %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}
