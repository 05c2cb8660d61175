package gitinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// WorktreeInspector implements domain.WorktreeInspector using go-git.
type WorktreeInspector struct{}

func New() *WorktreeInspector {
	return &WorktreeInspector{}
}

// IsDirty reports whether the worktree containing path has uncommitted or
// untracked changes. A path outside any repository is clean. The path may
// not exist yet; its nearest existing ancestor is inspected.
func (g *WorktreeInspector) IsDirty(path string) (bool, error) {
	repo, err := open(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}
	return !status.IsClean(), nil
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(existingAncestor(path), &git.PlainOpenOptions{DetectDotGit: true})
}

func existingAncestor(path string) string {
	p, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	for {
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p
		}
		p = parent
	}
}
