package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/slicegen/slicegen/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("file.txt")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestWorktree_CleanRepo(t *testing.T) {
	dirty, err := gitinfo.New().IsDirty(initRepoWithCommit(t))
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestWorktree_UntrackedFileIsDirty(t *testing.T) {
	dir := initRepoWithCommit(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	dirty, err := gitinfo.New().IsDirty(dir)
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestWorktree_ModifiedFileIsDirty(t *testing.T) {
	dir := initRepoWithCommit(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("changed"), 0644))

	dirty, err := gitinfo.New().IsDirty(dir)
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestWorktree_MissingSubdirUsesAncestor(t *testing.T) {
	dir := initRepoWithCommit(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644))

	dirty, err := gitinfo.New().IsDirty(filepath.Join(dir, "generated", "out"))
	require.NoError(t, err)
	assert.True(t, dirty)
}
