package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/slicegen/slicegen/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata"

func fixture(name string) string {
	return filepath.Join(fixtureDir, name)
}

// run executes the root command with args and returns stdout and stderr.
// --config points at an empty directory so a developer's own .slicegen.yaml
// never leaks into the result.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := cli.NewRootCmdForTest()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := run(t, args...)
	require.NoError(t, err, stderr)
	return out
}
