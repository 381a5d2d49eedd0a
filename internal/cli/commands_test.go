package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// runCommand executes the root command with args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNormCommand(t *testing.T) {
	out, err := runCommand(t, "norm", "/usr/./local/../bin/swift")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/swift\n", out)
}

func TestAbsCommand(t *testing.T) {
	out, err := runCommand(t, "abs", "/etc/./passwd")
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd\n", out)
}

func TestAbbrCommand(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	out, err := runCommand(t, "abbr", "/home/tester/projects")
	require.NoError(t, err)
	assert.Equal(t, "~/projects\n", out)
}

func TestGlobCommand(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, pathkit.New(filepath.Join(tmp, "one.go")).WriteString("x"))
	require.NoError(t, pathkit.New(filepath.Join(tmp, "two.go")).WriteString("x"))

	out, err := runCommand(t, "glob", filepath.Join(tmp, "*.go"))
	require.NoError(t, err)
	assert.Contains(t, out, "one.go")
	assert.Contains(t, out, "two.go")

	out, err = runCommand(t, "glob", filepath.Join(tmp, "*.rs"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMatchCommand(t *testing.T) {
	out, err := runCommand(t, "match", "*.go", "pkg/file.go")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestLsCommand(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, pathkit.New(filepath.Join(tmp, "visible.txt")).WriteString("x"))
	require.NoError(t, pathkit.New(filepath.Join(tmp, ".hidden")).WriteString("x"))
	require.NoError(t, pathkit.New(filepath.Join(tmp, "dir")).Mkdir())

	out, err := runCommand(t, "ls", tmp)
	require.NoError(t, err)
	assert.Contains(t, out, "visible.txt")
	assert.NotContains(t, out, ".hidden")
	assert.Contains(t, out, "dir")

	out, err = runCommand(t, "ls", "--all", tmp)
	require.NoError(t, err)
	assert.Contains(t, out, ".hidden")
}

func TestTreeCommand(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, pathkit.New(filepath.Join(tmp, "sub")).Mkdir())
	require.NoError(t, pathkit.New(filepath.Join(tmp, "sub", "leaf.txt")).WriteString("x"))

	out, err := runCommand(t, "tree", tmp)
	require.NoError(t, err)
	assert.Contains(t, out, "sub/")
	assert.Contains(t, out, "leaf.txt")

	out, err = runCommand(t, "tree", "--shallow", tmp)
	require.NoError(t, err)
	assert.NotContains(t, out, "leaf.txt")
}

func TestMktempCommand(t *testing.T) {
	out, err := runCommand(t, "mktemp")
	require.NoError(t, err)

	created := pathkit.New(strings.TrimSpace(out))
	defer func() { _ = created.Delete() }()
	assert.True(t, created.IsDirectory())
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pathkit version")
}
