package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jylitalo/tmg/pkg"
)

type writeCloser struct {
	b bytes.Buffer
}

func (wc *writeCloser) Write(p []byte) (int, error) {
	return wc.b.Write(p)
}

func (wc *writeCloser) String() string {
	return wc.b.String()
}

func (wc *writeCloser) Close() error {
	return nil
}

func readVersion(t *testing.T) string {
	t.Helper()
	versionBytes, err := os.ReadFile("../version.txt")
	require.NoError(t, err, "failed to read version.txt")
	return strings.TrimSpace(string(versionBytes))
}

func copyFixture(t *testing.T) string {
	t.Helper()
	source, err := os.ReadFile("../testdata/example.ts")
	require.NoError(t, err)
	target := filepath.Join(t.TempDir(), "example.ts")
	require.NoError(t, os.WriteFile(target, source, 0o644))
	return target
}

func execute(t *testing.T, wc *writeCloser, args ...string) error {
	t.Helper()
	cmd := NewCommand(wc, readVersion(t))
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestNewCommand(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		var wc writeCloser
		require.NoError(t, execute(t, &wc, "--version"))
		assert.Equal(t, "tmg "+readVersion(t), strings.TrimSpace(wc.String()))
	})

	t.Run("missing source", func(t *testing.T) {
		var wc writeCloser
		assert.ErrorIs(t, execute(t, &wc), pkg.ErrSourceMissing)
	})

	t.Run("invalid extension", func(t *testing.T) {
		var wc writeCloser
		err := execute(t, &wc, "--source-filepath=README.md")
		assert.ErrorIs(t, err, pkg.ErrInvalidExtension)
	})

	t.Run("validate output", func(t *testing.T) {
		var wc writeCloser
		source := copyFixture(t)
		require.NoError(t, execute(t, &wc, "-s", source))

		expected, err := os.ReadFile("../testdata/example.md")
		require.NoError(t, err)
		received, err := os.ReadFile(pkg.OutputPath(source))
		require.NoError(t, err)
		assert.Equal(t, string(expected), string(received))
		assert.Empty(t, wc.String())
	})

	t.Run("prefix and exported only", func(t *testing.T) {
		var wc writeCloser
		source := copyFixture(t)
		require.NoError(t, execute(t, &wc, "-s", source, "--prefix=###", "--exported-only", "--debug"))

		received, err := os.ReadFile(pkg.OutputPath(source))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(received), "### Page\n"))
		assert.NotContains(t, string(received), "Internal")
	})
}
