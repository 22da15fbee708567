package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTermFile = `format-version: 1.4

[Term]
name: mitochondrion inheritance
id: GO:0000001
`

const validTypedefFile = `format-version: 1.4

[Typedef]
id: part_of
namespace: external
name: part of
`

const invalidTypedefFile = `format-version: 1.4

[Typedef]
id: part_of
name: part of
`

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunFmtWriteReordersClauses(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "sample.obo", sampleTermFile)

	require.NoError(t, runFmt(path, true))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "format-version: 1.4\n\n[Term]\nid: GO:0000001\nname: mitochondrion inheritance\n", string(out))
}

func TestRunFmtStdoutReordersClauses(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "sample.obo", sampleTermFile)

	out := captureStdout(t, func() {
		require.NoError(t, runFmt(path, false))
	})
	assert.Equal(t, "format-version: 1.4\n\n[Term]\nid: GO:0000001\nname: mitochondrion inheritance\n", out)

	unchanged, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleTermFile, string(unchanged))
}

func TestRunValidateFlagsMissingNamespace(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "bad.obo", invalidTypedefFile)

	err := runValidate(filepath.Join(dir, "*.obo"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestRunValidatePassesCleanTree(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "good.obo", validTypedefFile)

	assert.NoError(t, runValidate(filepath.Join(dir, "*.obo")))
}

func TestRunStreamCountOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "sample.obo", sampleTermFile)

	out := captureStdout(t, func() {
		require.NoError(t, runStream(path, true))
	})
	assert.Contains(t, out, "total: 1 frame(s)")
	assert.NotContains(t, out, "GO:0000001")
}

func TestRunStreamListsFrameIds(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "sample.obo", sampleTermFile)

	out := captureStdout(t, func() {
		require.NoError(t, runStream(path, false))
	})
	assert.True(t, strings.Contains(out, "GO:0000001"))
}

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. cmd/obocat's non-writing paths print
// directly to os.Stdout, so tests need to intercept it rather than a
// passed-in io.Writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = orig

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
