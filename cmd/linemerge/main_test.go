package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidvella/linemerge/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestRootCmdMergesFiles(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.txt", "a\nc\n")
	right := writeFile(t, dir, "right.txt", "b\nd\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{left, right})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "a\nb\nc\nd\n", out.String())
}

func TestRootCmdNoArgs(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestRootCmdMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "does-not-exist.txt")})

	err := cmd.Execute()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmdUnsortedFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "foo\nbar\n")

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{bad})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, merge.ErrOutOfOrder)

	var orderErr *merge.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, bad, orderErr.Stream)
}

func TestRootCmdOutputFlag(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.txt", "1\n3\n")
	right := writeFile(t, dir, "right.txt", "2\n4\n")
	dest := filepath.Join(dir, "merged.txt")

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--output", dest, left, right})

	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n", string(got))
}
