package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEditor(t *testing.T) {
	fallback := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		fallback = "nano"
	}

	tests := []struct {
		editor, visual string
		want           string
	}{
		{editor: "nvim", visual: "code", want: "nvim"},
		{editor: "", visual: "code", want: "code"},
		{editor: "  ", visual: "vscode", want: "vscode"},
		{editor: " hx ", visual: "", want: "hx"},
		{editor: "", visual: "", want: fallback},
	}
	for _, tt := range tests {
		t.Setenv("EDITOR", tt.editor)
		t.Setenv("VISUAL", tt.visual)
		assert.Equal(t, tt.want, detectEditor(), "EDITOR=%q VISUAL=%q", tt.editor, tt.visual)
	}
}

// recorder installs a shell script as $EDITOR that saves its arguments, and
// returns the file they are saved to.
func recorder(t *testing.T, extra string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	argsFile := filepath.Join(dir, "args")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\" > "+argsFile+"\n"), 0o755))
	t.Setenv("EDITOR", strings.TrimSpace(script+" "+extra))
	return argsFile
}

func TestOpen(t *testing.T) {
	argsFile := recorder(t, "")
	target := filepath.Join(t.TempDir(), "ACTIVE_AGENTS.txt")

	var out bytes.Buffer
	e := &Editor{In: strings.NewReader(""), Out: &out, Err: &out}
	require.NoError(t, e.Open(t.Context(), target))

	got, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, target, strings.TrimSpace(string(got)))
	assert.Contains(t, out.String(), "Editing: "+target)
}

func TestOpen_EditorWithArgs(t *testing.T) {
	argsFile := recorder(t, "--wait")

	e := &Editor{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}
	require.NoError(t, e.Open(t.Context(), "ACTIVE_SKILLS.txt"))

	got, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "--wait ACTIVE_SKILLS.txt", strings.TrimSpace(string(got)))
}

func TestOpen_MissingBinary(t *testing.T) {
	t.Setenv("EDITOR", "agentdocs-no-such-editor")

	e := &Editor{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}
	err := e.Open(t.Context(), "ACTIVE_SKILLS.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agentdocs-no-such-editor")
}
