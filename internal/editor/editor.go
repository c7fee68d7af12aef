// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// Editor runs an external editor attached to the given streams.
type Editor struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// New returns an Editor attached to the process streams.
func New() *Editor {
	return &Editor{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Open launches the editor on path and waits for it to exit.
// $EDITOR may carry arguments, e.g. "code --wait".
func (e *Editor) Open(ctx context.Context, path string) error {
	argv := strings.Fields(detectEditor())

	fmt.Fprintf(e.Out, "Editing: %s\n", path)

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = e.In
	cmd.Stdout = e.Out
	cmd.Stderr = e.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// detectEditor returns the editor command: $EDITOR, then $VISUAL, then nano,
// then vi. Blank values count as unset.
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
