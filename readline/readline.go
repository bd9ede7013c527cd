// Package readline is the line editor used by the REPL, with history kept in
// a file between sessions.
package readline

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned by Readline when the user presses Ctrl-C.
var ErrAborted = liner.ErrPromptAborted

type Reader struct {
	ln      *liner.State
	history string
}

// New starts line editing on the terminal and loads history from
// historyPath, if it exists. An empty historyPath disables history.
func New(historyPath string) *Reader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	r := &Reader{ln: ln, history: ExpandHome(historyPath)}
	if r.history != "" {
		if f, err := os.Open(r.history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return r
}

// Readline prompts for one line. It returns io.EOF at end of input.
func (r *Reader) Readline(prompt string) (string, error) {
	line, err := r.ln.Prompt(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.ln.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal and saves the history.
func (r *Reader) Close() error {
	var werr error
	if r.history != "" {
		f, err := os.Create(r.history)
		if err == nil {
			_, werr = r.ln.WriteHistory(f)
			if cerr := f.Close(); werr == nil {
				werr = cerr
			}
		} else {
			werr = err
		}
	}

	if err := r.ln.Close(); err != nil {
		return err
	}
	return werr
}

// ExpandHome replaces a leading "~/" in path with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
