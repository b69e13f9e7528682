package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// history is an append-only file of input lines.
type history struct {
	path string
	log  *logrus.Logger
}

// newHistory creates a history writing to path. An empty path disables
// history.
func newHistory(path string, log *logrus.Logger) *history {
	return &history{path: path, log: log}
}

// Append adds a line to the history file, creating it if needed. Empty lines
// are not recorded. A failure to write is logged rather than returned.
func (h *history) Append(line string) {
	if h.path == "" || line == "" {
		return
	}
	// One expression per line.
	line = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(line)
	if err := h.append(line); err != nil {
		h.log.WithFields(logrus.Fields{"path": h.path, "error": err}).Warn("could not write history")
	}
}

func (h *history) append(line string) error {
	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, line)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteTo copies the history to w. A history file that does not exist yet is
// empty.
func (h *history) WriteTo(w io.Writer) (int64, error) {
	if h.path == "" {
		return 0, nil
	}
	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()
	return io.Copy(w, f)
}
