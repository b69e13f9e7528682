package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// runPrompt reads expressions interactively. With loop, it keeps prompting
// until EOF, an interrupt, or an exit command; otherwise it reads one line.
func (a *app) runPrompt(loop bool) error {
	for {
		p := promptui.Prompt{
			Label:  a.v.GetString("prompt"),
			Stdin:  readCloser(a.in),
			Stdout: writeCloser(a.out),
		}
		line, err := p.Run()
		switch {
		case errors.Is(err, promptui.ErrEOF), errors.Is(err, promptui.ErrInterrupt):
			return nil
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}
		if loop {
			switch strings.TrimSpace(line) {
			case "exit", "quit":
				return nil
			}
		}
		a.evaluate(line)
		if !loop {
			return nil
		}
	}
}

func readCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func writeCloser(w io.Writer) io.WriteCloser {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}
