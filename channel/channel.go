// Package channel provides the front-ends that drive a chat panel: a
// full-screen TUI for terminals and a line-oriented mode for pipes.
package channel

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alphaui/alphachat/chat"
)

// Frontend runs a chat panel until the user leaves or ctx is done.
type Frontend interface {
	// Name returns the front-end name ("tui" or "plain").
	Name() string

	// Run blocks until the session ends.
	Run(ctx context.Context) error
}

// Options configures a front-end.
type Options struct {
	Panel    chat.Options
	Asker    chat.Asker
	Title    string
	Markdown bool
	Robot    bool
	Plain    bool // force line mode even on a terminal

	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
}

// New returns the TUI front-end when stdin is a terminal, otherwise the
// plain line front-end.
func New(opts Options) Frontend {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if !opts.Plain && isTerminal(opts.In) {
		return newTUIFrontend(opts)
	}
	return newPlainFrontend(opts)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
