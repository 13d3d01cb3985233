package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Region is a piece of output whose text is replaced wholesale on every write
type Region interface {
	SetText(text string)
}

// Recorder is an in-memory Region. Concurrent writers race and the last one wins.
type Recorder struct {
	mu      sync.Mutex
	text    string
	history []string
}

func (r *Recorder) SetText(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = text
	r.history = append(r.history, text)
}

// Text returns the current content
func (r *Recorder) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text
}

// History returns every text written so far, oldest first
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Terminal is a Region on a terminal stream. On an interactive terminal a single line is redrawn in place as it
// changes. Anywhere else nothing is written until Flush, so pipes only ever see the final text.
type Terminal struct {
	mu          sync.Mutex
	out         io.Writer
	interactive bool
	// Whether the last write is a single line still open for redrawing
	open    bool
	pending string
}

// NewTerminal wraps out, treating it as interactive when it is a file attached to a terminal
func NewTerminal(out io.Writer) *Terminal {
	interactive := false
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Terminal{out: out, interactive: interactive}
}

func (t *Terminal) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.interactive {
		t.pending = text
		return
	}

	if t.open {
		// Return to the start of the line and clear it
		fmt.Fprint(t.out, "\r\x1b[K")
		t.open = false
	}

	if strings.Contains(text, "\n") {
		fmt.Fprintln(t.out, text)
		return
	}
	fmt.Fprint(t.out, text)
	t.open = true
}

// Flush finishes the output with a trailing newline
func (t *Terminal) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.interactive {
		fmt.Fprintln(t.out, t.pending)
		t.pending = ""
		return
	}

	if t.open {
		fmt.Fprintln(t.out)
		t.open = false
	}
}
