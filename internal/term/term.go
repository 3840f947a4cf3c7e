// Package term is the terminal collaborator for the fire loop: it reports the
// window size and clears the screen between frames.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	xterm "golang.org/x/term"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Terminal queries the size of the terminal attached to a file.
type Terminal struct {
	f *os.File
}

func New(f *os.File) *Terminal {
	return &Terminal{f: f}
}

// Size returns the current (columns, rows).
func (t *Terminal) Size() (int, int, error) {
	fd := int(t.f.Fd())
	if !xterm.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s is not a terminal", t.f.Name())
	}
	return xterm.GetSize(fd)
}

// Clear wipes the visible screen and homes the cursor.
func (t *Terminal) Clear(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen)
	return err
}

func HideCursor(w io.Writer) { io.WriteString(w, hideCursor) }

func ShowCursor(w io.Writer) { io.WriteString(w, showCursor) }

// Fixed is a sizer with a settable size, for headless runs and views that
// learn their size from window events.
type Fixed struct {
	mu         sync.Mutex
	cols, rows int
}

func NewFixed(cols, rows int) *Fixed {
	return &Fixed{cols: cols, rows: rows}
}

func (f *Fixed) Set(cols, rows int) {
	f.mu.Lock()
	f.cols, f.rows = cols, rows
	f.mu.Unlock()
}

func (f *Fixed) Size() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cols, f.rows, nil
}

// Clear is a no-op so Fixed can stand in for a Terminal in headless loops.
func (f *Fixed) Clear(io.Writer) error { return nil }
