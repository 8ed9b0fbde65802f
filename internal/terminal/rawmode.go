package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw input is requested on something that is
// not a terminal
var ErrNotTerminal = errors.New("not a terminal")

// RawMode toggles raw input mode on a terminal file descriptor
type RawMode struct {
	mu       sync.Mutex
	fd       int
	oldState *term.State
}

// NewRawMode prepares raw mode handling for f
func NewRawMode(f *os.File) (*RawMode, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}
	return &RawMode{fd: fd}, nil
}

// SetRawMode enters or leaves raw mode. Repeated calls with the same value are
// no-ops.
func (r *RawMode) SetRawMode(enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if enabled {
		if r.oldState != nil {
			return nil
		}
		oldState, err := term.MakeRaw(r.fd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		r.oldState = oldState
		return nil
	}

	if r.oldState == nil {
		return nil
	}
	err := term.Restore(r.fd, r.oldState)
	r.oldState = nil
	if err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
