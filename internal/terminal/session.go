package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"multiselect/internal/domain"
	"multiselect/internal/ui/controller"
	"multiselect/internal/ui/input/types"
	"multiselect/internal/ui/views"
)

const (
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
	ansiClearDown  = "\033[J"

	keyCtrlC  = "\x03"
	keyEscape = "\x1b"
)

// Result is what a session ended with
type Result struct {
	Submitted bool
	Items     domain.ItemList
}

// Session drives a controller straight from a raw terminal, without a
// full-screen program. The list is redrawn in place after every chunk.
type Session struct {
	ctrl     *controller.Controller
	renderer *views.Renderer
	title    string
	in       io.Reader
	out      io.Writer
	raw      controller.RawMode

	lines  int
	logger *log.Logger
}

// NewSession creates a session. raw may be nil when in is not a terminal.
func NewSession(ctrl *controller.Controller, renderer *views.Renderer, title string, in io.Reader, out io.Writer, raw controller.RawMode) *Session {
	if renderer == nil {
		renderer = views.NewRenderer(nil, nil)
	}
	return &Session{
		ctrl:     ctrl,
		renderer: renderer,
		title:    title,
		in:       in,
		out:      out,
		raw:      raw,
		logger:   log.With("component", "session"),
	}
}

// Run shows the list and processes input until submit, cancel or end of
// input. The terminal mode is restored on every return path, panics included.
func (s *Session) Run(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	src := NewSource(s.in)
	release, err := s.ctrl.Attach(src, s.raw)
	if err != nil {
		return Result{}, err
	}
	defer release()

	fmt.Fprint(s.out, ansiHideCursor)
	defer fmt.Fprint(s.out, ansiShowCursor)

	var result Result
	unsubscribe := src.Subscribe(func(chunk []byte) {
		switch string(chunk) {
		case keyCtrlC, keyEscape:
			s.logger.Debug("cancelled")
			cancel()
			return
		}

		if s.ctrl.Decode(chunk) == types.ActionSubmit && s.ctrl.Focused() {
			result = Result{Submitted: true, Items: s.ctrl.Selection()}
			cancel()
			return
		}
		s.draw()
	})
	defer unsubscribe()

	s.draw()
	err = src.Run(ctx)
	s.clear()
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func (s *Session) draw() {
	s.clear()

	var lines []string
	if s.title != "" {
		lines = append(lines, s.renderer.Styles().Title.UnsetMarginBottom().Render(s.title))
	}
	lines = append(lines, s.renderer.Lines(s.ctrl.Rows())...)
	if len(lines) == 0 {
		return
	}

	fmt.Fprint(s.out, strings.Join(lines, "\r\n")+"\r\n")
	s.lines = len(lines)
}

func (s *Session) clear() {
	if s.lines > 0 {
		fmt.Fprintf(s.out, "\033[%dA", s.lines)
		fmt.Fprint(s.out, ansiClearDown)
	}
	s.lines = 0
}
