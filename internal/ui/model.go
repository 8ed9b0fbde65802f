package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"multiselect/internal/domain"
	"multiselect/internal/ui/controller"
	"multiselect/internal/ui/input"
	inputtypes "multiselect/internal/ui/input/types"
	"multiselect/internal/ui/views"
)

// Outcome is how the program ended
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeSubmitted
	OutcomeCancelled
)

// Options configure the presentation around the control
type Options struct {
	Title    string
	ShowHelp bool
	Keys     *input.KeyMap
	Renderer *views.Renderer
}

// Model hosts a multi-select controller inside a Bubble Tea program
type Model struct {
	ctrl     *controller.Controller
	keys     input.KeyMap
	help     help.Model
	renderer *views.Renderer

	title    string
	showHelp bool
	status   string
	width    int

	outcome Outcome
	result  domain.ItemList
	logger  *log.Logger
}

// NewModel creates a new UI model around ctrl
func NewModel(ctrl *controller.Controller, opts Options) *Model {
	keys := input.DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = views.NewRenderer(nil, nil)
	}

	return &Model{
		ctrl:     ctrl,
		keys:     keys,
		help:     help.New(),
		renderer: renderer,
		title:    opts.Title,
		showHelp: opts.ShowHelp,
		logger:   log.With("component", "ui"),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case FocusMsg:
		m.ctrl.SetFocus(msg.Focused)

	case SetItemsMsg:
		if m.ctrl.SetItems(msg.Items) {
			m.logger.Debug("item list replaced", "count", len(msg.Items))
		}

	case StatusMsg:
		m.status = string(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.outcome = OutcomeCancelled
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	action := m.keys.DecodeKey(msg)
	if action == inputtypes.ActionNone {
		return nil
	}

	handled := m.ctrl.Dispatch(action)
	if action == inputtypes.ActionSubmit && handled {
		m.outcome = OutcomeSubmitted
		m.result = m.ctrl.Selection()
		return tea.Quit
	}
	return nil
}

// View renders the control
func (m *Model) View() string {
	if m.outcome != OutcomeRunning {
		return ""
	}

	state := views.ViewState{
		Title:    m.title,
		Rows:     m.ctrl.Rows(),
		Total:    m.ctrl.Items().Len(),
		Selected: m.ctrl.Selection().Len(),
		Focused:  m.ctrl.Focused(),
		Status:   m.status,
	}
	if m.showHelp {
		state.HelpView = m.help.View(m.keys)
	}
	return m.renderer.Render(state)
}

// Outcome reports how the program ended
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Result returns the submitted selection. It is empty unless the user submitted.
func (m *Model) Result() domain.ItemList {
	return m.result
}

// Controller returns the hosted controller
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}
