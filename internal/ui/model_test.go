package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
	"multiselect/internal/ui/controller"
	"multiselect/internal/ui/input"
	"multiselect/internal/ui/services/navigation"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyHelp  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}
)

func fruits() domain.ItemList {
	return domain.ItemList{
		{Label: "Apple", Value: "apple"},
		{Label: "Banana", Value: "banana"},
		{Label: "Cherry", Value: "cherry"},
	}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModelSubmit(t *testing.T) {
	var submitted domain.ItemList
	ctrl := controller.New(fruits(), controller.OnSubmit(func(items domain.ItemList) {
		submitted = items
	}))
	m := NewModel(ctrl, Options{Title: "Fruit"})

	cmd := send(m, keyDown, keySpace, keyDown, keySpace, keyUp, keySpace, keyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Equal(t, OutcomeSubmitted, m.Outcome())
	assert.Equal(t, []string{"cherry"}, m.Result().Values())
	assert.Equal(t, m.Result(), submitted)
	assert.Empty(t, m.View(), "nothing is drawn after the program ends")
}

func TestModelCancel(t *testing.T) {
	m := NewModel(controller.New(fruits()), Options{})

	cmd := send(m, keySpace, keyEsc)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, OutcomeCancelled, m.Outcome())
	assert.Empty(t, m.Result())
}

func TestModelUnfocusedIgnoresKeys(t *testing.T) {
	m := NewModel(controller.New(fruits()), Options{})

	send(m, FocusMsg{Focused: false})
	cmd := send(m, keyDown, keySpace, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, OutcomeRunning, m.Outcome())
	assert.Equal(t, navigation.State{}, m.Controller().State())
	assert.Empty(t, m.Controller().Selection())

	send(m, FocusMsg{Focused: true}, keyDown)
	assert.Equal(t, 1, m.Controller().State().HighlightedIndex)
}

func TestModelSetItems(t *testing.T) {
	m := NewModel(controller.New(fruits(), controller.WithLimit(2)), Options{})
	send(m, keyDown, keyDown)
	require.NotEqual(t, navigation.State{}, m.Controller().State())

	moved := m.Controller().State()
	send(m, SetItemsMsg{Items: fruits()})
	assert.Equal(t, moved, m.Controller().State(), "same items keep the window")

	send(m, SetItemsMsg{Items: domain.ItemList{{Label: "Date", Value: "date"}}})
	assert.Equal(t, navigation.State{}, m.Controller().State())
	assert.Contains(t, ansi.Strip(m.View()), "Date")
}

func TestModelView(t *testing.T) {
	m := NewModel(controller.New(fruits(), controller.WithLimit(2)), Options{Title: "Fruit", ShowHelp: true})
	send(m, tea.WindowSizeMsg{Width: 80, Height: 24}, keySpace, StatusMsg("pick some"))

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Fruit")
	assert.Contains(t, out, "❯ ◉ Apple")
	assert.Contains(t, out, "  ◯ Banana")
	assert.NotContains(t, out, "Cherry")
	assert.Contains(t, out, "2 of 3 shown")
	assert.Contains(t, out, "pick some")
	assert.Contains(t, out, "toggle")

	send(m, keyHelp)
	assert.Contains(t, ansi.Strip(m.View()), "quit", "full help lists every binding")
}

func TestKeyReference(t *testing.T) {
	out := ansi.Strip(KeyReference(input.DefaultKeyMap()))
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "submit")
}
