package views

import (
	"fmt"
	"strings"

	"multiselect/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Title    string
	Rows     []domain.Row
	Total    int // items in the full list, may exceed len(Rows)
	Selected int
	Focused  bool
	Status   string
	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	rows   RowRenderer
}

// NewRenderer creates a new renderer. A nil row renderer selects the default
// indicator, checkbox and label layout.
func NewRenderer(styles *Styles, rows RowRenderer) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	if rows == nil {
		rows = DefaultRowRenderer(styles, DefaultGlyphs())
	}
	return &Renderer{
		styles: styles,
		rows:   rows,
	}
}

// Styles returns the styles the renderer draws with
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Lines renders each visible row on its own line
func (r *Renderer) Lines(rows []domain.Row) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, r.rows.RenderRow(row))
	}
	return lines
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.Title != "" {
		content.WriteString(r.styles.Title.Render(state.Title))
		content.WriteString("\n")
	}

	if len(state.Rows) == 0 {
		content.WriteString(r.styles.Dim.Render("No items."))
	} else {
		lines := r.Lines(state.Rows)
		if !state.Focused {
			for i, line := range lines {
				lines[i] = r.styles.Dim.Render(line)
			}
		}
		content.WriteString(strings.Join(lines, "\n"))
	}

	if state.Total > len(state.Rows) && len(state.Rows) > 0 {
		content.WriteString("\n")
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("%d of %d shown", len(state.Rows), state.Total)))
	}

	if state.Status != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.Status))
	} else if state.Selected > 0 {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(fmt.Sprintf("%d selected", state.Selected)))
	}

	if state.HelpView != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}
