package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/domain"
)

// RowRenderer draws one visible row. The control only hands out domain.Row
// values, so any presentation can be substituted.
type RowRenderer interface {
	RenderRow(row domain.Row) string
}

// RowRendererFunc adapts a plain function to RowRenderer
type RowRendererFunc func(row domain.Row) string

func (f RowRendererFunc) RenderRow(row domain.Row) string { return f(row) }

// IndicatorRenderer draws the cursor in front of the highlighted row and a
// blank of the same width elsewhere
type IndicatorRenderer struct {
	styles *Styles
	glyph  string
}

// NewIndicatorRenderer creates an indicator renderer
func NewIndicatorRenderer(styles *Styles, glyph string) *IndicatorRenderer {
	return &IndicatorRenderer{styles: styles, glyph: glyph}
}

func (r *IndicatorRenderer) RenderRow(row domain.Row) string {
	if !row.Highlighted {
		return strings.Repeat(" ", lipgloss.Width(r.glyph)) + " "
	}
	return r.styles.Indicator.Render(r.glyph) + " "
}

// CheckBoxRenderer draws the selection state of the row
type CheckBoxRenderer struct {
	styles    *Styles
	checked   string
	unchecked string
}

// NewCheckBoxRenderer creates a checkbox renderer
func NewCheckBoxRenderer(styles *Styles, checked, unchecked string) *CheckBoxRenderer {
	return &CheckBoxRenderer{styles: styles, checked: checked, unchecked: unchecked}
}

func (r *CheckBoxRenderer) RenderRow(row domain.Row) string {
	glyph := r.unchecked
	if row.Selected {
		glyph = r.checked
	}
	return r.styles.CheckBox.Render(glyph) + " "
}

// LabelRenderer draws the item label, colored when highlighted
type LabelRenderer struct {
	styles *Styles
}

// NewLabelRenderer creates a label renderer
func NewLabelRenderer(styles *Styles) *LabelRenderer {
	return &LabelRenderer{styles: styles}
}

func (r *LabelRenderer) RenderRow(row domain.Row) string {
	if row.Highlighted {
		return r.styles.LabelHighlighted.Render(row.Item.Label)
	}
	return r.styles.Label.Render(row.Item.Label)
}

// CompositeRenderer concatenates the output of its parts, left to right
type CompositeRenderer []RowRenderer

func (c CompositeRenderer) RenderRow(row domain.Row) string {
	var b strings.Builder
	for _, part := range c {
		b.WriteString(part.RenderRow(row))
	}
	return b.String()
}

// DefaultRowRenderer returns indicator, checkbox and label, in that order
func DefaultRowRenderer(styles *Styles, glyphs Glyphs) RowRenderer {
	glyphs = glyphs.Merge(DefaultGlyphs())
	return CompositeRenderer{
		NewIndicatorRenderer(styles, glyphs.Cursor),
		NewCheckBoxRenderer(styles, glyphs.Checked, glyphs.Unchecked),
		NewLabelRenderer(styles),
	}
}
