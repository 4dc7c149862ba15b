package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-timeline/timeline"
)

// renderedRow is one event prepared for the list pane.
type renderedRow struct {
	cols          []string
	originalIndex int // source line, not a unique id
}

func newRenderedRow(r *timeline.Record, cols []ColumnMeta) renderedRow {
	row := renderedRow{cols: make([]string, len(cols)), originalIndex: r.Line}
	for i, c := range cols {
		row.cols[i] = flatten(c.value(r))
	}
	return row
}

// flatten keeps list rows on one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (r *renderedRow) Join(sep string) string {
	return strings.Join(r.cols, sep)
}

func (r *renderedRow) String() string {
	return r.Join(" | ")
}

// Render lays the cells out at the column widths, truncating each with an
// ellipsis. highlight, when set, decorates the truncated cell text.
func (r *renderedRow) Render(style lipgloss.Style, colsMeta []ColumnMeta, highlight func(string) string) string {
	rendered := make([]string, 0, len(r.cols))
	for i, text := range r.cols {
		if i >= len(colsMeta) {
			break
		}
		meta := colsMeta[i]
		if meta.Width <= 0 {
			continue
		}
		inner := max(0, meta.Width-style.GetHorizontalPadding())
		text = truncate.StringWithTail(text, uint(inner), "…")
		if highlight != nil {
			text = highlight(text)
		}
		rendered = append(rendered, style.Width(meta.Width).MaxHeight(1).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// eventClipboardText is what the copy key puts on the clipboard: every
// non-empty field, one "Name: value" per line.
func eventClipboardText(r *timeline.Record) string {
	var b strings.Builder
	for _, d := range r.Details() {
		fmt.Fprintf(&b, "%s: %s\n", d.Name, d.Value)
	}
	return b.String()
}
