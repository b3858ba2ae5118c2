package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	StarFilled = "★"
	StarEmpty  = "☆"
)

// Row is one catalog entry as shown in a list
type Row struct {
	Title     string
	Summary   string // single-line plain text of the body
	Favorited bool
}

// Star returns the favourite indicator for the row
func (r Row) Star() string {
	if r.Favorited {
		return StarFilled
	}
	return StarEmpty
}

// EntryRenderer handles rendering of list rows
type EntryRenderer struct {
	styles *Styles
}

// NewEntryRenderer creates a new entry renderer
func NewEntryRenderer(styles *Styles) *EntryRenderer {
	return &EntryRenderer{styles: styles}
}

// RenderRow renders a single row clipped to width
func (r *EntryRenderer) RenderRow(row Row, isSelected bool, width int) string {
	starStyle := r.styles.StarEmpty
	if row.Favorited {
		starStyle = r.styles.Star
	}
	titleStyle := r.styles.EntryTitle
	summaryStyle := r.styles.Summary

	if isSelected {
		bg := r.styles.SelectionBg.GetBackground()
		starStyle = starStyle.Background(bg)
		titleStyle = titleStyle.Background(bg)
		summaryStyle = summaryStyle.Background(bg)
	}

	gap := " "
	if isSelected {
		gap = r.styles.SelectionBg.Render(" ")
	}

	line := starStyle.Render(row.Star()) + gap + titleStyle.Render(row.Title)
	if row.Summary != "" {
		line += gap + gap + summaryStyle.Render(row.Summary)
	}

	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// RenderList renders the visible window of rows with scroll indicators.
// selected is -1 when the list does not have focus.
func (r *EntryRenderer) RenderList(rows []Row, selected, offset, height, width int) string {
	if height < 1 {
		height = 1
	}
	if offset < 0 {
		offset = 0
	}

	var lines []string
	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	end := offset + height
	if end > len(rows) {
		end = len(rows)
	}
	for i := offset; i < end; i++ {
		lines = append(lines, r.RenderRow(rows[i], i == selected, width))
	}

	if below := len(rows) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}
