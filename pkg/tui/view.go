package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/jot/pkg/session"
)

func (m model) listWidth() int {
	if m.width <= 0 {
		return 36
	}
	return m.width / 3
}

func (m model) editorWidth() int {
	if m.width <= 0 {
		return 60
	}
	return m.width - m.listWidth() - 4
}

func (m model) View() string {
	p := paletteFor(m.theme)
	s := stylesFor(p)

	header := s.header.Render("jot — personal journal")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.listView(s), m.editorView(s))
	status := m.statusView(s)
	help := s.faint.Render(
		"n new · enter open · / search · ctrl+s save · ctrl+x delete · " +
			"ctrl+o mood · ctrl+t theme · tab focus · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, help)
}

func (m model) listView(s styles) string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(s.faint.Render("No entries yet. Start by creating a new one!"))
	}
	for i, e := range m.visible {
		line := fmt.Sprintf("%s  %s", e.Date, e.Title)
		if preview := e.Preview(previewWidth); preview != "" {
			line += "\n" + s.faint.Render("    "+preview)
		}
		style := s.item
		if i == m.cursor {
			style = s.selected
		}
		if m.sess.ActiveID() == e.ID {
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	pane := s.pane
	if m.focus == focusList || m.focus == focusSearch {
		pane = s.focused
	}
	return pane.Width(m.listWidth()).Render(b.String())
}

func (m model) editorView(s styles) string {
	var b strings.Builder

	if m.sess.State() == session.Empty {
		b.WriteString(s.faint.Render("Select an entry or press n to start a new one."))
		return s.pane.Width(m.editorWidth()).Render(b.String())
	}

	b.WriteString(s.label.Render("Title "))
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(s.label.Render("Date  "))
	b.WriteString(m.sess.Date.String())
	b.WriteString("\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\n")

	b.WriteString(s.label.Render("Tags  "))
	if len(m.sess.Tags) > 0 {
		b.WriteString(strings.Join(m.sess.Tags, ", "))
		b.WriteString("  ")
	}
	b.WriteString(m.tags.View())
	b.WriteString("\n")

	b.WriteString(s.label.Render("Mood  "))
	b.WriteString(m.sess.Mood.String())
	b.WriteString("\n")

	words := m.sess.WordCount()
	b.WriteString(s.faint.Render(fmt.Sprintf("%d words · %s read",
		words, readingLabel(m.sess.ReadingTime()))))

	pane := s.pane
	switch m.focus {
	case focusTitle, focusContent, focusTags:
		pane = s.focused
	}
	return pane.Width(m.editorWidth()).Render(b.String())
}

func (m model) statusView(s styles) string {
	if m.status == "" {
		return " "
	}
	if m.statusErr {
		return s.statusNo.Render(m.status)
	}
	return s.statusOK.Render(m.status)
}

func readingLabel(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d/time.Minute))
}
