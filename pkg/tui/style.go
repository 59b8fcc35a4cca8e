package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/jot/pkg/store"
)

const (
	statusTTL    = 3 * time.Second
	previewWidth = 42
)

// palette is the theme-dependent color set. Light and dark mirror the two
// persisted theme preferences.
type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	faint     lipgloss.Color
	selection lipgloss.Color
	errText   lipgloss.Color
	okText    lipgloss.Color
}

func paletteFor(t store.Theme) palette {
	if t == store.ThemeDark {
		return palette{
			accent:    lipgloss.Color("#89ddff"),
			text:      lipgloss.Color("#ffffff"),
			faint:     lipgloss.Color("#6b7089"),
			selection: lipgloss.Color("#353b52"),
			errText:   lipgloss.Color("#e61f44"),
			okText:    lipgloss.Color("#acfab4"),
		}
	}
	return palette{
		accent:    lipgloss.Color("#005f87"),
		text:      lipgloss.Color("#1c1c1c"),
		faint:     lipgloss.Color("#8a8a8a"),
		selection: lipgloss.Color("#d7e4f2"),
		errText:   lipgloss.Color("#af0000"),
		okText:    lipgloss.Color("#007700"),
	}
}

type styles struct {
	header   lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	faint    lipgloss.Style
	label    lipgloss.Style
	statusOK lipgloss.Style
	statusNo lipgloss.Style
}

func stylesFor(p palette) styles {
	border := lipgloss.RoundedBorder()
	return styles{
		header: lipgloss.NewStyle().Bold(true).
			Foreground(p.accent).Padding(0, 1),
		pane: lipgloss.NewStyle().Border(border).
			BorderForeground(p.faint).Padding(0, 1),
		focused: lipgloss.NewStyle().Border(border).
			BorderForeground(p.accent).Padding(0, 1),
		item:     lipgloss.NewStyle().Foreground(p.text),
		selected: lipgloss.NewStyle().Foreground(p.text).Background(p.selection).Bold(true),
		faint:    lipgloss.NewStyle().Foreground(p.faint),
		label:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		statusOK: lipgloss.NewStyle().Foreground(p.okText),
		statusNo: lipgloss.NewStyle().Foreground(p.errText).Bold(true),
	}
}
