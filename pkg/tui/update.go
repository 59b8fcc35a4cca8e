package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/store"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.SetWidth(m.editorWidth() - 4)
		m.content.SetHeight(max(m.height-14, 4))
		return m, nil

	case quietMsg:
		m.sess.AutoSave()
		m.refresh()
		return m, tea.Batch(m.drainNotes(), m.waitQuiet())

	case slotChangedMsg:
		switch store.Event(msg).Slot {
		case store.SlotEntries:
			// Another process rewrote the collection; reload but leave
			// the in-flight draft alone.
			if err := m.svc.Load(m.ctx); err == nil {
				m.refresh()
			}
		case store.SlotTheme:
			if theme, err := m.persistence.Theme(); err == nil {
				m.theme = theme
			}
		}
		return m, m.waitEvent()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirmingDelete {
		return m.handleDeleteConfirm(key)
	}

	// Global editor chords work regardless of focus.
	switch key {
	case "ctrl+n":
		m.sess.NewEntry()
		m.syncDraftInputs()
		m.focus = focusTitle
		return m, m.focusCmd()
	case "ctrl+s":
		if _, err := m.sess.Save(); err == nil {
			m.refresh()
		}
		return m, m.drainNotes()
	case "ctrl+x":
		m.confirmingDelete = true
		m.status = "Delete this entry? (y/n)"
		m.statusErr = false
		return m, nil
	case "ctrl+o":
		m.sess.SelectMood(nextMood(m.sess.Mood))
		m.refresh()
		return m, m.drainNotes()
	case "ctrl+t":
		m.theme = m.theme.Toggle()
		_ = m.persistence.WriteTheme(m.theme)
		return m, nil
	case "tab":
		m.focus = m.nextFocus()
		return m, m.focusCmd()
	case "esc":
		m.focus = focusList
		return m, m.focusCmd()
	}

	switch m.focus {
	case focusList:
		return m.handleListKey(key)
	case focusSearch:
		if key == "enter" {
			m.focus = focusList
			return m, m.focusCmd()
		}
	case focusTags:
		if key == "enter" {
			if tag := m.tags.Value(); tag != "" {
				if m.sess.AddTag(tag) {
					m.tags.SetValue("")
					m.refresh()
				}
			}
			return m, m.drainNotes()
		}
	}

	return m.updateInputs(msg)
}

func (m model) handleListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.visible) {
			m.sess.LoadEntry(m.visible[m.cursor])
			m.syncDraftInputs()
			m.focus = focusContent
			return m, m.focusCmd()
		}
	case "/":
		m.focus = focusSearch
		return m, m.focusCmd()
	case "n":
		m.sess.NewEntry()
		m.syncDraftInputs()
		m.focus = focusTitle
		return m, m.focusCmd()
	}
	return m, nil
}

func (m model) handleDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	m.confirmingDelete = false
	m.status = ""
	switch key {
	case "y", "Y":
		if err := m.sess.Delete(); err == nil {
			m.syncDraftInputs()
			m.focus = focusList
		}
		m.refresh()
		return m, tea.Batch(m.drainNotes(), m.focusCmd())
	default:
		return m, nil
	}
}

// updateInputs feeds the message to the focused widget and mirrors its value
// into the session draft, which owns the auto-save policy.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		m.refresh()
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
		if m.title.Value() != m.sess.Title {
			m.sess.SetTitle(m.title.Value())
		}
	case focusContent:
		m.content, cmd = m.content.Update(msg)
		if m.content.Value() != m.sess.Content {
			m.sess.SetContent(m.content.Value())
		}
	case focusTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

// syncDraftInputs pushes session draft fields into the widgets after a load,
// new, or delete transition.
func (m *model) syncDraftInputs() {
	m.title.SetValue(m.sess.Title)
	m.content.SetValue(m.sess.Content)
	m.tags.SetValue("")
}

func (m model) nextFocus() focusArea {
	switch m.focus {
	case focusList:
		return focusTitle
	case focusTitle:
		return focusContent
	case focusContent:
		return focusTags
	default:
		return focusList
	}
}

func (m *model) focusCmd() tea.Cmd {
	m.search.Blur()
	m.title.Blur()
	m.tags.Blur()
	m.content.Blur()

	switch m.focus {
	case focusSearch:
		return m.search.Focus()
	case focusTitle:
		return m.title.Focus()
	case focusTags:
		return m.tags.Focus()
	case focusContent:
		return m.content.Focus()
	}
	return nil
}

func nextMood(current entry.Mood) entry.Mood {
	moods := entry.Moods()
	if current == entry.MoodNone {
		return moods[0]
	}
	for i, mood := range moods {
		if mood == current {
			if i == len(moods)-1 {
				return entry.MoodNone
			}
			return moods[i+1]
		}
	}
	return entry.MoodNone
}
