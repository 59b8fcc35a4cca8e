// Package tui is the interactive journal surface: an entry list with live
// search on the left, the editor bound to a session on the right, and a
// transient status bar for notifications.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/session"
	"tableflip.dev/jot/pkg/store"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusTitle
	focusContent
	focusTags
)

type (
	quietMsg       struct{}
	slotChangedMsg store.Event
	clearStatusMsg struct{ seq int }
)

type model struct {
	ctx         context.Context
	persistence store.Persistence
	svc         *journal.Service
	sess        *session.Session

	theme store.Theme

	visible []*entry.Entry
	cursor  int
	focus   focusArea

	search  textinput.Model
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model

	status    string
	statusErr bool
	statusSeq int

	confirmingDelete bool

	notes  *[]session.Notification
	quiet  chan struct{}
	events <-chan store.Event

	width  int
	height int
}

// Run starts the TUI against the given persistence and blocks until exit.
func Run(ctx context.Context, p store.Persistence) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	svc := &journal.Service{Persistence: p}
	if err := svc.Load(ctx); err != nil {
		return err
	}
	theme, err := p.Theme()
	if err != nil {
		return err
	}

	notes := &[]session.Notification{}
	quiet := make(chan struct{}, 1)
	sess := &session.Session{
		Journal: svc,
		Policy:  session.DefaultPolicy(),
		Notify:  func(n session.Notification) { *notes = append(*notes, n) },
		OnQuiet: func() {
			select {
			case quiet <- struct{}{}:
			default:
			}
		},
	}
	defer sess.Close()

	// The UI keeps working without a watcher; other processes just won't
	// refresh it.
	events, err := p.Watch(ctx)
	if err != nil {
		events = nil
	}

	m := newModel(ctx, p, svc, sess, theme, notes, quiet, events)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newModel(ctx context.Context, p store.Persistence, svc *journal.Service,
	sess *session.Session, theme store.Theme, notes *[]session.Notification,
	quiet chan struct{}, events <-chan store.Event) model {

	search := textinput.New()
	search.Placeholder = "search entries"
	search.Prompt = "/ "
	search.CharLimit = 128

	title := textinput.New()
	title.Placeholder = "Entry title"
	title.CharLimit = 256

	tags := textinput.New()
	tags.Placeholder = "add tag, enter to commit"
	tags.CharLimit = 64

	content := textarea.New()
	content.Placeholder = "Write your thoughts..."

	m := model{
		ctx:         ctx,
		persistence: p,
		svc:         svc,
		sess:        sess,
		theme:       theme,
		search:      search,
		title:       title,
		tags:        tags,
		content:     content,
		notes:       notes,
		quiet:       quiet,
		events:      events,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitQuiet(), m.waitEvent())
}

func (m model) waitQuiet() tea.Cmd {
	return func() tea.Msg {
		<-m.quiet
		return quietMsg{}
	}
}

func (m model) waitEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return slotChangedMsg(ev)
	}
}

// refresh recomputes the visible list from the store and the search query.
func (m *model) refresh() {
	m.visible = journal.Filter(m.svc.List(), m.search.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// drainNotes moves the latest session notification into the status bar and
// schedules its dismissal.
func (m *model) drainNotes() tea.Cmd {
	if len(*m.notes) == 0 {
		return nil
	}
	last := (*m.notes)[len(*m.notes)-1]
	*m.notes = (*m.notes)[:0]
	m.status = last.Text
	m.statusErr = last.Err
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
