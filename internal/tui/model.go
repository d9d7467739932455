package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contactdesk/internal/roster"
)

// noticeBarHeight is the number of lines reserved below the panes for
// the notice line and the help bar.
const noticeBarHeight = 2

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model: a form pane on the left, the
// contact list on the right, gateway notices and help at the bottom.
type Model struct {
	form    formState
	list    listState
	focus   Focus
	width   int
	height  int
	help    help.Model
	roster  *roster.List
	creator ContactCreator
	notices *NoticeLog

	formKeys formKeys
	listKeys listKeys
}

// NewModel creates a Model over a roster list and a contact creator.
// notices should be the same NoticeLog the gateway client notifies.
func NewModel(r *roster.List, creator ContactCreator, notices *NoticeLog) Model {
	return Model{
		form:     newFormState(),
		list:     newListState(),
		focus:    PaneForm,
		help:     help.New(),
		roster:   r,
		creator:  creator,
		notices:  notices,
		formKeys: FormKeyMap(),
		listKeys: ListKeyMap(),
	}
}

// Init kicks off the initial list load.
func (m Model) Init() tea.Cmd {
	return refreshCmd(m.roster)
}

// refreshCmd re-fetches the authoritative list into the roster.
func refreshCmd(r *roster.List) tea.Cmd {
	return func() tea.Msg {
		return RefreshedMsg{Err: r.Refresh(context.Background())}
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RefreshedMsg:
		err := msg.Err
		if errors.Is(err, roster.ErrStale) || errors.Is(err, context.Canceled) {
			// A newer refresh or a delete superseded this one; the
			// winning operation owns the pane state.
			err = nil
		}
		m.list = m.list.applyRefresh(err)
		m.list = m.list.clampCursor(len(m.roster.Snapshot()))
		return m, nil

	case SubmitMsg:
		return m, createCmd(m.creator, msg)

	case CreatedMsg:
		m.form = m.form.applyCreated(msg)
		if msg.Err == nil {
			return m, refreshCmd(m.roster)
		}
		return m, nil

	case DeletedMsg:
		if msg.Err == nil {
			// The settle refresh already replaced the list; a stale
			// error from a superseded refresh must not outlive it.
			m.list.err = nil
			m.list.loading = false
		}
		m.list = m.list.clampCursor(len(m.roster.Snapshot()))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func createCmd(creator ContactCreator, msg SubmitMsg) tea.Cmd {
	return func() tea.Msg {
		contact, err := creator.CreateContact(context.Background(), msg.Draft)
		return CreatedMsg{Contact: contact, Err: err}
	}
}

// handleKey routes keys to the focused pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.focus == PaneForm {
		if msg.String() == "ctrl+l" {
			m.focus = PaneList
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg, m.formKeys)
		return m, cmd
	}

	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snapshot := m.roster.Snapshot()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "ctrl+l":
		m.focus = PaneForm
		return m, nil

	case "up", "k":
		m.list = m.list.moveCursor(-1, len(snapshot))
		return m, nil

	case "down", "j":
		m.list = m.list.moveCursor(1, len(snapshot))
		return m, nil

	case "r":
		m.list.loading = true
		m.list.err = nil
		return m, refreshCmd(m.roster)

	case "d", "x":
		contact, ok := m.list.selected(snapshot)
		if !ok || m.roster.Deleting(contact.ID) {
			return m, nil
		}
		// Begin phase runs synchronously so the next render already
		// shows the contact gone.
		pending := m.roster.StartDelete(contact.ID)
		m.list = m.list.clampCursor(len(m.roster.Snapshot()))
		return m, func() tea.Msg {
			return DeletedMsg{ID: contact.ID, Err: pending.Wait(context.Background())}
		}
	}

	return m, nil
}

// View renders the two panes with the notice and help lines below.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	formWidth, listWidth := PaneWidths(m.width)
	contentHeight := m.height - borderChrome - noticeBarHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var formStyle, listStyle lipgloss.Style
	if m.focus == PaneForm {
		formStyle, listStyle = FocusedBorder(), UnfocusedBorder()
	} else {
		formStyle, listStyle = UnfocusedBorder(), FocusedBorder()
	}

	formPane := formStyle.
		Width(formWidth - borderChrome).
		Height(contentHeight).
		Render(m.form.View(formWidth - borderChrome))
	listPane := listStyle.
		Width(listWidth - borderChrome).
		Height(contentHeight).
		Render(m.list.View(m.roster.Snapshot(), m.roster.Deleting, listWidth-borderChrome, contentHeight))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, formPane, listPane)

	var helpView string
	if m.focus == PaneForm {
		helpView = m.help.View(m.formKeys)
	} else {
		helpView = m.help.View(m.listKeys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, panes, m.noticeLine(), helpView)
}

// noticeLine renders the most recent gateway notification.
func (m Model) noticeLine() string {
	n := m.notices.Latest()
	if n == nil {
		return ""
	}
	if n.Level == NoticeError {
		return ErrorText().Render("✗ " + n.Message)
	}
	return SuccessText().Render("✓ " + n.Message)
}
