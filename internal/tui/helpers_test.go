package tui

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"contactdesk/internal/roster"
	"contactdesk/pkg/models"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var errFake = errors.New("gateway unavailable")

// stripANSI removes color/style escape sequences so tests can assert
// on plain text.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// stubGateway implements roster.Gateway with swappable behavior.
type stubGateway struct {
	mu       sync.Mutex
	contacts []models.Contact
	listErr  error
	delErr   error
	listHook func(ctx context.Context) ([]models.Contact, error)
}

func (s *stubGateway) ListContacts(ctx context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	hook := s.listHook
	if hook != nil {
		s.mu.Unlock()
		return hook(ctx)
	}
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]models.Contact(nil), s.contacts...), nil
}

func (s *stubGateway) DeleteContact(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delErr != nil {
		return s.delErr
	}
	kept := s.contacts[:0]
	for _, c := range s.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.contacts = kept
	return nil
}

func (s *stubGateway) set(contacts []models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = contacts
}

func (s *stubGateway) setListHook(hook func(ctx context.Context) ([]models.Contact, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listHook = hook
}

// stubCreator implements ContactCreator.
type stubCreator struct {
	created []models.Draft
	err     error
}

func (s *stubCreator) CreateContact(ctx context.Context, draft models.Draft) (models.Contact, error) {
	if s.err != nil {
		return models.Contact{}, s.err
	}
	s.created = append(s.created, draft)
	return models.Contact{ID: "new-id", Name: draft.Name}, nil
}

func sampleContacts() []models.Contact {
	return []models.Contact{
		{ID: "a", Name: "Alice", Email: "alice@x.com", Phone: "5550001"},
		{ID: "b", Name: "Bob", Email: "bob@x.com", Phone: "5550002"},
		{ID: "c", Name: "Cara", Email: "cara@x.com", Phone: "5550003"},
	}
}

// newTestModel builds a model over a seeded roster, sized and with the
// initial refresh applied.
func newTestModel(t *testing.T, gw *stubGateway, creator *stubCreator) Model {
	t.Helper()
	m := NewModel(roster.NewList(gw), creator, NewNoticeLog())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if cmd := m.Init(); cmd != nil {
		updated, _ = m.Update(cmd())
		m = updated.(Model)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return keyRunes(s)
	}
}

// press applies a key to the model and returns it with any command.
func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyPress(key))
	return updated.(Model), cmd
}

// typeText feeds a string rune by rune into the focused input.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(keyRunes(string(r)))
		m = updated.(Model)
	}
	return m
}
