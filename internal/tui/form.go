package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"contactdesk/internal/validate"
	"contactdesk/pkg/models"
)

// Form field order. Message is last and optional.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Message"}

// fieldKeys maps input index to the validator's field key; the message
// field has none because it is never validated.
var fieldKeys = [fieldCount]string{validate.FieldName, validate.FieldEmail, validate.FieldPhone, ""}

// formState manages the draft inputs, touched tracking, and inline
// validation for the form pane.
type formState struct {
	inputs     [fieldCount]textinput.Model
	focused    int
	touched    map[string]bool
	errors     models.FieldErrors
	submitting bool
}

func newFormState() formState {
	fs := formState{
		touched: make(map[string]bool),
		errors:  models.FieldErrors{},
	}
	placeholders := [fieldCount]string{
		"Enter full name",
		"Enter email address",
		"Enter phone number",
		"Enter optional message...",
	}
	for i := range fs.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = ""
		fs.inputs[i] = in
	}
	fs.inputs[fieldName].Focus()
	return fs
}

// draft builds the current working draft from the inputs.
func (fs formState) draft() models.Draft {
	return models.Draft{
		Name:    fs.inputs[fieldName].Value(),
		Email:   fs.inputs[fieldEmail].Value(),
		Phone:   fs.inputs[fieldPhone].Value(),
		Message: fs.inputs[fieldMessage].Value(),
	}
}

// canSubmit mirrors the submit affordance: every required field filled
// and no validation errors.
func (fs formState) canSubmit() bool {
	d := fs.draft()
	filled := strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.Phone) != ""
	return filled && validate.Valid(validate.Draft(d))
}

// Update processes key messages for the form pane.
func (fs formState) Update(msg tea.KeyMsg, keys formKeys) (formState, tea.Cmd) {
	if fs.submitting {
		return fs, nil
	}

	switch msg.String() {
	case "tab", "down":
		return fs.moveFocus(1), nil
	case "shift+tab", "up":
		return fs.moveFocus(-1), nil
	case "enter":
		if fs.focused < fieldMessage {
			return fs.moveFocus(1), nil
		}
		return fs.submit()
	}

	// Everything else edits the focused input. A change marks the
	// field touched and revalidates the whole draft.
	before := fs.inputs[fs.focused].Value()
	var cmd tea.Cmd
	fs.inputs[fs.focused], cmd = fs.inputs[fs.focused].Update(msg)
	if fs.inputs[fs.focused].Value() != before {
		if key := fieldKeys[fs.focused]; key != "" {
			fs.touched[key] = true
		}
		fs.errors = validate.Draft(fs.draft())
	}
	return fs, cmd
}

func (fs formState) moveFocus(delta int) formState {
	fs.inputs[fs.focused].Blur()
	fs.focused = (fs.focused + delta + fieldCount) % fieldCount
	fs.inputs[fs.focused].Focus()
	return fs
}

// submit marks every field touched, revalidates, and either blocks
// (leaving errors visible) or emits a SubmitMsg with the draft.
func (fs formState) submit() (formState, tea.Cmd) {
	for _, key := range fieldKeys {
		if key != "" {
			fs.touched[key] = true
		}
	}
	fs.errors = validate.Draft(fs.draft())
	if !validate.Valid(fs.errors) {
		return fs, nil
	}

	fs.submitting = true
	draft := fs.draft()
	return fs, func() tea.Msg {
		return SubmitMsg{Draft: draft}
	}
}

// applyCreated settles a create call. Success resets the draft so the
// user can compose the next contact; failure keeps it for a retry.
func (fs formState) applyCreated(msg CreatedMsg) formState {
	fs.submitting = false
	if msg.Err != nil {
		return fs
	}
	for i := range fs.inputs {
		fs.inputs[i].SetValue("")
	}
	fs.touched = make(map[string]bool)
	fs.errors = models.FieldErrors{}
	fs.inputs[fs.focused].Blur()
	fs.focused = fieldName
	fs.inputs[fieldName].Focus()
	return fs
}

// View renders the form pane content for the given width.
func (fs formState) View(width int) string {
	var b strings.Builder
	b.WriteString("Add New Contact\n\n")

	for i := range fs.inputs {
		label := fieldLabels[i]
		if fieldKeys[i] != "" {
			label += " *"
		}
		b.WriteString(label + "\n")

		in := fs.inputs[i]
		in.Width = width - 2
		b.WriteString(in.View() + "\n")

		if key := fieldKeys[i]; key != "" && fs.touched[key] {
			if msg, ok := fs.errors[key]; ok {
				b.WriteString(ErrorText().Render(msg) + "\n")
			}
		}
		b.WriteString("\n")
	}

	switch {
	case fs.submitting:
		b.WriteString(DimText().Render("Adding contact..."))
	case fs.canSubmit():
		b.WriteString(DimText().Render("enter on the message field submits"))
	}

	return b.String()
}
