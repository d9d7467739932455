// Package tui implements the interactive contact manager: a form pane
// for composing new contacts and a list pane mirroring the remote
// collection, with optimistic deletes. Separate from the plain CLI
// output path in cmd/contactdesk.
package tui

import (
	"context"

	"contactdesk/pkg/models"
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneForm Focus = iota // Form pane (compose a new contact).
	PaneList              // List pane (browse and delete contacts).
)

// ContactCreator submits a new contact draft. *client.Client satisfies it.
type ContactCreator interface {
	CreateContact(ctx context.Context, draft models.Draft) (models.Contact, error)
}

// --- tea.Msg types ---

// RefreshedMsg signals a roster refresh has settled.
type RefreshedMsg struct {
	Err error
}

// CreatedMsg carries the result of a ContactCreator.CreateContact call.
type CreatedMsg struct {
	Contact models.Contact
	Err     error
}

// DeletedMsg signals an optimistic delete has settled, including its
// follow-up refresh.
type DeletedMsg struct {
	ID  string
	Err error
}

// SubmitMsg signals the form passed validation and a create call
// should be dispatched. formState emits this on enter; Model.Update
// intercepts it and calls the ContactCreator.
type SubmitMsg struct {
	Draft models.Draft
}
