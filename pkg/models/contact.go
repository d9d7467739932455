package models

import "time"

// Contact is a persisted contact record as seen by clients. ID and
// CreatedAt are assigned by the server and are never client-supplied.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft is an in-progress contact being composed in the UI. It carries
// no ID or CreatedAt; those exist only after the server accepts it.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// FieldErrors maps a field name (name, email, phone) to a
// human-readable violation message.
type FieldErrors map[string]string
