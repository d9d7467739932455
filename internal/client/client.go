// Package client is the HTTP gateway to the remote contact collection.
// It translates between local contact types and the server's wire
// format, and emits one user-visible notification per mutating call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contactdesk/pkg/models"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Notify  Notifier
}

func New(baseURL string, timeout time.Duration, notify Notifier) *Client {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Notify:  notify,
	}
}

// APIError is a non-2xx response from the server. Message carries the
// server-supplied "message" field when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

// userMessage picks the server-supplied message for the notification,
// falling back to a per-operation default for transport failures and
// bodies without a message field.
func userMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// contactDTO is the server's wire shape. The id arrives as either
// "_id" or "id" depending on the backing store.
type contactDTO struct {
	MongoID   string `json:"_id"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (d contactDTO) toContact() models.Contact {
	id := d.MongoID
	if id == "" {
		id = d.ID
	}
	return models.Contact{
		ID:        id,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Message:   d.Message,
		CreatedAt: parseTimestamp(d.CreatedAt),
	}
}

// parseTimestamp is lenient: an unparseable timestamp yields the zero
// time rather than failing the whole call.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (c *Client) sendRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
		}
		json.Unmarshal(respBody, &errBody)
		return respBody, &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	return respBody, nil
}

// ListContacts fetches the full collection. Failures notify the user;
// a successful list is silent. A cancelled fetch is also silent: the
// caller cancelled it on purpose and is not waiting for the result.
func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	respBody, err := c.sendRequest(ctx, http.MethodGet, "/api/contacts", nil)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.Notify.Error(userMessage(err, "Failed to fetch contacts"))
		}
		return nil, err
	}

	var dtos []contactDTO
	if err := json.Unmarshal(respBody, &dtos); err != nil {
		c.Notify.Error("Failed to fetch contacts")
		return nil, fmt.Errorf("client: decoding contact list: %w", err)
	}

	contacts := make([]models.Contact, 0, len(dtos))
	for _, dto := range dtos {
		contacts = append(contacts, dto.toContact())
	}
	return contacts, nil
}

// createPayload trims every field again before sending; a blank
// message is omitted entirely rather than sent as an empty string.
type createPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// CreateContact submits a draft and returns the stored contact with
// its server-assigned id and timestamp.
func (c *Client) CreateContact(ctx context.Context, draft models.Draft) (models.Contact, error) {
	payload := createPayload{
		Name:    strings.TrimSpace(draft.Name),
		Email:   strings.TrimSpace(draft.Email),
		Phone:   strings.TrimSpace(draft.Phone),
		Message: strings.TrimSpace(draft.Message),
	}

	respBody, err := c.sendRequest(ctx, http.MethodPost, "/api/contacts", payload)
	if err != nil {
		c.Notify.Error(userMessage(err, "Failed to add contact"))
		return models.Contact{}, err
	}

	var dto contactDTO
	if err := json.Unmarshal(respBody, &dto); err != nil {
		c.Notify.Error("Failed to add contact")
		return models.Contact{}, fmt.Errorf("client: decoding created contact: %w", err)
	}

	c.Notify.Success("Contact added successfully")
	return dto.toContact(), nil
}

// DeleteContact requests deletion by id. A repeated delete of an
// already-deleted id fails like any other failure; there is no retry.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	_, err := c.sendRequest(ctx, http.MethodDelete, "/api/contacts/"+url.PathEscape(id), nil)
	if err != nil {
		c.Notify.Error(userMessage(err, "Failed to delete contact"))
		return err
	}

	c.Notify.Success("Contact deleted")
	return nil
}
