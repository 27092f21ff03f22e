// Package crm creates contacts in the configured CRM.
package crm

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	ProviderHubSpot   = "hubspot"
	ProviderPipedrive = "pipedrive"
	ProviderLocal     = "local"
)

// Attachment is the metadata of a file sent with a contact.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Contact is what every provider receives.
type Contact struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Company      string
	Notes        string
	LeadCategory string
	ICPScore     *int
	Selections   json.RawMessage
	Attachments  []Attachment
}

// Result identifies the created contact.
type Result struct {
	ID  string
	URL string
}

type Provider interface {
	Name() string
	CreateContact(ctx context.Context, c Contact) (Result, error)
}

// ProviderError is a non-2xx answer from a CRM API.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// contextNote is the JSON blob attached to a contact in providers that lack
// dedicated fields for the questionnaire.
type contextNote struct {
	Company      string          `json:"company,omitempty"`
	LeadCategory string          `json:"leadCategory,omitempty"`
	ICPScore     *int            `json:"icpScore,omitempty"`
	Selections   json.RawMessage `json:"selections,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Attachments  []Attachment    `json:"attachments,omitempty"`
}

func marshalNote(n contextNote) string {
	data, err := json.Marshal(n)
	if err != nil {
		return "{}"
	}
	return string(data)
}
