package contact

import (
	"encoding/json"

	"taxsite/internal/crm"
)

// Payload is a contact submission as sent by the site's forms.
type Payload struct {
	FirstName    string          `json:"firstName,omitempty"`
	LastName     string          `json:"lastName,omitempty"`
	Email        string          `json:"email,omitempty" validate:"required"`
	Phone        string          `json:"phone,omitempty"`
	Company      string          `json:"company,omitempty"`
	JobTitle     string          `json:"jobTitle,omitempty"`
	City         string          `json:"city,omitempty"`
	State        string          `json:"state,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	LeadCategory string          `json:"leadCategory,omitempty"`
	ICPScore     *int            `json:"icpScore,omitempty"`
	Selections   json.RawMessage `json:"selections,omitempty"`

	PreferredMeetingLocal       string `json:"preferredMeetingLocal,omitempty"`
	PreferredMeetingStartISO    string `json:"preferredMeetingStartISO,omitempty"`
	PreferredMeetingEndISO      string `json:"preferredMeetingEndISO,omitempty"`
	PreferredMeetingDurationMin string `json:"preferredMeetingDurationMin,omitempty"`
	PreferredMeetingTimezone    string `json:"preferredMeetingTimezone,omitempty"`

	Attachments []crm.Attachment `json:"attachments,omitempty"`
}

func (p *Payload) toContact() crm.Contact {
	return crm.Contact{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		Company:      p.Company,
		Notes:        p.Notes,
		LeadCategory: p.LeadCategory,
		ICPScore:     p.ICPScore,
		Selections:   p.Selections,
		Attachments:  p.Attachments,
	}
}

// AttachmentSummary is the name and size echoed back for each attachment.
type AttachmentSummary struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Result is the response of a successful submission.
type Result struct {
	OK           bool                `json:"ok"`
	Message      string              `json:"message"`
	Provider     string              `json:"provider,omitempty"`
	ContactID    string              `json:"contactId,omitempty"`
	URL          string              `json:"url,omitempty"`
	Attachments  []AttachmentSummary `json:"attachments"`
	UploadedURLs []string            `json:"uploadedUrls"`
}
