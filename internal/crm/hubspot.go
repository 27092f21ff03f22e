package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

type HubSpot struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewHubSpot(token, baseURL string, client *http.Client) *HubSpot {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = "https://api.hubapi.com"
	}
	return &HubSpot{token: token, baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (h *HubSpot) Name() string { return ProviderHubSpot }

// CreateContact posts to the CRM v3 contacts API. The questionnaire context is
// serialised into the "message" property.
func (h *HubSpot) CreateContact(ctx context.Context, c Contact) (Result, error) {
	properties := map[string]string{"lifecyclestage": "lead"}
	setIf(properties, "firstname", c.FirstName)
	setIf(properties, "lastname", c.LastName)
	setIf(properties, "email", c.Email)
	setIf(properties, "phone", c.Phone)
	setIf(properties, "company", c.Company)
	properties["message"] = marshalNote(contextNote{
		LeadCategory: c.LeadCategory,
		ICPScore:     c.ICPScore,
		Selections:   c.Selections,
		Notes:        c.Notes,
		Attachments:  c.Attachments,
	})

	body, err := json.Marshal(map[string]any{"properties": properties})
	if err != nil {
		return Result{}, fmt.Errorf("encode hubspot contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/crm/v3/objects/contacts", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("hubspot request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read hubspot response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &ProviderError{Provider: "HubSpot", StatusCode: resp.StatusCode, Body: string(data)}
	}

	parsed := gjson.ParseBytes(data)
	return Result{
		ID:  parsed.Get("id").String(),
		URL: parsed.Get("links.self").String(),
	}, nil
}

func setIf(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}
