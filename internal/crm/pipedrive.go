package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

type Pipedrive struct {
	token   string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewPipedrive(token, baseURL string, client *http.Client) *Pipedrive {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = "https://api.pipedrive.com/v1"
	}
	return &Pipedrive{token: token, baseURL: strings.TrimSuffix(baseURL, "/"), client: client, now: time.Now}
}

func (p *Pipedrive) Name() string { return ProviderPipedrive }

type pipedrivePerson struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	VisibleTo int    `json:"visible_to"`
	AddTime   string `json:"add_time"`
	Note      string `json:"note"`
}

// CreateContact creates a person. Pipedrive returns no browser URL, so the
// result URL stays empty.
func (p *Pipedrive) CreateContact(ctx context.Context, c Contact) (Result, error) {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		name = c.Email
	}

	body, err := json.Marshal(pipedrivePerson{
		Name:      name,
		Email:     c.Email,
		Phone:     c.Phone,
		VisibleTo: 3,
		AddTime:   p.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Note: marshalNote(contextNote{
			Company:      c.Company,
			Notes:        c.Notes,
			LeadCategory: c.LeadCategory,
			ICPScore:     c.ICPScore,
			Selections:   c.Selections,
			Attachments:  c.Attachments,
		}),
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode pipedrive person: %w", err)
	}

	endpoint := p.baseURL + "/persons?api_token=" + url.QueryEscape(p.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("pipedrive request: %w", redactToken(err, p.token))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read pipedrive response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &ProviderError{Provider: "Pipedrive", StatusCode: resp.StatusCode, Body: string(data)}
	}

	id := gjson.GetBytes(data, "data.id")
	if !id.Exists() || id.Type == gjson.Null {
		return Result{}, nil
	}
	return Result{ID: id.String()}, nil
}

// redactToken keeps the api_token query parameter out of logged errors.
func redactToken(err error, token string) error {
	if token == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), url.QueryEscape(token), "REDACTED")
	return &redactedError{msg: msg, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
