// Package webhook mirrors contact submissions to the automation webhook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"time"

	"go.uber.org/zap"

	"taxsite/internal/storage/blob"
)

// Context describes what happened to a submission before it was forwarded.
type Context struct {
	Provider     string   `json:"provider,omitempty"`
	ContactID    string   `json:"contactId,omitempty"`
	CRMURL       string   `json:"crmUrl,omitempty"`
	UploadedURLs []string `json:"uploadedUrls"`
	ReceivedAt   string   `json:"receivedAt"`
}

// NewContext stamps the context with the receive time in ISO-8601 UTC.
func NewContext(provider, contactID, crmURL string, uploaded []string, at time.Time) Context {
	if uploaded == nil {
		uploaded = []string{}
	}
	return Context{
		Provider:     provider,
		ContactID:    contactID,
		CRMURL:       crmURL,
		UploadedURLs: uploaded,
		ReceivedAt:   at.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

// StatusError is a non-2xx answer from the webhook.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook error %d: %s", e.StatusCode, e.Body)
}

type Forwarder struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

func NewForwarder(url string, client *http.Client, log *zap.Logger) *Forwarder {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Forwarder{url: url, client: client, log: log}
}

// ForwardJSON posts the submission body with the context keys merged in.
// Context keys win; an empty context value removes the key from the body.
func (f *Forwarder) ForwardJSON(ctx context.Context, body map[string]any, wc Context) error {
	merged := make(map[string]any, len(body)+5)
	for k, v := range body {
		merged[k] = v
	}
	setOrDelete(merged, "provider", wc.Provider)
	setOrDelete(merged, "contactId", wc.ContactID)
	setOrDelete(merged, "crmUrl", wc.CRMURL)
	merged["uploadedUrls"] = wc.UploadedURLs
	merged["receivedAt"] = wc.ReceivedAt

	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode webhook body: %w", err)
	}
	return f.post(ctx, "application/json", bytes.NewReader(data))
}

// ForwardMultipart rebuilds the form: every scalar field in name order, each
// file under "attachments", then the context as a JSON "context" field.
// Incoming "attachments" and "context" values are not passed through.
func (f *Forwarder) ForwardMultipart(ctx context.Context, fields map[string][]string, files []blob.File, wc Context) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "attachments" || k == "context" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range fields[k] {
			if err := w.WriteField(k, v); err != nil {
				return fmt.Errorf("write field %s: %w", k, err)
			}
		}
	}

	for _, file := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="attachments"; filename=%q`, file.Name))
		ct := file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return fmt.Errorf("create part %s: %w", file.Name, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("write part %s: %w", file.Name, err)
		}
	}

	ctxJSON, err := json.Marshal(wc)
	if err != nil {
		return fmt.Errorf("encode webhook context: %w", err)
	}
	if err := w.WriteField("context", string(ctxJSON)); err != nil {
		return fmt.Errorf("write context: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	return f.post(ctx, w.FormDataContentType(), &buf)
}

func (f *Forwarder) post(ctx context.Context, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	f.log.Debug("webhook forwarded", zap.Int("status", resp.StatusCode))
	return nil
}

func setOrDelete(m map[string]any, key, value string) {
	if value == "" {
		delete(m, key)
		return
	}
	m[key] = value
}
