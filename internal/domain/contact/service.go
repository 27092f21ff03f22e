package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taxsite/internal/crm"
	"taxsite/internal/domain/pricing"
	"taxsite/internal/pkg/validator"
	"taxsite/internal/storage/blob"
	"taxsite/internal/webhook"
)

// Submission is one decoded request. Raw holds the JSON body as received;
// Form and Files are set for multipart requests.
type Submission struct {
	Payload   Payload
	Raw       map[string]any
	Multipart bool
	Form      map[string][]string
	Files     []blob.File
}

type Service struct {
	provider crm.Provider
	reported string
	store    blob.Store
	forward  *webhook.Forwarder
	log      *zap.Logger
	now      func() time.Time
}

// NewService wires the submission flow. store may be nil when blob storage
// is not configured; uploads are then skipped.
func NewService(provider crm.Provider, reportedProvider string, store blob.Store, forward *webhook.Forwarder, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		reported: reportedProvider,
		store:    store,
		forward:  forward,
		log:      log,
		now:      time.Now,
	}
}

// Submit uploads attachments, creates the CRM contact and mirrors everything to
// the webhook. Upload and webhook failures are logged and ignored. A CRM
// failure fails the submission, after the webhook has still been sent.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	p := &sub.Payload
	if errs := validator.Validate(p); errs["email"] != "" {
		return nil, ErrMissingEmail
	}

	s.scoreFromSelections(p)

	var uploaded []string
	if s.store != nil && len(sub.Files) > 0 {
		res, err := s.store.Upload(ctx, sub.Files, blob.LeadPrefix(s.now()))
		if err != nil {
			s.log.Error("attachment upload failed", zap.String("email", p.Email), zap.Error(err))
		} else {
			uploaded = res.URLs
		}
	}

	created, crmErr := s.provider.CreateContact(ctx, p.toContact())
	s.mirror(ctx, sub, created, uploaded)
	if crmErr != nil {
		return nil, fmt.Errorf("create %s contact: %w", s.provider.Name(), crmErr)
	}

	attachments := make([]AttachmentSummary, 0, len(p.Attachments))
	for _, a := range p.Attachments {
		attachments = append(attachments, AttachmentSummary{Name: a.Name, Size: a.Size})
	}
	if uploaded == nil {
		uploaded = []string{}
	}

	return &Result{
		OK:           true,
		Message:      "Contact captured successfully",
		Provider:     s.reported,
		ContactID:    created.ID,
		URL:          created.URL,
		Attachments:  attachments,
		UploadedURLs: uploaded,
	}, nil
}

func (s *Service) mirror(ctx context.Context, sub Submission, created crm.Result, uploaded []string) {
	if s.forward == nil {
		return
	}
	wc := webhook.NewContext(s.reported, created.ID, created.URL, uploaded, s.now())
	var err error
	if sub.Multipart {
		err = s.forward.ForwardMultipart(ctx, sub.Form, sub.Files, wc)
	} else {
		err = s.forward.ForwardJSON(ctx, s.webhookBody(sub), wc)
	}
	if err != nil {
		s.log.Error("webhook forward failed", zap.String("contact_id", created.ID), zap.Error(err))
	}
}

// scoreFromSelections fills a missing lead category and ICP score from the
// questionnaire answers, when those decode.
func (s *Service) scoreFromSelections(p *Payload) {
	sel := bytes.TrimSpace(p.Selections)
	if p.LeadCategory != "" || len(sel) == 0 || sel[0] != '{' {
		return
	}
	details := pricing.DefaultDetails()
	if err := json.Unmarshal(sel, &details); err != nil {
		return
	}
	q := pricing.Calculate(details)
	p.LeadCategory = string(q.LeadCategory)
	if p.ICPScore == nil {
		score := q.ICPScore
		p.ICPScore = &score
	}
}

// webhookBody is the JSON body as received, with any scored fields added.
func (s *Service) webhookBody(sub Submission) map[string]any {
	body := make(map[string]any, len(sub.Raw)+2)
	for k, v := range sub.Raw {
		body[k] = v
	}
	if sub.Payload.LeadCategory != "" {
		body["leadCategory"] = sub.Payload.LeadCategory
	}
	if sub.Payload.ICPScore != nil {
		body["icpScore"] = *sub.Payload.ICPScore
	}
	return body
}
