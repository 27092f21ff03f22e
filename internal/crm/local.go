package crm

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"taxsite/internal/domain/lead"
	"taxsite/internal/pkg/utils"
)

// Local captures contacts without a CRM. The id is always synthesised; when a
// lead repository is available the contact is persisted too.
type Local struct {
	leads lead.Repository
	log   *zap.Logger
	now   func() time.Time
}

func NewLocal(leads lead.Repository, log *zap.Logger) *Local {
	if log == nil {
		log = zap.NewNop()
	}
	return &Local{leads: leads, log: log, now: time.Now}
}

func (l *Local) Name() string { return ProviderLocal }

func (l *Local) CreateContact(ctx context.Context, c Contact) (Result, error) {
	now := l.now()
	id := "local-" + strconv.FormatInt(now.UnixMilli(), 10)

	if l.leads != nil {
		rec := &lead.Lead{
			ContactID:    id,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Email:        c.Email,
			Phone:        c.Phone,
			Company:      c.Company,
			Notes:        c.Notes,
			LeadCategory: c.LeadCategory,
			ICPScore:     c.ICPScore,
			Selections:   string(c.Selections),
			Attachments:  utils.ToJSONString(c.Attachments),
			CreatedAt:    now,
		}
		if err := l.leads.Create(ctx, rec); err != nil {
			l.log.Warn("local lead capture failed", zap.String("contact_id", id), zap.Error(err))
		}
	}

	return Result{ID: id}, nil
}
