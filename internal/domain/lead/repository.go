package lead

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxsite/internal/database"
)

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByContactID(ctx context.Context, contactID string) (*Lead, error)
	List(ctx context.Context, limit int) ([]*Lead, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Migrate creates or updates the leads table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lead{})
}

// Create stores a lead under a fresh key unless one is set. Contact ids may
// repeat; local ids only have millisecond resolution.
func (r *repository) Create(ctx context.Context, l *Lead) error {
	if l.Key == "" {
		l.Key = uuid.NewString()
	}
	err := r.db.WithContext(ctx).Create(l).Error
	if database.IsDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

func (r *repository) GetByContactID(ctx context.Context, contactID string) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).Where("contact_id = ?", contactID).Order("id DESC").First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns the newest leads first. A non-positive limit means 50.
func (r *repository) List(ctx context.Context, limit int) ([]*Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	var leads []*Lead
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&leads).Error
	return leads, err
}
