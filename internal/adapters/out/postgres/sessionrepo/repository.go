package sessionrepo

import (
	"context"
	"errors"
	"time"

	"posdelivery/internal/core/domain/model/kernel"
	"posdelivery/internal/core/domain/model/session"
	"posdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing session to the database.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByToken retrieves the session holding the given bearer token.
func (r *GormSessionRepository) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", "token")
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeactivateByToken closes every session holding the given token. Updating
// zero rows is fine, which keeps logout idempotent.
func (r *GormSessionRepository) DeactivateByToken(ctx context.Context, token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	return r.db.WithContext(ctx).
		Model(&SessionDTO{}).
		Where("token = ?", token).
		Update("is_active", false).Error
}

// DeleteExpired removes sessions that are inactive or expired before the
// given time. Returns the number of sessions removed.
func (r *GormSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_active = ? OR expires_at < ?", false, before).
		Delete(&SessionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
