package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/models"
)

// SessionStore holds serialized login sessions keyed by the opaque session
// id. The persisted variant backs production, the in-memory one tests and
// local development. Implementations must be safe for concurrent use.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}

type GormSessionStore struct {
	db *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

// Get returns the session or not-found. An expired row is removed and
// reported as absent, which is how passive expiry is enforced.
func (s *GormSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("session")
		}
		return nil, err
	}
	if session.Expired() {
		s.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id)
		return nil, apperrors.NotFound("session")
	}
	return &session, nil
}

func (s *GormSessionStore) Save(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

// Delete is idempotent: removing an absent session is not an error.
func (s *GormSessionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id).Error
}

// PurgeExpired removes every session past its expiry. Meant for a periodic
// sweep so the table does not grow without bound.
func (s *GormSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
