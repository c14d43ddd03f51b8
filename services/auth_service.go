package services

import (
	"context"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/models"
	"github.com/THORzero9/FWR-sub000/repository"
	"github.com/THORzero9/FWR-sub000/utils"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService orchestrates registration, login, logout and per-request
// identity resolution. A request is either Anonymous or Authenticated;
// nothing in between.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	log      *zap.Logger
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionStore, log *zap.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Register validates input, creates the user and opens a session. The
// returned user is sanitized; the hash never leaves this layer.
func (s *AuthService) Register(ctx context.Context, username, email, password string, remember bool) (*models.User, *models.Session, error) {
	if err := validateRegistration(username, email, password); err != nil {
		return nil, nil, err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, nil, apperrors.Conflict("username already exists")
	} else if !apperrors.IsNotFound(err) {
		return nil, nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		// A hashing failure must never degrade to a weak credential.
		return nil, nil, err
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := s.createSession(ctx, user.ID, remember)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("user registered",
		zap.String("trace_id", utils.TraceID(ctx)),
		zap.Uint("user_id", user.ID))
	return user.Sanitized(), session, nil
}

// Login verifies credentials and opens a session. Unknown username, wrong
// password and a corrupted stored hash all fail with the same generic
// message; the real cause is only logged, keyed by trace id.
func (s *AuthService) Login(ctx context.Context, username, password string, remember bool) (*models.User, *models.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.log.Info("login failed: unknown username",
				zap.String("trace_id", utils.TraceID(ctx)))
			return nil, nil, apperrors.Unauthorized()
		}
		return nil, nil, err
	}

	if user.PasswordHash == "" {
		s.log.Warn("login failed: user record has no credential hash",
			zap.String("trace_id", utils.TraceID(ctx)),
			zap.Uint("user_id", user.ID))
		return nil, nil, apperrors.Unauthorized()
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Info("login failed: password mismatch",
			zap.String("trace_id", utils.TraceID(ctx)),
			zap.Uint("user_id", user.ID))
		return nil, nil, apperrors.Unauthorized()
	}

	session, err := s.createSession(ctx, user.ID, remember)
	if err != nil {
		return nil, nil, err
	}
	return user.Sanitized(), session, nil
}

// Logout destroys the session server-side. Logging out twice, or without a
// session at all, is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// ResolveIdentity maps an incoming session id to the current user record,
// fetched fresh from storage. If the referenced user no longer exists the
// session is invalidated and resolution fails closed.
func (s *AuthService) ResolveIdentity(ctx context.Context, sessionID string) (*models.User, error) {
	if sessionID == "" {
		return nil, apperrors.NotAuthenticated()
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotAuthenticated()
		}
		return nil, err
	}
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.log.Warn("session references missing user, invalidating",
				zap.String("trace_id", utils.TraceID(ctx)),
				zap.Uint("user_id", session.UserID))
			_ = s.sessions.Delete(ctx, sessionID)
			return nil, apperrors.NotAuthenticated()
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) createSession(ctx context.Context, userID uint, remember bool) (*models.Session, error) {
	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Remember:  remember,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func validateRegistration(username, email, password string) error {
	verr := apperrors.NewValidation()
	if len(username) < 3 || len(username) > 30 {
		verr.Add("username", "username must be 3-30 characters")
	}
	if !emailPattern.MatchString(email) {
		verr.Add("email", "email must be a valid address")
	}
	if msg := passwordRuleViolation(password); msg != "" {
		verr.Add("password", msg)
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

func passwordRuleViolation(password string) string {
	if len(password) < 8 {
		return "password must be at least 8 characters"
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return "password must contain a lowercase letter, an uppercase letter, a digit and a symbol"
	}
	return ""
}
