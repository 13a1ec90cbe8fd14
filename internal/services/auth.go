package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"societyportal/internal/domain"
)

type authService struct {
	credentials domain.CredentialProvider
	hasher      domain.PasswordHasher
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	sessionTTL  time.Duration
}

// NewAuthService creates an AuthService. Credential verification is a salted
// hash comparison against the provider; the session guard is stateless per
// request and pays one user lookup per protected call.
func NewAuthService(credentials domain.CredentialProvider, hasher domain.PasswordHasher,
	userRepo domain.UserRepository, sessionRepo domain.SessionRepository,
	sessionTTL time.Duration) domain.AuthService {
	return &authService{
		credentials: credentials,
		hasher:      hasher,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	cred, err := s.credentials.Lookup(email)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(cred.PasswordHash, cred.Salt, password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, cred.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}

	sessionID, err := generateSessionID()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	session := domain.NewSession(sessionID, user.ID, s.sessionTTL)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	return user, session, nil
}

// Logout destroys the session server-side. It succeeds whether or not a
// session existed; the cookie is cleared by the controller regardless.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *authService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// SeedDemoUsers upserts one User row per credential so logins resolve to an
// existing account. Idempotent; run at startup.
func (s *authService) SeedDemoUsers(ctx context.Context) error {
	for _, cred := range s.credentials.All() {
		existing, err := s.userRepo.GetByID(ctx, cred.ID)
		if err != nil {
			return fmt.Errorf("failed to check user %s: %w", cred.ID, err)
		}
		if existing != nil {
			continue
		}
		user := domain.NewUser(cred.ID, cred.Email, cred.FirstName, cred.LastName, time.Now())
		if _, err := s.userRepo.Upsert(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", cred.ID, err)
		}
	}
	return nil
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
